package module

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Reputation provides historical reputation balances of an organization.
type Reputation interface {
	// BalanceOfAt returns the reputation of owner at the given height.
	BalanceOfAt(ctx context.Context, owner common.Address, height uint64) (*big.Int, error)

	// TotalSupplyAt returns the total reputation at the given height.
	TotalSupplyAt(ctx context.Context, height uint64) (*big.Int, error)
}
