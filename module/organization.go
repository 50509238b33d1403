package module

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Organization executes authorized calls on behalf of a governance entity.
type Organization interface {
	// Address identifies the organization.
	Address() common.Address

	// GenericCall delivers encoded call data to the target on behalf of the
	// organization. success reports whether the target accepted the call;
	// a non-nil error indicates the call could not be attempted at all.
	GenericCall(ctx context.Context, target common.Address, data []byte, value *big.Int) (success bool, returnData []byte, err error)
}
