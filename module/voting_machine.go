package module

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// VotingMachine is a component that tallies votes on proposals and, once a
// proposal is decided, calls back the scheme that created it. Implementations
// are external to this module and treated as the authority on decision
// finality.
type VotingMachine interface {
	// Address is the identity the voting machine uses when calling back.
	Address() common.Address

	// Propose opens a new proposal with the given number of choices and
	// returns its ID. IDs are unique per voting machine.
	Propose(ctx context.Context, numOfChoices uint64, paramsHash common.Hash, proposer common.Address, organization common.Address) (common.Hash, error)

	// Vote casts a vote of the given voter on a proposal. It returns whether
	// the vote caused the proposal to be decided.
	Vote(ctx context.Context, proposalID common.Hash, option uint64, amount *big.Int, voter common.Address) (bool, error)

	// GetNumberOfChoices returns the number of choices of a proposal.
	GetNumberOfChoices(ctx context.Context, proposalID common.Hash) (uint64, error)

	// GetAllowedRangeOfChoices returns the inclusive range of options a
	// voter may choose from.
	GetAllowedRangeOfChoices(ctx context.Context) (min uint64, max uint64, err error)
}
