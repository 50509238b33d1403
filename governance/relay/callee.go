package relay

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/module"
	"github.com/onflow/flow-governance/module/organization"
)

// VotingMachineCallee delivers encoded vote calls to a voting machine.
type VotingMachineCallee struct {
	vm module.VotingMachine
}

var _ organization.Callee = (*VotingMachineCallee)(nil)

func NewVotingMachineCallee(vm module.VotingMachine) *VotingMachineCallee {
	return &VotingMachineCallee{vm: vm}
}

// Call decodes data as a vote call, casts the vote and returns the encoded
// result. Value transfers are not supported by voting machines.
func (c *VotingMachineCallee) Call(ctx context.Context, caller common.Address, data []byte, value *big.Int) ([]byte, error) {
	if value != nil && value.Sign() != 0 {
		return nil, fmt.Errorf("voting machine %s does not accept value", c.vm.Address().Hex())
	}

	vote, err := DecodeVote(data)
	if err != nil {
		return nil, err
	}

	decided, err := c.vm.Vote(ctx, vote.ProposalID, vote.Option, vote.Amount, vote.Voter)
	if err != nil {
		return nil, fmt.Errorf("vote on proposal %s failed: %w", vote.ProposalID.Hex(), err)
	}

	return EncodeVoteResult(decided)
}
