package mocks

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/onflow/flow-governance/module"
)

// Vote is a vote recorded by VotingMachine.
type Vote struct {
	ProposalID common.Hash
	Option     uint64
	Amount     *big.Int
	Voter      common.Address
}

type proposal struct {
	numOfChoices uint64
	paramsHash   common.Hash
	proposer     common.Address
	organization common.Address
}

// VotingMachine is an in-memory voting machine that simulates the parts of
// a real one that schemes interact with. It records votes instead of
// tallying them.
type VotingMachine struct {
	sync.Mutex
	address   common.Address
	min       uint64
	max       uint64
	nonce     uint64
	proposals map[common.Hash]*proposal
	votes     []Vote

	// OnVote, when set, runs before a vote is recorded. A returned error
	// rejects the vote.
	OnVote func(ctx context.Context, vote Vote) error
}

var _ module.VotingMachine = (*VotingMachine)(nil)

func NewVotingMachine(address common.Address, min, max uint64) *VotingMachine {
	return &VotingMachine{
		address:   address,
		min:       min,
		max:       max,
		proposals: make(map[common.Hash]*proposal),
	}
}

func (vm *VotingMachine) Address() common.Address {
	return vm.address
}

// Propose derives proposal IDs from the voting machine address and a nonce,
// so they are unique per voting machine.
func (vm *VotingMachine) Propose(ctx context.Context, numOfChoices uint64, paramsHash common.Hash, proposer common.Address, organization common.Address) (common.Hash, error) {
	vm.Lock()
	defer vm.Unlock()

	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, vm.nonce)
	vm.nonce++

	id := crypto.Keccak256Hash(vm.address.Bytes(), nonce)
	vm.proposals[id] = &proposal{
		numOfChoices: numOfChoices,
		paramsHash:   paramsHash,
		proposer:     proposer,
		organization: organization,
	}
	return id, nil
}

func (vm *VotingMachine) Vote(ctx context.Context, proposalID common.Hash, option uint64, amount *big.Int, voter common.Address) (bool, error) {
	vote := Vote{
		ProposalID: proposalID,
		Option:     option,
		Amount:     amount,
		Voter:      voter,
	}

	// the hook runs unlocked so that it may call back into the scheme
	if vm.OnVote != nil {
		err := vm.OnVote(ctx, vote)
		if err != nil {
			return false, err
		}
	}

	vm.Lock()
	defer vm.Unlock()

	p, ok := vm.proposals[proposalID]
	if !ok {
		return false, fmt.Errorf("unknown proposal %s", proposalID.Hex())
	}
	if option < vm.min || option > vm.max || option > p.numOfChoices {
		return false, fmt.Errorf("option %d out of range", option)
	}

	vm.votes = append(vm.votes, vote)
	return false, nil
}

// GetNumberOfChoices returns 0 for unknown proposals.
func (vm *VotingMachine) GetNumberOfChoices(ctx context.Context, proposalID common.Hash) (uint64, error) {
	vm.Lock()
	defer vm.Unlock()

	p, ok := vm.proposals[proposalID]
	if !ok {
		return 0, nil
	}
	return p.numOfChoices, nil
}

func (vm *VotingMachine) GetAllowedRangeOfChoices(ctx context.Context) (uint64, uint64, error) {
	return vm.min, vm.max, nil
}

// Votes returns the recorded votes in the order they were cast.
func (vm *VotingMachine) Votes() []Vote {
	vm.Lock()
	defer vm.Unlock()

	votes := make([]Vote, len(vm.votes))
	copy(votes, vm.votes)
	return votes
}

// Proposer returns the proposer and organization a proposal was opened with.
func (vm *VotingMachine) Proposer(proposalID common.Hash) (common.Address, common.Address, bool) {
	vm.Lock()
	defer vm.Unlock()

	p, ok := vm.proposals[proposalID]
	if !ok {
		return common.Address{}, common.Address{}, false
	}
	return p.proposer, p.organization, true
}
