package unittest

import (
	crand "crypto/rand"
	"math/rand"

	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/model/governance"
)

func HashFixture() common.Hash {
	var h common.Hash
	_, _ = crand.Read(h[:])
	return h
}

func AddressFixture() common.Address {
	var a common.Address
	_, _ = crand.Read(a[:])
	return a
}

func VoteProposalFixture(opts ...func(*governance.VoteProposal)) *governance.VoteProposal {
	proposal := &governance.VoteProposal{
		OriginalVotingMachine: AddressFixture(),
		OriginalProposalID:    HashFixture(),
		ChosenOption:          uint64(rand.Intn(10)),
		Exists:                true,
	}
	for _, apply := range opts {
		apply(proposal)
	}
	return proposal
}

func WithChosenOption(option uint64) func(*governance.VoteProposal) {
	return func(proposal *governance.VoteProposal) {
		proposal.ChosenOption = option
	}
}

func ProposalInfoFixture() *governance.ProposalInfo {
	return &governance.ProposalInfo{
		CreationHeight: rand.Uint64(),
		Organization:   AddressFixture(),
	}
}
