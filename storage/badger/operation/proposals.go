package operation

import (
	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/model/governance"
)

// InsertVoteProposal inserts a vote proposal keyed by the local proposal ID.
// Expected errors during normal operations:
//   - storage.ErrAlreadyExists if a proposal with the given ID is already stored.
func InsertVoteProposal(proposalID common.Hash, proposal *governance.VoteProposal) func(*badger.Txn) error {
	return insert(makePrefix(codeVoteProposal, proposalID), proposal)
}

// RetrieveVoteProposal retrieves the live vote proposal with the given ID.
// Expected errors during normal operations:
//   - storage.ErrNotFound if no live proposal with the given ID exists.
func RetrieveVoteProposal(proposalID common.Hash, proposal *governance.VoteProposal) func(*badger.Txn) error {
	return retrieve(makePrefix(codeVoteProposal, proposalID), proposal)
}

func CheckVoteProposal(proposalID common.Hash, exists *bool) func(*badger.Txn) error {
	return check(makePrefix(codeVoteProposal, proposalID), exists)
}

// RemoveVoteProposal removes the vote proposal with the given ID.
// Expected errors during normal operations:
//   - storage.ErrNotFound if no live proposal with the given ID exists.
func RemoveVoteProposal(proposalID common.Hash) func(*badger.Txn) error {
	return remove(makePrefix(codeVoteProposal, proposalID))
}

// LookupVoteProposals collects the IDs of all live vote proposals, in key order.
func LookupVoteProposals(proposalIDs *[]common.Hash) func(*badger.Txn) error {
	*proposalIDs = make([]common.Hash, 0)
	iteration := func() (checkFunc, createFunc, handleFunc) {
		var proposalID common.Hash
		check := func(key []byte) bool {
			proposalID = common.BytesToHash(key[1:])
			return true
		}
		var proposal governance.VoteProposal
		create := func() interface{} {
			return &proposal
		}
		handle := func() error {
			if proposal.Exists {
				*proposalIDs = append(*proposalIDs, proposalID)
			}
			return nil
		}
		return check, create, handle
	}
	return traverse(makePrefix(codeVoteProposal), iteration)
}
