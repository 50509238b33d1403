package operation

import (
	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/model/governance"
)

// InsertProposalInfo records the organization and creation height of a
// proposal of the given voting machine.
// Expected errors during normal operations:
//   - storage.ErrAlreadyExists if the voting machine already has a record for the proposal.
func InsertProposalInfo(votingMachine common.Address, proposalID common.Hash, info *governance.ProposalInfo) func(*badger.Txn) error {
	return insert(makePrefix(codeProposalInfo, votingMachine, proposalID), info)
}

// RetrieveProposalInfo retrieves the record of a voting machine proposal.
// Expected errors during normal operations:
//   - storage.ErrNotFound if the voting machine has no record for the proposal.
func RetrieveProposalInfo(votingMachine common.Address, proposalID common.Hash, info *governance.ProposalInfo) func(*badger.Txn) error {
	return retrieve(makePrefix(codeProposalInfo, votingMachine, proposalID), info)
}
