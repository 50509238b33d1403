package storage

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/storage/badger/transaction"
)

// ProposalInfos represents persistent storage for the authorization records
// of proposals, keyed by voting machine and proposal ID. Records are
// immutable and never removed.
type ProposalInfos interface {

	// StoreTx inserts the record of a voting machine proposal.
	// Expected errors of the returned anonymous function:
	//   - storage.ErrAlreadyExists if the voting machine already has a record for the proposal.
	StoreTx(votingMachine common.Address, proposalID common.Hash, info *governance.ProposalInfo) func(*transaction.Tx) error

	// ByIDTx retrieves the record of a voting machine proposal.
	// Expected errors of the returned anonymous function:
	//   - storage.ErrNotFound if the voting machine has no record for the proposal.
	ByIDTx(votingMachine common.Address, proposalID common.Hash) func(*transaction.Tx) (*governance.ProposalInfo, error)

	// ByID retrieves a committed record.
	// Expected errors during normal operations:
	//   - storage.ErrNotFound if the voting machine has no record for the proposal.
	ByID(votingMachine common.Address, proposalID common.Hash) (*governance.ProposalInfo, error)
}
