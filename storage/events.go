package storage

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/storage/badger/transaction"
)

// Events represents the persistent, append-only log of scheme events.
type Events interface {

	// AppendTx appends the event to the log and sets its Index. The event
	// is invisible to readers until the transaction commits.
	AppendTx(event *governance.Event) func(*transaction.Tx) error

	// ByProposal returns the committed events that refer to the given
	// proposal, in emission order.
	ByProposal(proposalID common.Hash) ([]governance.Event, error)

	// All returns the committed event log in emission order.
	All() ([]governance.Event, error)
}
