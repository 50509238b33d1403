package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/storage"
	"github.com/onflow/flow-governance/storage/badger/operation"
	"github.com/onflow/flow-governance/storage/badger/transaction"
)

// Events implements the persistent event log.
type Events struct {
	db *badger.DB
}

var _ storage.Events = (*Events)(nil)

func NewEvents(db *badger.DB) *Events {
	return &Events{db: db}
}

func (e *Events) AppendTx(event *governance.Event) func(*transaction.Tx) error {
	return func(tx *transaction.Tx) error {
		err := operation.InsertEvent(event)(tx.DBTxn)
		if err != nil {
			return fmt.Errorf("could not append %s event: %w", event.Type, err)
		}
		return nil
	}
}

func (e *Events) ByProposal(proposalID common.Hash) ([]governance.Event, error) {
	var events []governance.Event
	err := e.db.View(func(tx *badger.Txn) error {
		var indices []uint64
		err := operation.LookupEventsByProposal(proposalID, &indices)(tx)
		if err != nil {
			return fmt.Errorf("could not look up events: %w", err)
		}

		events = make([]governance.Event, 0, len(indices))
		for _, index := range indices {
			var event governance.Event
			err = operation.RetrieveEvent(index, &event)(tx)
			if err != nil {
				return fmt.Errorf("could not retrieve event %d: %w", index, err)
			}
			events = append(events, event)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (e *Events) All() ([]governance.Event, error) {
	var events []governance.Event
	err := e.db.View(operation.TraverseEvents(&events))
	if err != nil {
		return nil, fmt.Errorf("could not traverse events: %w", err)
	}
	return events, nil
}
