package operation

import (
	"errors"

	"github.com/dgraph-io/badger/v2"
	"github.com/ethereum/go-ethereum/common"

	"github.com/onflow/flow-governance/model/governance"
	"github.com/onflow/flow-governance/storage"
)

// InsertEvent appends the event to the event log. The event's Index is
// overwritten with the next free position of the log.
func InsertEvent(event *governance.Event) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		var next uint64
		err := retrieve(makePrefix(codeEventCounter), &next)(tx)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		event.Index = next
		err = insert(makePrefix(codeEvent, next), event)(tx)
		if err != nil {
			return err
		}
		err = insert(makePrefix(codeIndexEventByProposal, event.ProposalID, next), next)(tx)
		if err != nil {
			return err
		}
		return upsert(makePrefix(codeEventCounter), next+1)(tx)
	}
}

// RetrieveEvent retrieves the event at the given position of the log.
// Expected errors during normal operations:
//   - storage.ErrNotFound if no event was emitted at the given position.
func RetrieveEvent(index uint64, event *governance.Event) func(*badger.Txn) error {
	return retrieve(makePrefix(codeEvent, index), event)
}

// LookupEventsByProposal collects the log positions of all events that refer
// to the given proposal, in emission order.
func LookupEventsByProposal(proposalID common.Hash, indices *[]uint64) func(*badger.Txn) error {
	*indices = make([]uint64, 0)
	iteration := func() (checkFunc, createFunc, handleFunc) {
		check := func(key []byte) bool {
			return true
		}
		var index uint64
		create := func() interface{} {
			return &index
		}
		handle := func() error {
			*indices = append(*indices, index)
			return nil
		}
		return check, create, handle
	}
	return traverse(makePrefix(codeIndexEventByProposal, proposalID), iteration)
}

// TraverseEvents collects the complete event log in emission order.
func TraverseEvents(events *[]governance.Event) func(*badger.Txn) error {
	*events = make([]governance.Event, 0)
	iteration := func() (checkFunc, createFunc, handleFunc) {
		check := func(key []byte) bool {
			return true
		}
		var event governance.Event
		create := func() interface{} {
			return &event
		}
		handle := func() error {
			*events = append(*events, event)
			return nil
		}
		return check, create, handle
	}
	return traverse(makePrefix(codeEvent), iteration)
}
