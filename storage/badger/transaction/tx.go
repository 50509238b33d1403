package transaction

import (
	dbbadger "github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-governance/module/irrecoverable"
)

// Tx wraps a badger transaction and includes an additional slice for
// callbacks. The callbacks are executed after the badger transaction
// completed _successfully_. A transaction that is discarded never runs its
// callbacks.
type Tx struct {
	DBTxn     *dbbadger.Txn
	callbacks []func()
}

// OnSucceed adds a callback to execute after the batch has been successfully
// flushed. Useful for implementing a cache and for publishing events that
// must not be observable unless the transaction committed.
func (b *Tx) OnSucceed(callback func()) {
	b.callbacks = append(b.callbacks, callback)
}

// Update creates a badger read-write transaction, passes it to the given
// function and commits it if the function returns no error. Any error
// returned by the function discards every write of the transaction.
func Update(db *dbbadger.DB, f func(*Tx) error) error {
	dbTxn := db.NewTransaction(true)
	defer dbTxn.Discard()

	tx := &Tx{DBTxn: dbTxn}
	err := f(tx)
	if err != nil {
		return err
	}

	err = dbTxn.Commit()
	if err != nil {
		return irrecoverable.NewExceptionf("could not commit transaction: %w", err)
	}

	for _, callback := range tx.callbacks {
		callback()
	}
	return nil
}

// View creates a read-only badger transaction and passes it to the given
// function. Callbacks run once the function returned without error.
func View(db *dbbadger.DB, f func(*Tx) error) error {
	dbTxn := db.NewTransaction(false)
	defer dbTxn.Discard()

	tx := &Tx{DBTxn: dbTxn}
	err := f(tx)
	if err != nil {
		return err
	}

	for _, callback := range tx.callbacks {
		callback()
	}
	return nil
}

// WithTx adapts a badger operation to the Tx type.
func WithTx(f func(*dbbadger.Txn) error) func(*Tx) error {
	return func(tx *Tx) error {
		return f(tx.DBTxn)
	}
}
