package transaction_test

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-governance/storage/badger/transaction"
	"github.com/onflow/flow-governance/utils/unittest"
)

func TestUpdate_CallbacksRunAfterCommit(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		key := []byte("key")
		var observed []byte

		err := transaction.Update(db, func(tx *transaction.Tx) error {
			tx.OnSucceed(func() {
				// the write is committed by the time callbacks run
				err := db.View(func(txn *badger.Txn) error {
					item, err := txn.Get(key)
					if err != nil {
						return err
					}
					observed, err = item.ValueCopy(nil)
					return err
				})
				require.NoError(t, err)
			})
			return tx.DBTxn.Set(key, []byte("value"))
		})
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), observed)
	})
}

func TestUpdate_DiscardSkipsCallbacks(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		key := []byte("key")
		called := false
		abort := errors.New("abort")

		err := transaction.Update(db, func(tx *transaction.Tx) error {
			tx.OnSucceed(func() { called = true })
			err := transaction.WithTx(func(txn *badger.Txn) error {
				return txn.Set(key, []byte("value"))
			})(tx)
			require.NoError(t, err)
			return abort
		})
		require.ErrorIs(t, err, abort)
		assert.False(t, called)

		err = db.View(func(txn *badger.Txn) error {
			_, err := txn.Get(key)
			return err
		})
		assert.ErrorIs(t, err, badger.ErrKeyNotFound)
	})
}

func TestView_Callbacks(t *testing.T) {
	unittest.RunWithInMemoryBadgerDB(t, func(db *badger.DB) {
		called := 0
		err := transaction.View(db, func(tx *transaction.Tx) error {
			tx.OnSucceed(func() { called++ })
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, called)

		abort := errors.New("abort")
		err = transaction.View(db, func(tx *transaction.Tx) error {
			tx.OnSucceed(func() { called++ })
			return abort
		})
		require.ErrorIs(t, err, abort)
		assert.Equal(t, 1, called)
	})
}
