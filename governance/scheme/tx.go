package scheme

import (
	"context"

	"github.com/onflow/flow-governance/governance/errors"
	"github.com/onflow/flow-governance/storage/badger/transaction"
)

// txKey identifies the in-flight transaction of a scheme instance in a context.
type txKey struct {
	scheme *VoteInOrganization
}

// frame is the transaction of an in-flight top-level call, shared with the
// nested calls issued from within it.
type frame struct {
	tx *transaction.Tx
	// writes counts the write operations applied to tx.
	writes int
	// aborted is set when a nested call failed after writing. badger cannot
	// undo part of a transaction, so the top-level call fails with it.
	aborted error
}

func (f *frame) apply(op func(*transaction.Tx) error) error {
	f.writes++
	return op(f.tx)
}

// update runs fn in the in-flight transaction of ctx, or in a new read-write
// transaction if there is none. A new transaction commits only if fn succeeds
// and no nested call aborted it.
// Expected errors during normal operations:
//   - errors.ReentrantCall if another call is in flight and ctx does not
//     carry its transaction.
func (s *VoteInOrganization) update(ctx context.Context, fn func(context.Context, *frame) error) error {
	if fr, ok := ctx.Value(txKey{scheme: s}).(*frame); ok {
		before := fr.writes
		err := fn(ctx, fr)
		if err != nil && fr.writes != before && fr.aborted == nil {
			fr.aborted = err
		}
		return err
	}

	if !s.mu.TryLock() {
		return errors.NewReentrantCallError(s.self)
	}
	defer s.mu.Unlock()

	return transaction.Update(s.db, func(tx *transaction.Tx) error {
		fr := &frame{tx: tx}
		err := fn(context.WithValue(ctx, txKey{scheme: s}, fr), fr)
		if err != nil {
			return err
		}
		return fr.aborted
	})
}

// view runs fn against the in-flight transaction of ctx, or against a
// read-only snapshot of committed state if there is none.
func (s *VoteInOrganization) view(ctx context.Context, fn func(*transaction.Tx) error) error {
	if fr, ok := ctx.Value(txKey{scheme: s}).(*frame); ok {
		return fn(fr.tx)
	}
	return transaction.View(s.db, fn)
}
