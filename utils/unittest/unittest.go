package unittest

import (
	"os"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/require"
)

func TempDir(t testing.TB) string {
	dir, err := os.MkdirTemp("", "governance-testing-temp-")
	require.NoError(t, err)
	return dir
}

func RunWithTempDir(t testing.TB, f func(string)) {
	dbDir := TempDir(t)
	defer os.RemoveAll(dbDir)
	f(dbDir)
}

func BadgerDB(t testing.TB, dir string) *badger.DB {
	opts := badger.
		DefaultOptions(dir).
		WithKeepL0InMemory(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	return db
}

func RunWithBadgerDB(t testing.TB, f func(*badger.DB)) {
	RunWithTempDir(t, func(dir string) {
		db := BadgerDB(t, dir)
		defer db.Close()
		f(db)
	})
}

// InMemoryBadgerDB opens a badger database that never touches the disk.
func InMemoryBadgerDB(t testing.TB) *badger.DB {
	opts := badger.
		DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	return db
}

func RunWithInMemoryBadgerDB(t testing.TB, f func(*badger.DB)) {
	db := InMemoryBadgerDB(t)
	defer db.Close()
	f(db)
}

// RequireReturnsBefore fails the test if f does not return within duration.
func RequireReturnsBefore(t testing.TB, f func(), duration time.Duration, message string) {
	done := make(chan struct{})

	go func() {
		f()
		close(done)
	}()

	select {
	case <-time.After(duration):
		require.Fail(t, "function did not return in time", message)
	case <-done:
		return
	}
}
