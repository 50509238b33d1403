package badger

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-governance/utils/unittest"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := Config{InMemory: false, Dir: "", CacheSize: 0}
	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)

	cfg = Config{InMemory: true, Dir: "/tmp/governance", CacheSize: 1}
	assert.Error(t, cfg.Validate())
}

func TestOpen(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		db, err := Open(DefaultConfig())
		require.NoError(t, err)
		require.NoError(t, db.Close())
	})

	t.Run("on disk", func(t *testing.T) {
		unittest.RunWithTempDir(t, func(dir string) {
			db, err := Open(Config{Dir: dir, CacheSize: 10})
			require.NoError(t, err)
			require.NoError(t, db.Close())
		})
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := Open(Config{})
		require.Error(t, err)
	})
}
