package common

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	badgerstorage "github.com/onflow/flow-governance/storage/badger"
)

const (
	FlagDataDir   = "data-dir"
	FlagCacheSize = "cache-size"
)

// InitStorageFlags registers the persistent flags that locate the governance
// database and binds them to viper, so they can also be set through the
// environment (e.g. GOVERNANCE_DATA_DIR).
func InitStorageFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP(FlagDataDir, "d", "", "directory that stores the governance database")
	flags.Uint(FlagCacheSize, badgerstorage.DefaultCacheSize, "number of proposal records to cache")

	bindFlags(flags, FlagDataDir, FlagCacheSize)
}

func bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

// StorageConfig returns the storage configuration assembled from flags and
// environment.
func StorageConfig() badgerstorage.Config {
	return badgerstorage.Config{
		Dir:       viper.GetString(FlagDataDir),
		InMemory:  false,
		CacheSize: viper.GetUint(FlagCacheSize),
	}
}
