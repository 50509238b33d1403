package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/hashicorp/go-multierror"
)

// Config is the storage configuration of a governance database.
type Config struct {
	// Dir is the badger data directory. It is ignored when InMemory is set.
	Dir string
	// InMemory keeps all data in memory, nothing is written to disk.
	InMemory bool
	// CacheSize bounds the number of cached proposal records.
	CacheSize uint
}

func DefaultConfig() Config {
	return Config{
		InMemory:  true,
		CacheSize: DefaultCacheSize,
	}
}

// Validate returns all problems of the configuration at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if !c.InMemory && c.Dir == "" {
		result = multierror.Append(result, fmt.Errorf("data directory required for on-disk storage"))
	}
	if c.InMemory && c.Dir != "" {
		result = multierror.Append(result, fmt.Errorf("data directory %s given for in-memory storage", c.Dir))
	}
	if c.CacheSize == 0 {
		result = multierror.Append(result, fmt.Errorf("cache size must be positive"))
	}
	return result.ErrorOrNil()
}

// Open validates the configuration and opens the badger database it
// describes.
func Open(cfg Config) (*badger.DB, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid storage config: %w", err)
	}

	opts := badger.DefaultOptions(cfg.Dir).WithLogger(nil)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("could not open badger db: %w", err)
	}
	return db, nil
}
