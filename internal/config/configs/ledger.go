package configs

import (
	"strings"
	"time"
)

// Storage backends accepted by Ledger.Storage.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Ledger configures the campaign ledger itself.
type Ledger struct {
	// Storage selects the repository backend: "memory" or "postgres".
	Storage string `env:"STORAGE" envDefault:"memory"`
	// Seed creates demo campaigns on startup.
	Seed bool `env:"SEED" envDefault:"false"`
	// StreamWriteTimeout bounds a single write to an event stream client.
	StreamWriteTimeout time.Duration `env:"STREAM_WRITE_TIMEOUT" envDefault:"5s"`
	// StreamBuffer is the number of events queued per stream client before
	// the client is dropped.
	StreamBuffer int `env:"STREAM_BUFFER" envDefault:"64"`
}

// StorageBackend normalises Storage. Unknown values fall back to memory.
func (c Ledger) StorageBackend() string {
	switch strings.ToLower(c.Storage) {
	case StoragePostgres, "postgresql", "psql":
		return StoragePostgres
	default:
		return StorageMemory
	}
}
