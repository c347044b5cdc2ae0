package journal

import "codeberg.org/mutker/errcode/internal/errors"

const (
	// File system permissions
	defaultDirPerm = 0o755

	defaultBatchSize    = 1
	defaultBatchTimeout = 5
)

type Config struct {
	DBPath  string
	Enabled bool
	// BatchSize is how many entries are buffered before a write; 1 writes
	// every entry as it is recorded.
	BatchSize int
	// BatchTimeout is the flush interval in seconds for a partly filled
	// buffer. Zero disables the background flush.
	BatchTimeout int
}

func DefaultConfig(dbPath string) Config {
	return Config{
		DBPath:       dbPath,
		Enabled:      true,
		BatchSize:    defaultBatchSize,
		BatchTimeout: defaultBatchTimeout,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	// Only validate the rest if the journal is enabled
	if !c.Enabled {
		return nil
	}
	if c.DBPath == "" {
		return errFactory.New(ErrInvalidDBPath)
	}
	if c.BatchSize < 1 {
		return errFactory.WithData(ErrInvalidConfig, struct {
			Field string
			Value int
		}{
			Field: "batch_size",
			Value: c.BatchSize,
		})
	}
	return nil
}
