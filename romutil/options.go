package romutil

import (
	"github.com/moffa90/go-kickrom/kickstart"
	"github.com/moffa90/go-kickrom/romdb"
	"github.com/moffa90/go-kickrom/romio"
)

// Config holds the parser configuration.
type Config struct {
	// Key decrypts obfuscated input and encrypts output (optional)
	Key []byte

	// Database identifies images by digest. Default is romdb.Default()
	Database *romdb.Database

	// Store is used by the file-level jobs. Default is romio.OS()
	Store *romio.Store

	// StageCallback is called as each pipeline stage starts (optional)
	StageCallback StageCallback

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Database: romdb.Default(),
	}
}

// Option is a functional option for configuring the Parser.
type Option func(*Config)

// WithKey sets the obfuscation key. The key is copied.
//
// Example:
//
//	key, _ := romio.OS().ReadKey("rom.key")
//	p := romutil.New(romutil.WithKey(key))
func WithKey(key []byte) Option {
	return func(c *Config) {
		c.Key = append([]byte(nil), key...)
	}
}

// WithDatabase sets the signature database used for identification.
//
// Example:
//
//	extra, _ := romdb.Parse("my-roms.txt")
//	p := romutil.New(romutil.WithDatabase(extra.Merge(romdb.Default())))
func WithDatabase(db *romdb.Database) Option {
	return func(c *Config) {
		if db != nil {
			c.Database = db
		}
	}
}

// WithStore sets the filesystem used by the file-level jobs.
//
// Example:
//
//	p := romutil.New(romutil.WithStore(romio.NewStore(afero.NewMemMapFs())))
func WithStore(store *romio.Store) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithStageCallback sets a callback to observe pipeline stages.
func WithStageCallback(callback StageCallback) Option {
	return func(c *Config) {
		c.StageCallback = callback
	}
}

// WithLogger sets a logger for parser and job operations.
//
// Example:
//
//	p := romutil.New(romutil.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// JobOptions selects the optional steps of a file-level job.
type JobOptions struct {
	// Swap moves the image toward the requested byte order
	Swap kickstart.SwapOptions

	// CorrectChecksum rewrites an invalid checksum instead of only
	// reporting it
	CorrectChecksum bool

	// Encrypt obfuscates the output with the configured key
	Encrypt bool
}
