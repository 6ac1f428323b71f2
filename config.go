package arenajson

import (
	"flag"

	"github.com/c2h5oh/datasize"
	"github.com/go-kit/log"
	"github.com/pkg/errors"

	"github.com/d1ced/arenajson/internal/arena"
)

// Page size bounds.
const (
	DefaultPageSize datasize.ByteSize = arena.DefaultPageSize
	MinPageSize     datasize.ByteSize = arena.MinPageSize
)

// Config controls how documents allocate memory and report about it.
// The zero value is not ready for use; start from DefaultConfig.
type Config struct {
	// PageSize is the minimum size of an arena page.
	PageSize datasize.ByteSize `yaml:"page_size"`
	// MaxMemory caps the bytes one document may reserve. Zero means no cap.
	MaxMemory datasize.ByteSize `yaml:"max_memory"`

	Logger  log.Logger `yaml:"-"`
	Metrics *Metrics   `yaml:"-"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		PageSize: DefaultPageSize,
		Logger:   log.NewNopLogger(),
	}
}

// RegisterFlags registers the size settings of c on f.
func (c *Config) RegisterFlags(f *flag.FlagSet) {
	f.TextVar(&c.PageSize, "arenajson.page-size", c.PageSize, "Minimum size of an arena page.")
	f.TextVar(&c.MaxMemory, "arenajson.max-memory", c.MaxMemory, "Maximum memory one document may reserve; 0 disables the limit.")
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.PageSize < MinPageSize {
		return errors.Errorf("page size %s is below the minimum of %s",
			c.PageSize.HumanReadable(), MinPageSize.HumanReadable())
	}
	if c.MaxMemory != 0 && c.MaxMemory < c.PageSize {
		return errors.Errorf("max memory %s is smaller than the page size %s",
			c.MaxMemory.HumanReadable(), c.PageSize.HumanReadable())
	}
	return nil
}

func (c *Config) arenaOptions() []arena.Option {
	opts := []arena.Option{
		arena.WithPageSize(int(c.PageSize.Bytes())),
		arena.WithMaxBytes(int(c.MaxMemory.Bytes())),
		arena.WithLogger(c.Logger),
	}
	if c.Metrics != nil {
		opts = append(opts, arena.WithObserver(c.Metrics))
	}
	return opts
}

// Option configures parsing.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithPageSize sets the minimum arena page size.
func WithPageSize(size datasize.ByteSize) Option {
	return func(c *Config) {
		c.PageSize = size
	}
}

// WithMaxMemory caps the memory a document may reserve. Allocations beyond
// it fail with ErrOutOfMemory.
func WithMaxMemory(size datasize.ByteSize) Option {
	return func(c *Config) {
		c.MaxMemory = size
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l log.Logger) Option {
	return func(c *Config) {
		if l == nil {
			l = log.NewNopLogger()
		}
		c.Logger = l
	}
}

// WithMetrics reports parsing and arena activity to m.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}
