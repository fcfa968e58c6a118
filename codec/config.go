package codec

import (
	"fmt"
	"log/slog"

	"github.com/mhdkit/netbin/encoding"
	"github.com/mhdkit/netbin/endian"
	"github.com/mhdkit/netbin/internal/logging"
	"github.com/mhdkit/netbin/internal/options"
)

// Config holds the settings shared by Encoder and Decoder.
type Config struct {
	engine    endian.EndianEngine
	maxLength int
	logger    *logging.Logger
}

// NewConfig returns the default configuration: little-endian, lengths capped at
// encoding.DefaultMaxLength, logging discarded.
func NewConfig() *Config {
	return &Config{
		engine:    endian.GetLittleEndianEngine(),
		maxLength: encoding.DefaultMaxLength,
		logger:    logging.Noop(),
	}
}

// Engine returns the configured byte order.
func (c *Config) Engine() endian.EndianEngine {
	return c.engine
}

// MaxLength returns the configured decode limit; 0 means unlimited.
func (c *Config) MaxLength() int {
	return c.maxLength
}

// Option configures an Encoder or Decoder.
type Option = options.Option[*Config]

// WithLittleEndian selects little-endian byte order. It is the default and the
// only order the Mids tools understand.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian selects big-endian byte order for fixed-width numbers.
// Length prefixes are byte-oriented and unaffected.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithEngine selects an explicit byte order. A nil engine is rejected.
func WithEngine(engine endian.EndianEngine) Option {
	return options.New(func(c *Config) error {
		if engine == nil {
			return fmt.Errorf("codec: nil endian engine")
		}
		c.engine = engine

		return nil
	})
}

// WithMaxLength bounds decoded string lengths and sequence counts.
// 0 disables the limit; negative values are rejected.
func WithMaxLength(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("codec: negative max length %d", n)
		}
		c.maxLength = n

		return nil
	})
}

// WithLogger routes debug and error records about whole documents to l.
// A nil logger restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = logging.Wrap(l)
	})
}

func newConfig(opts []Option) (*Config, error) {
	cfg := NewConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
