// Package config loads the mhdtool configuration file.
//
// Configuration comes from a single YAML file named by the --config flag or,
// when the flag is absent, the MHDTOOL_CONFIG environment variable. With
// neither set the built-in defaults apply. Values in the file override the
// defaults field by field; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mhdkit/netbin/codec"
	"github.com/mhdkit/netbin/encoding"
	"github.com/mhdkit/netbin/endian"
	"github.com/mhdkit/netbin/format"
	"github.com/mhdkit/netbin/internal/logging"
	"github.com/mhdkit/netbin/snapshot"
)

// EnvVar names the environment variable consulted when no --config flag is given.
const EnvVar = "MHDTOOL_CONFIG"

// Config is the tool configuration.
type Config struct {
	// Log configures diagnostic output.
	Log LogConfig `yaml:"log"`

	// Codec configures document encoding and decoding.
	Codec CodecConfig `yaml:"codec"`

	// Snapshot configures the snapshot and restore commands.
	Snapshot SnapshotConfig `yaml:"snapshot"`

	// Verify configures the verify command.
	Verify VerifyConfig `yaml:"verify"`
}

// LogConfig configures diagnostic output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Format is text or json.
	// Default: text
	Format string `yaml:"format"`
}

// CodecConfig configures document encoding and decoding.
type CodecConfig struct {
	// ByteOrder is little or big.
	// Default: little
	ByteOrder string `yaml:"byte_order"`

	// MaxLength bounds decoded string lengths and sequence counts. 0 disables the bound.
	// Default: 64 MiB
	MaxLength int `yaml:"max_length"`
}

// SnapshotConfig configures the snapshot container.
type SnapshotConfig struct {
	// Compression is none, zstd, s2 or lz4.
	// Default: zstd
	Compression string `yaml:"compression"`

	// MaxRawLength bounds the document size accepted by restore.
	// Default: 1 GiB
	MaxRawLength uint64 `yaml:"max_raw_length"`
}

// VerifyConfig configures the verify command.
type VerifyConfig struct {
	// Concurrency is the number of files verified at once.
	// Default: 4
	Concurrency int `yaml:"concurrency"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Codec: CodecConfig{
			ByteOrder: "little",
			MaxLength: encoding.DefaultMaxLength,
		},
		Snapshot: SnapshotConfig{
			Compression:  "zstd",
			MaxRawLength: snapshot.DefaultMaxRawLength,
		},
		Verify: VerifyConfig{
			Concurrency: 4,
		},
	}
}

// Resolve loads the configuration named by path, falling back to the
// MHDTOOL_CONFIG environment variable and then to Default.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile loads and validates the configuration file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML configuration over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	if _, err := endian.ByName(c.Codec.ByteOrder); err != nil {
		errs = append(errs, fmt.Errorf("codec.byte_order: %w", err))
	}
	if c.Codec.MaxLength < 0 {
		errs = append(errs, fmt.Errorf("codec.max_length must not be negative"))
	}

	if _, err := format.ParseCompression(c.Snapshot.Compression); err != nil {
		errs = append(errs, fmt.Errorf("snapshot.compression: %w", err))
	}

	if c.Verify.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("verify.concurrency must be at least 1"))
	}

	return errors.Join(errs...)
}

// Logger builds the logger described by the log section.
func (c *Config) Logger(w io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	if c.Log.Format == "json" {
		return logging.NewJSONLogger(w, level), nil
	}

	return logging.NewTextLogger(w, level), nil
}

// CodecOptions returns the encoder and decoder options described by the codec section.
func (c *Config) CodecOptions(l *slog.Logger) ([]codec.Option, error) {
	engine, err := endian.ByName(c.Codec.ByteOrder)
	if err != nil {
		return nil, err
	}

	opts := []codec.Option{
		codec.WithEngine(engine),
		codec.WithMaxLength(c.Codec.MaxLength),
	}
	if l != nil {
		opts = append(opts, codec.WithLogger(l))
	}

	return opts, nil
}

// SnapshotOptions returns the snapshot options described by the snapshot section.
func (c *Config) SnapshotOptions(l *slog.Logger) ([]snapshot.Option, error) {
	ct, err := format.ParseCompression(c.Snapshot.Compression)
	if err != nil {
		return nil, err
	}

	opts := []snapshot.Option{
		snapshot.WithCompression(ct),
		snapshot.WithMaxRawLength(c.Snapshot.MaxRawLength),
	}
	if l != nil {
		opts = append(opts, snapshot.WithLogger(l))
	}

	return opts, nil
}
