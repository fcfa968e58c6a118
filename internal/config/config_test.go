package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mhdkit/netbin/codec"
	"github.com/mhdkit/netbin/encoding"
	"github.com/mhdkit/netbin/endian"
	"github.com/mhdkit/netbin/internal/options"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "zstd", cfg.Snapshot.Compression)
	require.Equal(t, encoding.DefaultMaxLength, cfg.Codec.MaxLength)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
log:
  level: debug
codec:
  byte_order: big
snapshot:
  compression: lz4
`))
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format, "unset keys keep their defaults")
	require.Equal(t, "big", cfg.Codec.ByteOrder)
	require.Equal(t, encoding.DefaultMaxLength, cfg.Codec.MaxLength)
	require.Equal(t, "lz4", cfg.Snapshot.Compression)
	require.Equal(t, 4, cfg.Verify.Concurrency)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("log:\n  colour: true\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Config)
		want   string
	}{
		"log level": {
			mutate: func(c *Config) { c.Log.Level = "loud" },
			want:   "log.level",
		},
		"log format": {
			mutate: func(c *Config) { c.Log.Format = "xml" },
			want:   "log.format",
		},
		"byte order": {
			mutate: func(c *Config) { c.Codec.ByteOrder = "middle" },
			want:   "codec.byte_order",
		},
		"max length": {
			mutate: func(c *Config) { c.Codec.MaxLength = -1 },
			want:   "codec.max_length",
		},
		"compression": {
			mutate: func(c *Config) { c.Snapshot.Compression = "brotli" },
			want:   "snapshot.compression",
		},
		"concurrency": {
			mutate: func(c *Config) { c.Verify.Concurrency = 0 },
			want:   "verify.concurrency",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "xml"
	cfg.Verify.Concurrency = 0

	err := cfg.Validate()
	require.ErrorContains(t, err, "log.format")
	require.ErrorContains(t, err, "verify.concurrency")
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mhdtool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verify:\n  concurrency: 9\n"), 0o600))

	t.Run("no flag and no env", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		cfg, err := Resolve("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(EnvVar, path)
		cfg, err := Resolve("")
		require.NoError(t, err)
		require.Equal(t, 9, cfg.Verify.Concurrency)
	})

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvVar, filepath.Join(dir, "missing.yaml"))
		cfg, err := Resolve(path)
		require.NoError(t, err)
		require.Equal(t, 9, cfg.Verify.Concurrency)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Resolve(filepath.Join(dir, "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: xml\n"), 0o600))

	_, err := LoadFile(path)
	require.ErrorContains(t, err, path)
}

func TestCodecOptions(t *testing.T) {
	cfg := Default()
	cfg.Codec.ByteOrder = "big"
	cfg.Codec.MaxLength = 1024

	opts, err := cfg.CodecOptions(nil)
	require.NoError(t, err)

	cc := codec.NewConfig()
	require.NoError(t, options.Apply(cc, opts...))
	require.Equal(t, endian.GetBigEndianEngine(), cc.Engine())
	require.Equal(t, 1024, cc.MaxLength())
}

func TestSnapshotOptions(t *testing.T) {
	cfg := Default()
	cfg.Snapshot.Compression = "s2"

	opts, err := cfg.SnapshotOptions(nil)
	require.NoError(t, err)
	require.Len(t, opts, 2)
}

func TestLogger(t *testing.T) {
	var out bytes.Buffer

	cfg := Default()
	cfg.Log.Format = "json"
	l, err := cfg.Logger(&out)
	require.NoError(t, err)

	l.Info("hello")
	require.Contains(t, out.String(), `"msg":"hello"`)

	out.Reset()
	l.Debug("hidden")
	require.Empty(t, out.String())
}
