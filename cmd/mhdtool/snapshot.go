package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mhdkit/netbin/compress"
	"github.com/mhdkit/netbin/format"
	"github.com/mhdkit/netbin/mids"
	"github.com/mhdkit/netbin/snapshot"
)

func runSnapshot(ctx context.Context, a *app, args []string) error {
	var out, compression string

	flagSet := a.flagSet("snapshot")
	flagSet.StringVarP(&out, "out", "o", "", "snapshot path (required)")
	flagSet.StringVarP(&compression, "compression", "c", "", "none, zstd, s2 or lz4 (default from config)")
	if err := parseArgs(flagSet, args, 1, 1); err != nil {
		return err
	}
	if out == "" {
		return usageError("snapshot: --out is required")
	}

	opts := a.snapOpts
	if compression != "" {
		ct, err := format.ParseCompression(compression)
		if err != nil {
			return usageError("%w", err)
		}
		opts = append(opts[:len(opts):len(opts)], snapshot.WithCompression(ct))
	}

	path := flagSet.Arg(0)
	doc, err := a.readDocument(path)
	if err != nil {
		return err
	}
	if _, err := mids.UnmarshalDatabase(doc, a.codecOpts...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var stats compress.CompressionStats
	err = a.writeOutput(out, func(w io.Writer) error {
		var err error
		stats, err = snapshot.Write(w, doc, opts...)
		return err
	})
	if err != nil {
		return err
	}

	a.log.WithFile(out).InfoContext(ctx, "snapshot written", "ratio", stats.CompressionRatio())
	fmt.Fprintf(a.stdout, "%s: %s, %d -> %d bytes (%.1f%% saved)\n",
		out, stats.Algorithm, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())

	return nil
}

func runRestore(ctx context.Context, a *app, args []string) error {
	var out string

	flagSet := a.flagSet("restore")
	flagSet.StringVarP(&out, "out", "o", "", "database path (required)")
	if err := parseArgs(flagSet, args, 1, 1); err != nil {
		return err
	}
	if out == "" {
		return usageError("restore: --out is required")
	}

	path := flagSet.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !snapshot.IsSnapshot(data) {
		return fmt.Errorf("%s: not a snapshot", path)
	}

	doc, h, err := snapshot.Read(bytes.NewReader(data), a.snapOpts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if _, err := mids.UnmarshalDatabase(doc, a.codecOpts...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := a.writeOutput(out, func(w io.Writer) error {
		_, err := w.Write(doc)
		return err
	}); err != nil {
		return err
	}

	a.log.WithFile(out).InfoContext(ctx, "snapshot restored", "compression", h.Compression.String(), "bytes", h.RawLength)

	return nil
}
