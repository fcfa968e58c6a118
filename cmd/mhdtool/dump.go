package main

import (
	"context"
	"fmt"
	"io"

	"github.com/mhdkit/netbin/internal/dump"
	"github.com/mhdkit/netbin/mids"
)

func runDump(_ context.Context, a *app, args []string) error {
	var formatName, out string

	flagSet := a.flagSet("dump")
	flagSet.StringVarP(&formatName, "format", "f", "yaml", "yaml or cbor")
	flagSet.StringVarP(&out, "out", "o", "-", "output path, - for stdout")
	if err := parseArgs(flagSet, args, 1, 1); err != nil {
		return err
	}

	f, err := dump.ParseFormat(formatName)
	if err != nil {
		return usageError("%w", err)
	}

	db, _, err := a.loadDatabase(flagSet.Arg(0))
	if err != nil {
		return fmt.Errorf("%s: %w", flagSet.Arg(0), err)
	}

	return a.writeOutput(out, func(w io.Writer) error {
		return dump.Write(w, f, db)
	})
}

func runPower(_ context.Context, a *app, args []string) error {
	var formatName string

	flagSet := a.flagSet("power")
	flagSet.StringVarP(&formatName, "format", "f", "yaml", "yaml or cbor")
	if err := parseArgs(flagSet, args, 2, 2); err != nil {
		return err
	}

	f, err := dump.ParseFormat(formatName)
	if err != nil {
		return usageError("%w", err)
	}

	db, _, err := a.loadDatabase(flagSet.Arg(0))
	if err != nil {
		return fmt.Errorf("%s: %w", flagSet.Arg(0), err)
	}

	p, ok := mids.NewIndex(db).Power(flagSet.Arg(1))
	if !ok {
		return fmt.Errorf("power %q not found", flagSet.Arg(1))
	}

	return dump.Write(a.stdout, f, p)
}
