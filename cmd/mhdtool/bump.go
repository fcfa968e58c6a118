package main

import (
	"context"
	"fmt"

	"github.com/mhdkit/netbin/mids"
)

// runBump increments the build number, writing back to the input unless --out
// names another file.
func runBump(ctx context.Context, a *app, args []string) error {
	var out string

	flagSet := a.flagSet("bump")
	flagSet.StringVarP(&out, "out", "o", "", "output path (default: overwrite FILE)")
	if err := parseArgs(flagSet, args, 1, 1); err != nil {
		return err
	}

	path := flagSet.Arg(0)
	if out == "" {
		out = path
	}

	db, _, err := a.loadDatabase(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	old := db.Version
	if err := db.BumpVersion(); err != nil {
		return err
	}
	if err := mids.SaveFile(out, db, a.codecOpts...); err != nil {
		return err
	}

	a.log.WithFile(out).InfoContext(ctx, "version bumped", "from", old, "to", db.Version)
	fmt.Fprintf(a.stdout, "%s -> %s\n", old, db.Version)

	return nil
}
