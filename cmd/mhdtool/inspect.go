package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mhdkit/netbin/codec"
	"github.com/mhdkit/netbin/internal/hash"
	"github.com/mhdkit/netbin/mids"
)

func runInspect(ctx context.Context, a *app, args []string) error {
	flagSet := a.flagSet("inspect")
	if err := parseArgs(flagSet, args, 1, 1); err != nil {
		return err
	}

	path := flagSet.Arg(0)
	db, doc, err := a.loadDatabase(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	st := db.Stats()
	a.log.WithFile(path).InfoContext(ctx, "database loaded",
		"version", db.Version,
		"issue", db.Issue,
		"powers", st.Powers,
	)

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "file:\t%s\n", path)
	fmt.Fprintf(tw, "version:\t%s\n", db.Version)
	fmt.Fprintf(tw, "issue:\t%d\n", db.Issue)
	fmt.Fprintf(tw, "volume:\t%d %s\n", db.PageVolume, db.PageVolumeName)
	fmt.Fprintf(tw, "archetypes:\t%d\n", st.Archetypes)
	fmt.Fprintf(tw, "powersets:\t%d\n", st.Powersets)
	fmt.Fprintf(tw, "powers:\t%d\n", st.Powers)
	fmt.Fprintf(tw, "effects:\t%d\n", st.Effects)
	fmt.Fprintf(tw, "summons:\t%d\n", st.Summons)
	dups := db.Duplicates()
	for _, d := range dups {
		a.log.WithFile(path).WarnContext(ctx, "duplicate name", "kind", d.Kind, "name", d.Name, "count", d.Count)
	}
	fmt.Fprintf(tw, "duplicates:\t%d\n", len(dups))
	fmt.Fprintf(tw, "bytes:\t%d\n", len(doc))
	fmt.Fprintf(tw, "xxhash64:\t%016x\n", hash.Sum(doc))

	return tw.Flush()
}

func runEClasses(_ context.Context, a *app, args []string) error {
	flagSet := a.flagSet("eclasses")
	if err := parseArgs(flagSet, args, 1, 1); err != nil {
		return err
	}

	f, err := os.Open(flagSet.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	ec, err := mids.ReadEnhancementClasses(f)
	if err != nil {
		return fmt.Errorf("%s: %w", flagSet.Arg(0), err)
	}

	for i, name := range ec.All() {
		fmt.Fprintf(a.stdout, "%d\t%s\n", i, name)
	}

	return nil
}

func runSchema(_ context.Context, a *app, args []string) error {
	flagSet := a.flagSet("schema")
	if err := parseArgs(flagSet, args, 0, 0); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "magic\tstring\t%q\n", mids.Magic)
	for _, l := range codec.Describe(&mids.Database{}) {
		size := "-"
		if l.Size > 0 {
			size = strconv.Itoa(l.Size)
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\n", strings.Repeat("  ", l.Depth), l.Path, l.Kind, size)
	}

	return tw.Flush()
}
