package main

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mhdkit/netbin/internal/hash"
	"github.com/mhdkit/netbin/mids"
)

type verifyResult struct {
	path        string
	fingerprint uint64
	err         error
}

// runVerify decodes and re-encodes every file concurrently. Each file is
// reported; the command fails when any of them does not round-trip.
func runVerify(ctx context.Context, a *app, args []string) error {
	flagSet := a.flagSet("verify")
	if err := parseArgs(flagSet, args, 1, -1); err != nil {
		return err
	}
	paths := flagSet.Args()

	results := make([]verifyResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Verify.Concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fp, err := a.verifyFile(path)
			results[i] = verifyResult{path: path, fingerprint: fp, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			a.log.WithFile(r.path).ErrorContext(ctx, "verification failed", "error", r.err)
			fmt.Fprintf(a.stdout, "FAIL  %s: %v\n", r.path, r.err)
			continue
		}
		fmt.Fprintf(a.stdout, "ok    %s  %016x\n", r.path, r.fingerprint)
	}
	if failed > 0 {
		return &exitError{code: 1, err: fmt.Errorf("%d of %d files failed verification", failed, len(paths))}
	}

	return nil
}

func (a *app) verifyFile(path string) (uint64, error) {
	db, doc, err := a.loadDatabase(path)
	if err != nil {
		return 0, err
	}

	again, err := mids.MarshalDatabase(db, a.codecOpts...)
	if err != nil {
		return 0, fmt.Errorf("re-encode: %w", err)
	}

	want, got := hash.Sum(doc), hash.Sum(again)
	if want != got || !bytes.Equal(doc, again) {
		return 0, fmt.Errorf("re-encoded document differs: %016x != %016x", got, want)
	}

	return want, nil
}
