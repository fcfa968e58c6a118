package main

import (
	"bytes"
	"io"
	"os"

	"github.com/mhdkit/netbin/internal/fsutil"
	"github.com/mhdkit/netbin/mids"
	"github.com/mhdkit/netbin/snapshot"
)

// readDocument returns the encoded database stored at path, unwrapping it
// first when the file is a snapshot.
func (a *app) readDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !snapshot.IsSnapshot(data) {
		return data, nil
	}

	doc, _, err := snapshot.Read(bytes.NewReader(data), a.snapOpts...)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// loadDatabase decodes the database at path, which may be a snapshot.
func (a *app) loadDatabase(path string) (*mids.Database, []byte, error) {
	doc, err := a.readDocument(path)
	if err != nil {
		return nil, nil, err
	}

	db, err := mids.UnmarshalDatabase(doc, a.codecOpts...)
	if err != nil {
		return nil, nil, err
	}

	return db, doc, nil
}

// writeOutput sends the output of fn to stdout for "" or "-", and otherwise
// replaces the file at path.
func (a *app) writeOutput(path string, fn func(io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(a.stdout)
	}

	return fsutil.WriteFile(path, 0o644, fn)
}
