// Package fsutil provides crash-safe file replacement.
package fsutil

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

const writeBufferSize = 256 << 10

// WriteFile replaces path with the bytes produced by writeFunc.
//
// Output goes to a temporary file in the same directory, which is synced and
// renamed over path only after writeFunc succeeds. On any error path is left
// untouched and the temporary file is removed.
func WriteFile(path string, perm os.FileMode, writeFunc func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(perm); err != nil {
		return err
	}

	buf := bufio.NewWriterSize(tmp, writeBufferSize)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
