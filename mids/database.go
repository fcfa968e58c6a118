// Package mids describes the Mids Reborn powers database (I12.mhd) in terms of
// the netbin codec and provides the operations the repair tools need on it:
// loading, saving, lookups and version bumps.
package mids

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mhdkit/netbin/codec"
	"github.com/mhdkit/netbin/errs"
	"github.com/mhdkit/netbin/internal/collision"
	"github.com/mhdkit/netbin/internal/fsutil"
)

// Magic is the document type string at the start of every I12.mhd file.
const Magic = "Mids Reborn Powers Database"

// ReadDatabase decodes a database from r.
//
// Files of another Mids document type fail with errs.ErrFormatMismatch.
func ReadDatabase(r io.Reader, opts ...codec.Option) (*Database, error) {
	var db Database
	if err := codec.DecodeDocument(r, Magic, &db, opts...); err != nil {
		return nil, hint(err)
	}

	return &db, nil
}

// UnmarshalDatabase decodes a database held in memory. Bytes after the
// document are reported as errs.ErrTrailingData.
func UnmarshalDatabase(data []byte, opts ...codec.Option) (*Database, error) {
	var db Database
	if err := codec.UnmarshalDocument(data, Magic, &db, opts...); err != nil {
		return nil, hint(err)
	}

	return &db, nil
}

// MarshalDatabase encodes db in memory.
func MarshalDatabase(db *Database, opts ...codec.Option) ([]byte, error) {
	return codec.MarshalDocument(Magic, db, opts...)
}

func hint(err error) error {
	if errors.Is(err, errs.ErrFormatMismatch) {
		return fmt.Errorf("%w (must choose I12.mhd)", err)
	}

	return err
}

// WriteDatabase encodes db to w.
func WriteDatabase(w io.Writer, db *Database, opts ...codec.Option) error {
	return codec.EncodeDocument(w, Magic, db, opts...)
}

// LoadFile reads the database stored at path.
func LoadFile(path string, opts ...codec.Option) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadDatabase(bufio.NewReader(f), opts...)
}

// SaveFile writes db to path.
//
// The document is written to a temporary file in the same directory, which
// replaces path only once it is complete. An encode error leaves path untouched.
func SaveFile(path string, db *Database, opts ...codec.Option) error {
	return fsutil.WriteFile(path, 0o644, func(w io.Writer) error {
		return WriteDatabase(w, db, opts...)
	})
}

// BumpVersion increments the build number after the last dot of a version
// string: "2024.10.5" becomes "2024.10.6".
func BumpVersion(version string) (string, error) {
	head, tail, ok := cutLast(version, ".")
	if !ok {
		return "", fmt.Errorf("version %q has no build number", version)
	}

	build, err := strconv.ParseUint(tail, 10, 64)
	if err != nil {
		return "", fmt.Errorf("version %q: build number %q is not numeric", version, tail)
	}

	return head + "." + strconv.FormatUint(build+1, 10), nil
}

// BumpVersion increments the database's build number in place.
func (d *Database) BumpVersion() error {
	v, err := BumpVersion(d.Version)
	if err != nil {
		return err
	}
	d.Version = v

	return nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}

	return s, "", false
}

// Stats summarises the size of a database.
type Stats struct {
	Archetypes int `yaml:"archetypes" cbor:"archetypes"`
	Powersets  int `yaml:"powersets" cbor:"powersets"`
	Powers     int `yaml:"powers" cbor:"powers"`
	Effects    int `yaml:"effects" cbor:"effects"`
	Summons    int `yaml:"summons" cbor:"summons"`
}

// Stats counts the database's records.
func (d *Database) Stats() Stats {
	s := Stats{
		Archetypes: len(d.Archetypes),
		Powersets:  len(d.Powersets),
		Powers:     len(d.Powers),
		Summons:    len(d.Summons),
	}
	for i := range d.Powers {
		s.Effects += len(d.Powers[i].Effects)
	}

	return s
}

// HasAttribMod reports whether any effect of the power modifies a power attribute.
func (p *Power) HasAttribMod() bool {
	for i := range p.Effects {
		if p.Effects[i].PowerAttribs != PowerAttribsNone {
			return true
		}
	}

	return false
}

// HasRedirect reports whether the power redirects to other powers.
func (p *Power) HasRedirect() bool {
	for i := range p.Effects {
		if p.Effects[i].EffectType == EffectTypePowerRedirect {
			return true
		}
	}

	return false
}

// PowersetFullName returns the "group.set" prefix of the power's full name.
func (p *Power) PowersetFullName() string {
	head, _, ok := cutLast(p.FullName, ".")
	if !ok {
		return ""
	}

	return head
}

// Duplicate is a name shared by more than one record of the same kind.
type Duplicate struct {
	Kind  string `yaml:"kind" cbor:"kind"`
	Name  string `yaml:"name" cbor:"name"`
	Count int    `yaml:"count" cbor:"count"`
}

// Duplicates lists archetype class names, powerset full names and power full
// names that appear more than once, compared case-insensitively. Lookups
// through an Index only ever see the first of each.
func (d *Database) Duplicates() []Duplicate {
	var out []Duplicate

	collect := func(kind string, n int, name func(int) string) {
		tracker := collision.NewTracker()
		for i := range n {
			if s := name(i); s != "" {
				tracker.Track(s)
			}
		}
		for s, count := range tracker.Duplicates() {
			out = append(out, Duplicate{Kind: kind, Name: s, Count: count})
		}
	}

	collect("archetype", len(d.Archetypes), func(i int) string { return d.Archetypes[i].ClassName })
	collect("powerset", len(d.Powersets), func(i int) string { return d.Powersets[i].FullName })
	collect("power", len(d.Powers), func(i int) string { return d.Powers[i].FullName })

	return out
}
