package mids

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// maxEnhancementClass bounds the index column so a corrupt table cannot force a
// huge allocation.
const maxEnhancementClass = 1 << 16

// maxEClassesLine bounds a single table row.
const maxEClassesLine = 1 << 20

// EnhancementClasses maps enhancement class names to the indexes stored in
// Power.Enhancements.
type EnhancementClasses struct {
	names []string
	index map[string]uint32
}

// ReadEnhancementClasses parses the tab-separated EClasses.mhd table.
//
// Lines before the "Index" header row are skipped and an "End" line terminates
// the table. Each row carries the index in its first column and the class name
// in its fourth.
func ReadEnhancementClasses(r io.Reader) (*EnhancementClasses, error) {
	ec := &EnhancementClasses{index: make(map[string]uint32)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxEClassesLine)
	header := false
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if !header {
			header = strings.HasPrefix(text, "Index\t")
			continue
		}
		if strings.HasPrefix(text, "End") {
			break
		}

		cols := strings.Split(text, "\t")
		if len(cols) < 4 {
			return nil, fmt.Errorf("eclasses line %d: %d columns, want at least 4", line, len(cols))
		}
		idx, err := strconv.ParseUint(cols[0], 10, 32)
		if err != nil || idx >= maxEnhancementClass {
			return nil, fmt.Errorf("eclasses line %d: bad index %q", line, cols[0])
		}

		for uint64(len(ec.names)) <= idx {
			ec.names = append(ec.names, "")
		}
		if prev := ec.names[idx]; prev != "" && ec.index[prev] == uint32(idx) {
			delete(ec.index, prev)
		}
		ec.names[idx] = cols[3]
		ec.index[cols[3]] = uint32(idx)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !header {
		return nil, fmt.Errorf("eclasses: no Index header row")
	}

	return ec, nil
}

// Lookup returns the index of a class name.
func (ec *EnhancementClasses) Lookup(name string) (uint32, bool) {
	i, ok := ec.index[name]
	return i, ok
}

// Name returns the class name at index i, or "" for an unused index.
func (ec *EnhancementClasses) Name(i uint32) string {
	if int(i) >= len(ec.names) {
		return ""
	}

	return ec.names[i]
}

// Len returns the number of named classes.
func (ec *EnhancementClasses) Len() int {
	return len(ec.index)
}

// All yields the named classes in index order.
func (ec *EnhancementClasses) All() iter.Seq2[uint32, string] {
	return func(yield func(uint32, string) bool) {
		for i, name := range ec.names {
			if name == "" {
				continue
			}
			if !yield(uint32(i), name) { //nolint:gosec
				return
			}
		}
	}
}
