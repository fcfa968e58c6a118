package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mhdkit/netbin/errs"
	"github.com/mhdkit/netbin/format"
)

type withMap struct {
	Name  string
	Attrs map[string]int32
}

func (w *withMap) Fields() []Field {
	return []Field{
		F("name", String(&w.Name)),
		F("nested", Tuple(Int8(new(int8)), Map(&w.Attrs))),
	}
}

func TestDescribe(t *testing.T) {
	layout := Describe(&everything{})

	byPath := make(map[string]FieldLayout, len(layout))
	for _, l := range layout {
		byPath[l.Path] = l
	}

	tests := []struct {
		path  string
		kind  format.Kind
		size  int
		depth int
	}{
		{"flag", format.KindBool, 1, 0},
		{"i64", format.KindInt64, 8, 0},
		{"text", format.KindString, 0, 0},
		{"pair", format.KindTuple, 0, 0},
		{"pair[1]", format.KindString, 0, 1},
		{"coord[2]", format.KindFloat32, 4, 1},
		{"unit", format.KindUnit, 0, 0},
		{"items", format.KindSeq, 0, 0},
		{"items[]", format.KindRecord, 0, 1},
		{"items[].shape", format.KindEnum, 4, 2},
		{"items[].tags", format.KindFlags, 4, 2},
		{"legacy", format.KindHackSeq, 0, 0},
		{"legacy[]", format.KindString, 0, 1},
		{"nested.b[]", format.KindInt8, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, ok := byPath[tt.path]
			require.True(t, ok)
			require.Equal(t, tt.kind, l.Kind)
			require.Equal(t, tt.size, l.Size)
			require.Equal(t, tt.depth, l.Depth)
		})
	}

	require.Equal(t, "flag", layout[0].Path)
	require.Equal(t, "weights[]", layout[len(layout)-1].Path)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, format.KindBytes, KindOf(Bytes(new([]byte))))
	require.Equal(t, format.KindChar, KindOf(Char(new(rune))))
	require.Equal(t, format.KindInvalid, KindOf(nil))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(&everything{}))

	err := Validate(&withMap{})
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
	require.ErrorContains(t, err, "map at nested[1]")
}
