package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type color uint32

var colors = NewTable[color]("Color").
	Add("Red", "Green").
	AddAt(10, "Blue", "Cyan")

func TestTableOrdinals(t *testing.T) {
	tests := []struct {
		name string
		want color
	}{
		{"Red", 0},
		{"Green", 1},
		{"Blue", 10},
		{"Cyan", 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := colors.Parse(tt.name)
			require.True(t, ok)
			require.Equal(t, tt.want, v)
			require.True(t, colors.Known(v))
			require.Equal(t, tt.name, colors.Name(v))
		})
	}

	require.Equal(t, 4, colors.Len())
	require.Equal(t, "Color", colors.TypeName())
	require.Equal(t, []color{0, 1, 10, 11}, colors.Values())
}

func TestTableGapsAreUnknown(t *testing.T) {
	for v := color(2); v < 10; v++ {
		require.False(t, colors.Known(v))
		require.Empty(t, colors.Name(v))
	}
	require.Equal(t, "Color(5)", colors.Format(5))
	require.Equal(t, "Blue", colors.Format(10))

	_, ok := colors.Parse("Magenta")
	require.False(t, ok)
}

func TestTableValuesIsCopy(t *testing.T) {
	vals := colors.Values()
	vals[0] = 99
	require.Equal(t, color(0), colors.Values()[0])
}

func TestTableDuplicatesPanic(t *testing.T) {
	require.Panics(t, func() {
		NewTable[color]("Dup").Add("A", "B").AddAt(1, "C")
	})
	require.Panics(t, func() {
		NewTable[color]("Dup").Add("A", "B", "A")
	})
}

func TestTableMarshalName(t *testing.T) {
	text, err := colors.MarshalName(11)
	require.NoError(t, err)
	require.Equal(t, "Cyan", string(text))

	text, err = colors.MarshalName(7)
	require.NoError(t, err)
	require.Equal(t, "7", string(text))

	v, err := colors.UnmarshalName([]byte("Blue"))
	require.NoError(t, err)
	require.Equal(t, color(10), v)

	v, err = colors.UnmarshalName([]byte("7"))
	require.NoError(t, err)
	require.Equal(t, color(7), v)

	_, err = colors.UnmarshalName([]byte("Magenta"))
	require.Error(t, err)
}
