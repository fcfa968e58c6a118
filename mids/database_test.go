package mids_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mhdkit/netbin/bitvec"
	"github.com/mhdkit/netbin/codec"
	"github.com/mhdkit/netbin/errs"
	"github.com/mhdkit/netbin/format"
	"github.com/mhdkit/netbin/internal/fixture"
	"github.com/mhdkit/netbin/mids"
)

func TestDatabaseRoundTrip(t *testing.T) {
	db := fixture.Database()

	var buf bytes.Buffer
	require.NoError(t, mids.WriteDatabase(&buf, db))

	data := buf.Bytes()
	require.Equal(t, byte(len(mids.Magic)), data[0])
	require.Equal(t, mids.Magic, string(data[1:1+len(mids.Magic)]))

	got, err := mids.ReadDatabase(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, db, got)

	var again bytes.Buffer
	require.NoError(t, mids.WriteDatabase(&again, got))
	require.Equal(t, data, again.Bytes(), "re-encoding is byte-identical")
}

func TestReadDatabaseWrongType(t *testing.T) {
	data, err := codec.MarshalDocument("Mids Reborn Enhancement Database", fixture.Database())
	require.NoError(t, err)

	_, err = mids.ReadDatabase(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrFormatMismatch)
	require.Contains(t, err.Error(), "I12.mhd")
}

func TestReadDatabaseTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, mids.WriteDatabase(&buf, fixture.Database()))

	data := buf.Bytes()
	_, err := mids.ReadDatabase(bytes.NewReader(data[:len(data)-3]))
	require.ErrorIs(t, err, errs.ErrIO)

	var fe *errs.FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "summons[0].upgrade_power_full_name[1]", fe.Path())
}

func TestWriteDatabaseUnknownVariantPath(t *testing.T) {
	db := fixture.Database()
	db.Powers[2].Effects[1].EffectType = mids.EffectType(999)

	err := mids.WriteDatabase(&bytes.Buffer{}, db)
	require.ErrorIs(t, err, errs.ErrUnknownVariant)

	var fe *errs.FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "powers[2].effects[1].effect_type", fe.Path())
	require.Contains(t, err.Error(), "EffectType(999)")
}

func TestSummonHackSequenceLayout(t *testing.T) {
	s := mids.Summon{
		UID:               "a",
		EntityType:        mids.SummonEntityHenchman,
		PowersetFullNames: []string{"x"},
	}

	data, err := codec.Marshal(&s)
	require.NoError(t, err)
	require.Equal(t, []byte{
		// uid, display_name
		0x01, 'a', 0x00,
		// entity_type
		0x01, 0x00, 0x00, 0x00,
		// class_name
		0x00,
		// powerset_full_name: count, count-1, elements
		0x01, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x01, 'x',
		// upgrade_power_full_name: empty
		0x00, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF,
	}, data)
}

func TestUnknownFlagBitsSurvive(t *testing.T) {
	db := fixture.Database()
	mask := db.Powers[0].EntitiesAffected.Bits() | 1<<12
	db.Powers[0].EntitiesAffected = bitvec.FromBits[mids.EntityKind](mask)

	var buf bytes.Buffer
	require.NoError(t, mids.WriteDatabase(&buf, db))
	got, err := mids.ReadDatabase(&buf)
	require.NoError(t, err)

	require.Equal(t, mask, got.Powers[0].EntitiesAffected.Bits())
	require.Equal(t,
		[]mids.EntityKind{mids.EntityKindFoe, mids.EntityKindLocation},
		got.Powers[0].EntitiesAffected.Flags(),
	)
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "I12.mhd")
	db := fixture.Database()

	require.NoError(t, mids.SaveFile(path, db))
	got, err := mids.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, db, got)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	bad := fixture.Database()
	bad.Archetypes[0].ClassType = mids.ClassType(77)
	require.ErrorIs(t, mids.SaveFile(path, bad), errs.ErrUnknownVariant)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after, "a failed save leaves the file untouched")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files are left behind")

	_, err = mids.LoadFile(filepath.Join(t.TempDir(), "missing.mhd"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBumpVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025.7.1402", "2025.7.1403", false},
		{"3.4.9", "3.4.10", false},
		{"1.0", "1.1", false},
		{"1", "", true},
		{"1.x", "", true},
		{"1.", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := mids.BumpVersion(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	db := fixture.Database()
	require.NoError(t, db.BumpVersion())
	require.Equal(t, "2025.7.1403", db.Version)
}

func TestStats(t *testing.T) {
	require.Equal(t, mids.Stats{
		Archetypes: 2,
		Powersets:  2,
		Powers:     3,
		Effects:    4,
		Summons:    1,
	}, fixture.Database().Stats())
}

func TestPowerPredicates(t *testing.T) {
	db := fixture.Database()

	require.False(t, db.Powers[0].HasAttribMod())
	require.False(t, db.Powers[0].HasRedirect())
	require.True(t, db.Powers[1].HasAttribMod())
	require.True(t, db.Powers[2].HasRedirect())

	require.Equal(t, "Blaster_Ranged.Fire_Blast", db.Powers[0].PowersetFullName())
	require.Empty(t, (&mids.Power{FullName: "orphan"}).PowersetFullName())
}

func TestIndex(t *testing.T) {
	db := fixture.Database()
	idx := mids.NewIndex(db)

	p, ok := idx.Power("blaster_ranged.fire_blast.FLARES")
	require.True(t, ok)
	require.Same(t, &db.Powers[0], p)

	_, ok = idx.Power("Blaster_Ranged.Fire_Blast.Inferno")
	require.False(t, ok)

	ps, ok := idx.Powerset("Pets.Fire_Imps")
	require.True(t, ok)
	require.Equal(t, "Pets", ps.DisplayName)

	at, ok := idx.Archetype("class_blaster")
	require.True(t, ok)
	require.Equal(t, "Blaster", at.DisplayName)

	powers := idx.PowersOf("Blaster_Ranged.Fire_Blast")
	require.Len(t, powers, 2)
	require.Equal(t, "Flares", powers[0].PowerName)
	require.Equal(t, "Fire_Blast", powers[1].PowerName)
	require.Empty(t, idx.PowersOf("Pool.Leaping"))
}

func TestUnmarshalDatabase(t *testing.T) {
	db := fixture.Database()
	data, err := mids.MarshalDatabase(db)
	require.NoError(t, err)

	got, err := mids.UnmarshalDatabase(data)
	require.NoError(t, err)
	require.Equal(t, db, got)

	_, err = mids.UnmarshalDatabase(append(data, 0))
	require.ErrorIs(t, err, errs.ErrTrailingData)

	other, err := codec.MarshalDocument("Mids Reborn Salvage Database", db)
	require.NoError(t, err)
	_, err = mids.UnmarshalDatabase(other)
	require.ErrorIs(t, err, errs.ErrFormatMismatch)
	require.ErrorContains(t, err, "I12.mhd")

	_, err = mids.UnmarshalDatabase([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F})
	require.ErrorIs(t, err, errs.ErrFormatMismatch)
	require.ErrorContains(t, err, "I12.mhd")
}

func TestDuplicates(t *testing.T) {
	db := fixture.Database()
	require.Empty(t, db.Duplicates())

	extra := db.Powers[0]
	extra.FullName = "BLASTER_RANGED.FIRE_BLAST.FLARES"
	db.Powers = append(db.Powers, extra)
	db.Archetypes = append(db.Archetypes, db.Archetypes[1])

	require.Equal(t, []mids.Duplicate{
		{Kind: "archetype", Name: "Class_Minion_Pets", Count: 2},
		{Kind: "power", Name: "Blaster_Ranged.Fire_Blast.Flares", Count: 2},
	}, db.Duplicates())

	idx := mids.NewIndex(db)
	p, ok := idx.Power("blaster_ranged.fire_blast.flares")
	require.True(t, ok)
	require.Same(t, &db.Powers[0], p)
}

func TestDatabaseLayout(t *testing.T) {
	require.NoError(t, codec.Validate(&mids.Database{}))

	layout := codec.Describe(&mids.Database{})
	require.Equal(t, "version", layout[0].Path)

	var hackSeqs []string
	for _, l := range layout {
		if l.Kind == format.KindHackSeq {
			hackSeqs = append(hackSeqs, l.Path)
		}
	}
	require.Equal(t, []string{
		"powers[].effects[].active_conditionals_kv",
		"summons[].powerset_full_name",
		"summons[].upgrade_power_full_name",
	}, hackSeqs)
}
