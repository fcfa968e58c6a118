package mids

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagOrdinalGaps(t *testing.T) {
	require.Equal(t, EntityKind(11), EntityKindFoe)
	require.Equal(t, EntityKind(13), EntityKindLocation)
	require.Equal(t, EntityKind(27), EntityKindMyOwner)
	require.False(t, EntityKind(12).Known())
	require.Equal(t, "EntityKind(12)", EntityKind(12).String())

	require.Equal(t, ModeFlag(17), ModeFlagShivanMode)
	require.Equal(t, ModeFlag(19), ModeFlagWarshadeBlasterMode)
	require.Equal(t, ModeFlag(20), ModeFlagWarshadeTankerMode)
	require.False(t, ModeFlag(18).Known())
}

func TestEnumNames(t *testing.T) {
	require.Equal(t, "PowerRedirect", EffectTypePowerRedirect.String())
	require.Equal(t, "ExecutePower", EffectTypeExecutePower.String())
	require.Equal(t, "Self", ToWhoSelf.String())
	require.Equal(t, "Disable_All", ModeFlagDisableAll.String())
	require.Equal(t, "X_RechargeTime", EnhanceXRechargeTime.String())
	require.Equal(t, "EntCreate_x", EffectTypeEntCreateX.String())
	require.Equal(t, SetType(49), SetTypeTeleportNoSprint)
	require.False(t, SetType(50).Known())
}

func TestEnumTableSizes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Aspect", aspectNames.Len(), 5},
		{"Damage", damageNames.Len(), 16},
		{"EffectType", effectTypeNames.Len(), 86},
		{"EntityKind", entityKindNames.Len(), 27},
		{"ModeFlag", modeFlagNames.Len(), 20},
		{"SetType", setTypeNames.Len(), 50},
		{"SpecialCase", specialCaseNames.Len(), 63},
		{"VectorKind", vectorKindNames.Len(), 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEnumText(t *testing.T) {
	text, err := EffectTypeDamage.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "Damage", string(text))

	var v EffectType
	require.NoError(t, v.UnmarshalText([]byte("Heal")))
	require.Equal(t, EffectTypeHeal, v)

	require.Error(t, v.UnmarshalText([]byte("NotAnEffect")))
	require.Equal(t, EffectTypeHeal, v, "a failed unmarshal leaves the value unchanged")

	flags := Vector{}
	flags.Set(VectorKindMelee)
	flags.Set(VectorKindNegativeEnergy)
	text, err = flags.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "Melee|NegativeEnergy", string(text))
}

func TestEnhancementClasses(t *testing.T) {
	table := strings.Join([]string{
		"Version 1",
		"Index\tID\tDesc\tName",
		"0\t0\tNone\tNone",
		"1\t1\tAccuracy\tAcc",
		"3\t3\tDamage\tDmg",
		"End",
		"9\t9\tIgnored\tIgnored",
	}, "\r\n")

	ec, err := ReadEnhancementClasses(strings.NewReader(table))
	require.NoError(t, err)
	require.Equal(t, 3, ec.Len())

	i, ok := ec.Lookup("Dmg")
	require.True(t, ok)
	require.Equal(t, uint32(3), i)
	require.Equal(t, "Acc", ec.Name(1))
	require.Empty(t, ec.Name(2))
	require.Empty(t, ec.Name(100))

	_, ok = ec.Lookup("Ignored")
	require.False(t, ok)

	var names []string
	for i, name := range ec.All() {
		names = append(names, strconv.Itoa(int(i))+"="+name)
	}
	require.Equal(t, []string{"0=None", "1=Acc", "3=Dmg"}, names)
}

func TestEnhancementClassesReusedIndex(t *testing.T) {
	table := "Index\tID\tDesc\tName\n2\t2\tOld\tOld\n2\t2\tNew\tNew\nEnd\n"

	ec, err := ReadEnhancementClasses(strings.NewReader(table))
	require.NoError(t, err)
	require.Equal(t, "New", ec.Name(2))

	i, ok := ec.Lookup("New")
	require.True(t, ok)
	require.Equal(t, uint32(2), i)

	_, ok = ec.Lookup("Old")
	require.False(t, ok)
}

func TestEnhancementClassesLongRow(t *testing.T) {
	desc := strings.Repeat("d", 100*1024)
	table := "Index\tID\tDesc\tName\n1\t1\t" + desc + "\tLong\nEnd\n"

	ec, err := ReadEnhancementClasses(strings.NewReader(table))
	require.NoError(t, err)
	require.Equal(t, "Long", ec.Name(1))
}

func TestEnhancementClassesErrors(t *testing.T) {
	tests := map[string]string{
		"no header":  "0\t0\tNone\tNone\n",
		"short row":  "Index\tID\tDesc\tName\n1\t1\n",
		"bad index":  "Index\tID\tDesc\tName\nx\t1\ta\tb\n",
		"huge index": "Index\tID\tDesc\tName\n4000000000\t1\ta\tb\n",
		"negative":   "Index\tID\tDesc\tName\n-1\t1\ta\tb\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadEnhancementClasses(strings.NewReader(input))
			require.Error(t, err)
		})
	}
}
