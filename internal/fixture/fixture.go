// Package fixture builds small but fully populated Mids databases for tests.
package fixture

import (
	"github.com/mhdkit/netbin/bitvec"
	"github.com/mhdkit/netbin/mids"
)

// Database returns a database with two archetypes, two powersets, three powers
// and one summon. Every sequence kind, enum and flag set in the schema carries
// at least one non-default value.
func Database() *mids.Database {
	return &mids.Database{
		Version:         "2025.7.1402",
		LegacyYear:      2012,
		Datetime:        638862912000000000,
		Issue:           27,
		PageVolume:      7,
		PageVolumeName:  "Homecoming",
		ArchetypesMagic: "Archetypes",
		Archetypes: []mids.Archetype{
			{
				DisplayName:    "Blaster",
				Hitpoints:      1205,
				HPCap:          1606.4,
				DescLong:       "Ranged damage.",
				ResCap:         75,
				Origins:        []string{"Science", "Magic"},
				ClassName:      "Class_Blaster",
				ClassType:      mids.ClassTypeHero,
				Column:         0,
				DescShort:      "Offense",
				PrimaryGroup:   "Blaster_Ranged",
				SecondaryGroup: "Blaster_Support",
				Playable:       true,
				RechargeCap:    5,
				DamageCap:      5,
				RecoveryCap:    5,
				RegenCap:       20,
				BaseRecovery:   1.67,
				BaseRegen:      1,
				BaseThreat:     1,
				PerceptionCap:  1153,
			},
			{
				DisplayName: "Minion",
				ClassName:   "Class_Minion_Pets",
				ClassType:   mids.ClassTypePet,
				Column:      -1,
			},
		},
		PowersetsMagic: "Powersets",
		Powersets: []mids.Powerset{
			{
				DisplayName:  "Fire Blast",
				NIDArchetype: 0,
				SetType:      mids.PowerSetTypePrimary,
				ImageName:    "FireBlast.png",
				FullName:     "Blaster_Ranged.Fire_Blast",
				SetName:      "Fire_Blast",
				Description:  "Fire!",
				ATClass:      "Class_Blaster",
				MutexSets: []mids.MutexSet{
					{UID: "Blaster_Ranged.Ice_Blast", NID: 2},
				},
			},
			{
				DisplayName:  "Pets",
				NIDArchetype: -1,
				SetType:      mids.PowerSetTypePet,
				FullName:     "Pets.Fire_Imps",
			},
		},
		PowersMagic: "Powers",
		Powers: []mids.Power{
			{
				StaticIndex: 1,
				FullName:    "Blaster_Ranged.Fire_Blast.Flares",
				GroupName:   "Blaster_Ranged",
				SetName:     "Fire_Blast",
				PowerName:   "Flares",
				DisplayName: "Flares",
				Available:   1,
				Requires: mids.Requirement{
					ClassName:  []string{"Class_Blaster"},
					PowerID:    []mids.StringPair{{"Blaster_Ranged.Fire_Blast", "Fire_Blast"}},
					PowerIDNot: []mids.StringPair{{"Pool.Leaping", ""}},
				},
				ModesRequired:    bitvec.Of(mids.ModeFlagArena, mids.ModeFlagWarshadeBlasterMode),
				ModesDisallowed:  bitvec.Of(mids.ModeFlagDisableAll),
				PowerType:        mids.PowerTypeClick,
				Accuracy:         1,
				AttackTypes:      bitvec.Of(mids.VectorKindRanged, mids.VectorKindFire),
				GroupMembership:  []string{"Attack"},
				EntitiesAffected: bitvec.Of(mids.EntityKindFoe, mids.EntityKindLocation),
				EntitiesAutoHit:  bitvec.Of(mids.EntityKindCaster),
				Target:           bitvec.Of(mids.EntityKindFoe),
				TargetLoS:        true,
				Range:            80,
				EndCost:          5.2,
				CastTime:         1,
				RechargeTime:     4,
				BaseRechargeTime: 4,
				EffectArea:       mids.EffectAreaCharacter,
				MaxTargets:       1,
				MaxBoosts:        "6",
				CastFlags:        bitvec.Of(mids.CastKindNearGround),
				AIReport:         mids.NotifyAlways,
				BoostsAllowed:    []string{"Damage", "Accuracy"},
				Enhancements:     []uint32{1, 2},
				SetTypes:         []mids.SetType{mids.SetTypeRangedST, mids.SetTypeUniversalDamage},
				Level:            1,
				IgnoreEnh:        []mids.Enhance{mids.EnhanceSlow},
				InherentType:     mids.GridTypePower,
				Effects: []mids.Effect{
					{
						PowerFullName:      "Blaster_Ranged.Fire_Blast.Flares",
						UniqueID:           1,
						EffectClass:        mids.EffectClassPrimary,
						EffectType:         mids.EffectTypeDamage,
						DamageType:         mids.DamageFire,
						Stacking:           mids.StackingYes,
						BaseProbability:    1,
						Suppression:        bitvec.Of(mids.SuppressTypeHeld, mids.SuppressTypeConfused),
						Buffable:           true,
						Resistible:         true,
						PvMode:             mids.PvXPve,
						ToWho:              mids.ToWhoTarget,
						Scale:              1.2,
						NMagnitude:         -1,
						Aspect:             mids.AspectCur,
						ModifierTable:      "Ranged_Damage",
						ActiveConditionals: []mids.StringPair{{"Source.Mode?", "Rage"}},
					},
				},
				Stacks: 1,
			},
			{
				StaticIndex: 2,
				FullName:    "Blaster_Ranged.Fire_Blast.Fire_Blast",
				GroupName:   "Blaster_Ranged",
				SetName:     "Fire_Blast",
				PowerName:   "Fire_Blast",
				DisplayName: "Fire Blast",
				Effects: []mids.Effect{
					{
						EffectType:   mids.EffectTypeModifyAttrib,
						PowerAttribs: mids.PowerAttribsRechargeTime,
						AttribType:   mids.AttribTypeMagnitude,
					},
				},
			},
			{
				StaticIndex: 3,
				FullName:    "Pets.Fire_Imps.Summon_Imps",
				GroupName:   "Pets",
				SetName:     "Fire_Imps",
				PowerName:   "Summon_Imps",
				DisplayName: "Imps",
				Effects: []mids.Effect{
					{EffectType: mids.EffectTypePowerRedirect, Summon: "Pets_Fire_Imp"},
					{EffectType: mids.EffectTypeEntCreate, MezType: mids.MezHeld},
				},
			},
		},
		SummonsMagic: "Summons",
		Summons: []mids.Summon{
			{
				UID:                   "Pets_Fire_Imp",
				DisplayName:           "Fire Imp",
				EntityType:            mids.SummonEntityPet,
				ClassName:             "Class_Minion_Pets",
				PowersetFullNames:     []string{"Pets.Fire_Imps"},
				UpgradePowerFullNames: []string{"Pets.Fire_Imps.Upgrade", "Pets.Fire_Imps.Upgrade2"},
			},
		},
	}
}
