package mids

import (
	"github.com/mhdkit/netbin/bitvec"
	"github.com/mhdkit/netbin/enum"
)

// Aspect selects which part of an attribute an effect modifies.
type Aspect uint32

const (
	AspectRes Aspect = iota
	AspectMax
	AspectAbs
	AspectStr
	AspectCur
)

var aspectNames = enum.NewTable[Aspect]("Aspect").
	Add(
		"Res",
		"Max",
		"Abs",
		"Str",
		"Cur",
	)

func (v Aspect) Known() bool {
	return aspectNames.Known(v)
}

func (v Aspect) String() string {
	return aspectNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v Aspect) MarshalText() ([]byte, error) {
	return aspectNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Aspect) UnmarshalText(text []byte) error {
	return unmarshalText(aspectNames, v, text)
}

// AttribType says how an effect's scale is interpreted.
type AttribType uint32

const (
	AttribTypeMagnitude AttribType = iota
	AttribTypeDuration
	AttribTypeExpression
)

var attribTypeNames = enum.NewTable[AttribType]("AttribType").
	Add("Magnitude", "Duration", "Expression")

func (v AttribType) Known() bool {
	return attribTypeNames.Known(v)
}

func (v AttribType) String() string {
	return attribTypeNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v AttribType) MarshalText() ([]byte, error) {
	return attribTypeNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *AttribType) UnmarshalText(text []byte) error {
	return unmarshalText(attribTypeNames, v, text)
}

// CastKind is a casting restriction.
type CastKind uint32

const (
	CastKindNearGround CastKind = iota
	CastKindTargetNearGround
	CastKindCastableAfterDeath
)

var castKindNames = enum.NewTable[CastKind]("CastKind").
	Add("NearGround", "TargetNearGround", "CastableAfterDeath")

func (v CastKind) Known() bool {
	return castKindNames.Known(v)
}

func (v CastKind) String() string {
	return castKindNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v CastKind) MarshalText() ([]byte, error) {
	return castKindNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *CastKind) UnmarshalText(text []byte) error {
	return unmarshalText(castKindNames, v, text)
}

// CastFlags is the set of casting restrictions of a power.
type CastFlags = bitvec.BitVec[CastKind]

type ClassType uint32

const (
	ClassTypeNone ClassType = iota
	ClassTypeHero
	ClassTypeHeroEpic
	ClassTypeVillain
	ClassTypeVillainEpic
	ClassTypeHenchman
	ClassTypePet
)

var classTypeNames = enum.NewTable[ClassType]("ClassType").
	Add(
		"None",
		"Hero",
		"HeroEpic",
		"Villain",
		"VillainEpic",
		"Henchman",
		"Pet",
	)

func (v ClassType) Known() bool {
	return classTypeNames.Known(v)
}

func (v ClassType) String() string {
	return classTypeNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v ClassType) MarshalText() ([]byte, error) {
	return classTypeNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ClassType) UnmarshalText(text []byte) error {
	return unmarshalText(classTypeNames, v, text)
}

// Damage is a damage type or a positional defense category.
type Damage uint32

const (
	DamageNone Damage = iota
	DamageSmashing
	DamageLethal
	DamageFire
	DamageCold
	DamageEnergy
	DamageNegative
	DamageToxic
	DamagePsionic
	DamageSpecial
	DamageMelee
	DamageRanged
	DamageAoE
	DamageUnique1
	DamageUnique2
	DamageUnique3
)

var damageNames = enum.NewTable[Damage]("Damage").
	Add(
		"None",
		"Smashing",
		"Lethal",
		"Fire",
		"Cold",
		"Energy",
		"Negative",
		"Toxic",
		"Psionic",
		"Special",
		"Melee",
		"Ranged",
		"AoE",
		"Unique1",
		"Unique2",
		"Unique3",
	)

func (v Damage) Known() bool {
	return damageNames.Known(v)
}

func (v Damage) String() string {
	return damageNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v Damage) MarshalText() ([]byte, error) {
	return damageNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Damage) UnmarshalText(text []byte) error {
	return unmarshalText(damageNames, v, text)
}

// EffectArea is the targeting shape of a power.
type EffectArea uint32

const (
	EffectAreaNone EffectArea = iota
	EffectAreaCharacter
	EffectAreaSphere
	EffectAreaCone
	EffectAreaLocation
	EffectAreaVolume
	EffectAreaMap
	EffectAreaRoom
	EffectAreaTouch
)

var effectAreaNames = enum.NewTable[EffectArea]("EffectArea").
	Add(
		"None",
		"Character",
		"Sphere",
		"Cone",
		"Location",
		"Volume",
		"Map",
		"Room",
		"Touch",
	)

func (v EffectArea) Known() bool {
	return effectAreaNames.Known(v)
}

func (v EffectArea) String() string {
	return effectAreaNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v EffectArea) MarshalText() ([]byte, error) {
	return effectAreaNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *EffectArea) UnmarshalText(text []byte) error {
	return unmarshalText(effectAreaNames, v, text)
}

type EffectClass uint32

const (
	EffectClassPrimary EffectClass = iota
	EffectClassSecondary
	EffectClassTertiary
	EffectClassSpecial
	EffectClassIgnored
	EffectClassDisplayOnly
)

var effectClassNames = enum.NewTable[EffectClass]("EffectClass").
	Add(
		"Primary",
		"Secondary",
		"Tertiary",
		"Special",
		"Ignored",
		"DisplayOnly",
	)

func (v EffectClass) Known() bool {
	return effectClassNames.Known(v)
}

func (v EffectClass) String() string {
	return effectClassNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v EffectClass) MarshalText() ([]byte, error) {
	return effectClassNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *EffectClass) UnmarshalText(text []byte) error {
	return unmarshalText(effectClassNames, v, text)
}

// EffectType is the attribute an effect acts on.
type EffectType uint32

const (
	EffectTypeNone EffectType = iota
	EffectTypeAccuracy
	EffectTypeViewAttrib
	EffectTypeDamage
	EffectTypeDamageBuff
	EffectTypeDefense
	EffectTypeDropToggles
	EffectTypeEndurance
	EffectTypeEnduranceDiscount
	EffectTypeEnhancement
	EffectTypeFly
	EffectTypeSpeedFlying
	EffectTypeGrantPower
	EffectTypeHeal
	EffectTypeHitPoints
	EffectTypeInterruptTime
	EffectTypeJumpHeight
	EffectTypeSpeedJumping
	EffectTypeMeter
	EffectTypeMez
	EffectTypeMezResist
	EffectTypeMovementControl
	EffectTypeMovementFriction
	EffectTypePerceptionRadius
	EffectTypeRange
	EffectTypeRechargeTime
	EffectTypeRecovery
	EffectTypeRegeneration
	EffectTypeResEffect
	EffectTypeResistance
	EffectTypeRevokePower
	EffectTypeReward
	EffectTypeSpeedRunning
	EffectTypeSetCostume
	EffectTypeSetMode
	EffectTypeSlow
	EffectTypeStealthRadius
	EffectTypeStealthRadiusPlayer
	EffectTypeEntCreate
	EffectTypeThreatLevel
	EffectTypeToHit
	EffectTypeTranslucency
	EffectTypeXPDebtProtection
	EffectTypeSilentKill
	EffectTypeElusivity
	EffectTypeGlobalChanceMod
	EffectTypeCombatModShift
	EffectTypeUnsetMode
	EffectTypeRage
	EffectTypeMaxRunSpeed
	EffectTypeMaxJumpSpeed
	EffectTypeMaxFlySpeed
	EffectTypeDesignerStatus
	EffectTypePowerRedirect
	EffectTypeTokenAdd
	EffectTypeExperienceGain
	EffectTypeInfluenceGain
	EffectTypePrestigeGain
	EffectTypeAddBehavior
	EffectTypeRechargePower
	EffectTypeRewardSourceTeam
	EffectTypeVisionPhase
	EffectTypeCombatPhase
	EffectTypeClearFog
	EffectTypeSetSZEValue
	EffectTypeExclusiveVisionPhase
	EffectTypeAbsorb
	EffectTypeXAfraid
	EffectTypeXAvoid
	EffectTypeBeastRun
	EffectTypeClearDamagers
	EffectTypeEntCreateX
	EffectTypeGlide
	EffectTypeHoverboard
	EffectTypeJumppack
	EffectTypeMagicCarpet
	EffectTypeNinjaRun
	EffectTypeNull
	EffectTypeNullBool
	EffectTypeStealth
	EffectTypeSteamJump
	EffectTypeWalk
	EffectTypeXPDebt
	EffectTypeForceMove
	EffectTypeModifyAttrib
	EffectTypeExecutePower
)

var effectTypeNames = enum.NewTable[EffectType]("EffectType").
	Add(
		"None",
		"Accuracy",
		"ViewAttrib",
		"Damage",
		"DamageBuff",
		"Defense",
		"DropToggles",
		"Endurance",
		"EnduranceDiscount",
		"Enhancement",
		"Fly",
		"SpeedFlying",
		"GrantPower",
		"Heal",
		"HitPoints",
		"InterruptTime",
		"JumpHeight",
		"SpeedJumping",
		"Meter",
		"Mez",
		"MezResist",
		"MovementControl",
		"MovementFriction",
		"PerceptionRadius",
		"Range",
		"RechargeTime",
		"Recovery",
		"Regeneration",
		"ResEffect",
		"Resistance",
		"RevokePower",
		"Reward",
		"SpeedRunning",
		"SetCostume",
		"SetMode",
		"Slow",
		"StealthRadius",
		"StealthRadiusPlayer",
		"EntCreate",
		"ThreatLevel",
		"ToHit",
		"Translucency",
		"XPDebtProtection",
		"SilentKill",
		"Elusivity",
		"GlobalChanceMod",
		"CombatModShift",
		"UnsetMode",
		"Rage",
		"MaxRunSpeed",
		"MaxJumpSpeed",
		"MaxFlySpeed",
		"DesignerStatus",
		"PowerRedirect",
		"TokenAdd",
		"ExperienceGain",
		"InfluenceGain",
		"PrestigeGain",
		"AddBehavior",
		"RechargePower",
		"RewardSourceTeam",
		"VisionPhase",
		"CombatPhase",
		"ClearFog",
		"SetSZEValue",
		"ExclusiveVisionPhase",
		"Absorb",
		"XAfraid",
		"XAvoid",
		"BeastRun",
		"ClearDamagers",
		"EntCreate_x",
		"Glide",
		"Hoverboard",
		"Jumppack",
		"MagicCarpet",
		"NinjaRun",
		"Null",
		"NullBool",
		"Stealth",
		"SteamJump",
		"Walk",
		"XPDebt",
		"ForceMove",
		"ModifyAttrib",
		"ExecutePower",
	)

func (v EffectType) Known() bool {
	return effectTypeNames.Known(v)
}

func (v EffectType) String() string {
	return effectTypeNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v EffectType) MarshalText() ([]byte, error) {
	return effectTypeNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *EffectType) UnmarshalText(text []byte) error {
	return unmarshalText(effectTypeNames, v, text)
}

// Enhance is an enhancement category a power may refuse.
type Enhance uint32

const (
	EnhanceNone Enhance = iota
	EnhanceAccuracy
	EnhanceDamage
	EnhanceDefense
	EnhanceEnduranceDiscount
	EnhanceEndurance
	EnhanceSpeedFlying
	EnhanceHeal
	EnhanceHitPoints
	EnhanceInterrupt
	EnhanceJumpHeight
	EnhanceSpeedJumping
	EnhanceMez
	EnhanceRange
	EnhanceRechargeTime
	EnhanceXRechargeTime
	EnhanceRecovery
	EnhanceRegeneration
	EnhanceResistance
	EnhanceSpeedRunning
	EnhanceToHit
	EnhanceSlow
	EnhanceAbsorb
)

var enhanceNames = enum.NewTable[Enhance]("Enhance").
	Add(
		"None",
		"Accuracy",
		"Damage",
		"Defense",
		"EnduranceDiscount",
		"Endurance",
		"SpeedFlying",
		"Heal",
		"HitPoints",
		"Interrupt",
		"JumpHeight",
		"SpeedJumping",
		"Mez",
		"Range",
		"RechargeTime",
		"X_RechargeTime",
		"Recovery",
		"Regeneration",
		"Resistance",
		"SpeedRunning",
		"ToHit",
		"Slow",
		"Absorb",
	)

func (v Enhance) Known() bool {
	return enhanceNames.Known(v)
}

func (v Enhance) String() string {
	return enhanceNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v Enhance) MarshalText() ([]byte, error) {
	return enhanceNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Enhance) UnmarshalText(text []byte) error {
	return unmarshalText(enhanceNames, v, text)
}

// EntityKind is an entity category used by targeting masks.
type EntityKind uint32

const (
	EntityKindCaster EntityKind = iota
	EntityKindPlayer
	EntityKindDeadPlayer
	EntityKindTeammate
	EntityKindDeadTeammate
	EntityKindDeadOrAliveTeammate
	EntityKindVillain
	EntityKindDeadVillain
	EntityKindNPC
	EntityKindFriend
	EntityKindDeadFriend
	EntityKindFoe
	_
	EntityKindLocation
	EntityKindTeleport
	EntityKindAny
	EntityKindMyPet
	EntityKindDeadFoe
	EntityKindFoeRezzingFoe
	EntityKindLeaguemate
	EntityKindDeadLeaguemate
	EntityKindAnyLeaguemate
	EntityKindDeadMyCreation
	EntityKindDeadMyPet
	EntityKindDeadOrAliveFoe
	EntityKindDeadOrAliveLeaguemate
	EntityKindDeadPlayerFriend
	EntityKindMyOwner
)

var entityKindNames = enum.NewTable[EntityKind]("EntityKind").
	Add(
		"Caster",
		"Player",
		"DeadPlayer",
		"Teammate",
		"DeadTeammate",
		"DeadOrAliveTeammate",
		"Villain",
		"DeadVillain",
		"NPC",
		"Friend",
		"DeadFriend",
		"Foe",
	).
	AddAt(EntityKindLocation,
		"Location",
		"Teleport",
		"Any",
		"MyPet",
		"DeadFoe",
		"FoeRezzingFoe",
		"Leaguemate",
		"DeadLeaguemate",
		"AnyLeaguemate",
		"DeadMyCreation",
		"DeadMyPet",
		"DeadOrAliveFoe",
		"DeadOrAliveLeaguemate",
		"DeadPlayerFriend",
		"MyOwner",
	)

func (v EntityKind) Known() bool {
	return entityKindNames.Known(v)
}

func (v EntityKind) String() string {
	return entityKindNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v EntityKind) MarshalText() ([]byte, error) {
	return entityKindNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *EntityKind) UnmarshalText(text []byte) error {
	return unmarshalText(entityKindNames, v, text)
}

// Entity is a targeting mask over entity kinds.
type Entity = bitvec.BitVec[EntityKind]

type GridType uint32

const (
	GridTypeNone GridType = iota
	GridTypeAccolade
	GridTypeClass
	GridTypeIncarnate
	GridTypeInherent
	GridTypePet
	GridTypePower
	GridTypePowerset
	GridTypePrestige
	GridTypeTemp
)

var gridTypeNames = enum.NewTable[GridType]("GridType").
	Add(
		"None",
		"Accolade",
		"Class",
		"Incarnate",
		"Inherent",
		"Pet",
		"Power",
		"Powerset",
		"Prestige",
		"Temp",
	)

func (v GridType) Known() bool {
	return gridTypeNames.Known(v)
}

func (v GridType) String() string {
	return gridTypeNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v GridType) MarshalText() ([]byte, error) {
	return gridTypeNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *GridType) UnmarshalText(text []byte) error {
	return unmarshalText(gridTypeNames, v, text)
}

// Mez is a control effect type.
type Mez uint32

const (
	MezNone Mez = iota
	MezConfused
	MezHeld
	MezImmobilized
	MezKnockback
	MezKnockup
	MezOnlyAffectsSelf
	MezPlacate
	MezRepel
	MezSleep
	MezStunned
	MezTaunt
	MezTerrorized
	MezUntouchable
	MezTeleport
	MezToggleDrop
	MezAfraid
	MezAvoid
	MezCombatPhase
	MezIntangible
)

var mezNames = enum.NewTable[Mez]("Mez").
	Add(
		"None",
		"Confused",
		"Held",
		"Immobilized",
		"Knockback",
		"Knockup",
		"OnlyAffectsSelf",
		"Placate",
		"Repel",
		"Sleep",
		"Stunned",
		"Taunt",
		"Terrorized",
		"Untouchable",
		"Teleport",
		"ToggleDrop",
		"Afraid",
		"Avoid",
		"CombatPhase",
		"Intangible",
	)

func (v Mez) Known() bool {
	return mezNames.Known(v)
}

func (v Mez) String() string {
	return mezNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v Mez) MarshalText() ([]byte, error) {
	return mezNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Mez) UnmarshalText(text []byte) error {
	return unmarshalText(mezNames, v, text)
}

// ModeFlag is a character mode a power requires or forbids.
type ModeFlag uint32

const (
	ModeFlagArena ModeFlag = iota
	ModeFlagDisableAll
	ModeFlagDisableEnhancements
	ModeFlagDisableEpic
	ModeFlagDisableInspirations
	ModeFlagDisableMarketTP
	ModeFlagDisablePool
	ModeFlagDisableRezInsp
	ModeFlagDisableTeleport
	ModeFlagDisableTemp
	ModeFlagDisableToggle
	ModeFlagDisableTravel
	ModeFlagDomination
	ModeFlagPeacebringerBlasterMode
	ModeFlagPeacebringerLightformMode
	ModeFlagPeacebringerTankerMode
	ModeFlagRaidAttackerMode
	ModeFlagShivanMode
	_
	ModeFlagWarshadeBlasterMode
	ModeFlagWarshadeTankerMode
)

var modeFlagNames = enum.NewTable[ModeFlag]("ModeFlag").
	Add(
		"Arena",
		"Disable_All",
		"Disable_Enhancements",
		"Disable_Epic",
		"Disable_Inspirations",
		"Disable_Market_TP",
		"Disable_Pool",
		"Disable_Rez_Insp",
		"Disable_Teleport",
		"Disable_Temp",
		"Disable_Toggle",
		"Disable_Travel",
		"Domination",
		"Peacebringer_Blaster_Mode",
		"Peacebringer_Lightform_Mode",
		"Peacebringer_Tanker_Mode",
		"Raid_Attacker_Mode",
		"Shivan_Mode",
	).
	AddAt(ModeFlagWarshadeBlasterMode, "Warshade_Blaster_Mode", "Warshade_Tanker_Mode")

func (v ModeFlag) Known() bool {
	return modeFlagNames.Known(v)
}

func (v ModeFlag) String() string {
	return modeFlagNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v ModeFlag) MarshalText() ([]byte, error) {
	return modeFlagNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ModeFlag) UnmarshalText(text []byte) error {
	return unmarshalText(modeFlagNames, v, text)
}

// ModeFlags is a set of character modes.
type ModeFlags = bitvec.BitVec[ModeFlag]

// Notify controls when the AI is told about a power activation.
type Notify uint32

const (
	NotifyAlways Notify = iota
	NotifyNever
	NotifyMissOnly
	NotifyHitOnly
)

var notifyNames = enum.NewTable[Notify]("Notify").
	Add("Always", "Never", "MissOnly", "HitOnly")

func (v Notify) Known() bool {
	return notifyNames.Known(v)
}

func (v Notify) String() string {
	return notifyNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v Notify) MarshalText() ([]byte, error) {
	return notifyNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Notify) UnmarshalText(text []byte) error {
	return unmarshalText(notifyNames, v, text)
}

type OverrideBoolean uint32

const (
	OverrideBooleanNoOverride OverrideBoolean = iota
	OverrideBooleanTrueOverride
	OverrideBooleanFalseOverride
)

var overrideBooleanNames = enum.NewTable[OverrideBoolean]("OverrideBoolean").
	Add("NoOverride", "TrueOverride", "FalseOverride")

func (v OverrideBoolean) Known() bool {
	return overrideBooleanNames.Known(v)
}

func (v OverrideBoolean) String() string {
	return overrideBooleanNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v OverrideBoolean) MarshalText() ([]byte, error) {
	return overrideBooleanNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *OverrideBoolean) UnmarshalText(text []byte) error {
	return unmarshalText(overrideBooleanNames, v, text)
}

// PowerAttribs names the power attribute an attribute-modifying effect changes.
type PowerAttribs uint32

const (
	PowerAttribsNone PowerAttribs = iota
	PowerAttribsAccuracy
	PowerAttribsActivateInterval
	PowerAttribsArc
	PowerAttribsCastTime
	PowerAttribsEffectArea
	PowerAttribsEnduranceCost
	PowerAttribsInterruptTime
	PowerAttribsMaxTargets
	PowerAttribsRadius
	PowerAttribsRange
	PowerAttribsRechargeTime
	PowerAttribsSecondaryRange
)

var powerAttribsNames = enum.NewTable[PowerAttribs]("PowerAttribs").
	Add(
		"None",
		"Accuracy",
		"ActivateInterval",
		"Arc",
		"CastTime",
		"EffectArea",
		"EnduranceCost",
		"InterruptTime",
		"MaxTargets",
		"Radius",
		"Range",
		"RechargeTime",
		"SecondaryRange",
	)

func (v PowerAttribs) Known() bool {
	return powerAttribsNames.Known(v)
}

func (v PowerAttribs) String() string {
	return powerAttribsNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v PowerAttribs) MarshalText() ([]byte, error) {
	return powerAttribsNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *PowerAttribs) UnmarshalText(text []byte) error {
	return unmarshalText(powerAttribsNames, v, text)
}

type PowerSetType uint32

const (
	PowerSetTypeNone PowerSetType = iota
	PowerSetTypePrimary
	PowerSetTypeSecondary
	PowerSetTypeAncillary
	PowerSetTypeInherent
	PowerSetTypePool
	PowerSetTypeAccolade
	PowerSetTypeTemp
	PowerSetTypePet
	PowerSetTypeSetBonus
	PowerSetTypeBoost
	PowerSetTypeIncarnate
	PowerSetTypeRedirect
)

var powerSetTypeNames = enum.NewTable[PowerSetType]("PowerSetType").
	Add(
		"None",
		"Primary",
		"Secondary",
		"Ancillary",
		"Inherent",
		"Pool",
		"Accolade",
		"Temp",
		"Pet",
		"SetBonus",
		"Boost",
		"Incarnate",
		"Redirect",
	)

func (v PowerSetType) Known() bool {
	return powerSetTypeNames.Known(v)
}

func (v PowerSetType) String() string {
	return powerSetTypeNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v PowerSetType) MarshalText() ([]byte, error) {
	return powerSetTypeNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *PowerSetType) UnmarshalText(text []byte) error {
	return unmarshalText(powerSetTypeNames, v, text)
}

type PowerType uint32

const (
	PowerTypeClick PowerType = iota
	PowerTypeAuto
	PowerTypeToggle
	PowerTypeBoost
	PowerTypeInspiration
	PowerTypeGlobalBoost
)

var powerTypeNames = enum.NewTable[PowerType]("PowerType").
	Add(
		"Click",
		"Auto",
		"Toggle",
		"Boost",
		"Inspiration",
		"GlobalBoost",
	)

func (v PowerType) Known() bool {
	return powerTypeNames.Known(v)
}

func (v PowerType) String() string {
	return powerTypeNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v PowerType) MarshalText() ([]byte, error) {
	return powerTypeNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *PowerType) UnmarshalText(text []byte) error {
	return unmarshalText(powerTypeNames, v, text)
}

// PvX restricts an effect to PvE or PvP.
type PvX uint32

const (
	PvXAny PvX = iota
	PvXPve
	PvXPvp
)

var pvXNames = enum.NewTable[PvX]("PvX").
	Add("Any", "Pve", "Pvp")

func (v PvX) Known() bool {
	return pvXNames.Known(v)
}

func (v PvX) String() string {
	return pvXNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v PvX) MarshalText() ([]byte, error) {
	return pvXNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *PvX) UnmarshalText(text []byte) error {
	return unmarshalText(pvXNames, v, text)
}

// SetType is an enhancement set category.
type SetType uint32

const (
	SetTypeUntyped SetType = iota
	SetTypeMeleeST
	SetTypeRangedST
	SetTypeRangedAoE
	SetTypeMeleeAoE
	SetTypeSnipe
	SetTypePets
	SetTypeDefense
	SetTypeResistance
	SetTypeHeal
	SetTypeHold
	SetTypeStun
	SetTypeImmob
	SetTypeSlow
	SetTypeSleep
	SetTypeFear
	SetTypeConfuse
	SetTypeFlight
	SetTypeJump
	SetTypeRun
	SetTypeTeleport
	SetTypeDefDebuff
	SetTypeEndMod
	SetTypeKnockback
	SetTypeThreat
	SetTypeToHit
	SetTypeToHitDeb
	SetTypePetRech
	SetTypeTravel
	SetTypeAccHeal
	SetTypeAccDefDeb
	SetTypeAccToHitDeb
	SetTypeArachnos
	SetTypeBlaster
	SetTypeBrute
	SetTypeController
	SetTypeCorruptor
	SetTypeDefender
	SetTypeDominator
	SetTypeKheldian
	SetTypeMastermind
	SetTypeScrapper
	SetTypeStalker
	SetTypeTanker
	SetTypeUniversalDamage
	SetTypeSentinel
	SetTypeRunNoSprint
	SetTypeJumpNoSprint
	SetTypeFlightNoSprint
	SetTypeTeleportNoSprint
)

var setTypeNames = enum.NewTable[SetType]("SetType").
	Add(
		"Untyped",
		"MeleeST",
		"RangedST",
		"RangedAoE",
		"MeleeAoE",
		"Snipe",
		"Pets",
		"Defense",
		"Resistance",
		"Heal",
		"Hold",
		"Stun",
		"Immob",
		"Slow",
		"Sleep",
		"Fear",
		"Confuse",
		"Flight",
		"Jump",
		"Run",
		"Teleport",
		"DefDebuff",
		"EndMod",
		"Knockback",
		"Threat",
		"ToHit",
		"ToHitDeb",
		"PetRech",
		"Travel",
		"AccHeal",
		"AccDefDeb",
		"AccToHitDeb",
		"Arachnos",
		"Blaster",
		"Brute",
		"Controller",
		"Corruptor",
		"Defender",
		"Dominator",
		"Kheldian",
		"Mastermind",
		"Scrapper",
		"Stalker",
		"Tanker",
		"UniversalDamage",
		"Sentinel",
		"RunNoSprint",
		"JumpNoSprint",
		"FlightNoSprint",
		"TeleportNoSprint",
	)

func (v SetType) Known() bool {
	return setTypeNames.Known(v)
}

func (v SetType) String() string {
	return setTypeNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v SetType) MarshalText() ([]byte, error) {
	return setTypeNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SetType) UnmarshalText(text []byte) error {
	return unmarshalText(setTypeNames, v, text)
}

type SpecialCase uint32

const (
	SpecialCaseNone SpecialCase = iota
	SpecialCaseHidden
	SpecialCaseDomination
	SpecialCaseScourge
	SpecialCaseMezzed
	SpecialCaseCriticalHit
	SpecialCaseCriticalBoss
	SpecialCaseCriticalMinion
	SpecialCaseRobot
	SpecialCaseAssassination
	SpecialCaseContainment
	SpecialCaseDefiance
	SpecialCaseTargetDroneActive
	SpecialCaseCombo
	SpecialCaseVersusSpecial
	SpecialCaseNotDisintegrated
	SpecialCaseDisintegrated
	SpecialCaseNotAccelerated
	SpecialCaseAccelerated
	SpecialCaseNotDelayed
	SpecialCaseDelayed
	SpecialCaseComboLevel0
	SpecialCaseComboLevel1
	SpecialCaseComboLevel2
	SpecialCaseComboLevel3
	SpecialCaseFastMode
	SpecialCaseNotAssassination
	SpecialCasePerfectionOfBody0
	SpecialCasePerfectionOfBody1
	SpecialCasePerfectionOfBody2
	SpecialCasePerfectionOfBody3
	SpecialCasePerfectionOfMind0
	SpecialCasePerfectionOfMind1
	SpecialCasePerfectionOfMind2
	SpecialCasePerfectionOfMind3
	SpecialCasePerfectionOfSoul0
	SpecialCasePerfectionOfSoul1
	SpecialCasePerfectionOfSoul2
	SpecialCasePerfectionOfSoul3
	SpecialCaseTeamSize1
	SpecialCaseTeamSize2
	SpecialCaseTeamSize3
	SpecialCaseNotComboLevel3
	SpecialCaseToHit97
	SpecialCaseDefensiveAdaptation
	SpecialCaseEfficientAdaptation
	SpecialCaseOffensiveAdaptation
	SpecialCaseNotDefensiveAdaptation
	SpecialCaseNotDefensiveNorOffensiveAdaptation
	SpecialCaseBoxingBuff
	SpecialCaseKickBuff
	SpecialCaseSupremacy
	SpecialCaseSupremacyAndBuffPwr
	SpecialCasePetTier2
	SpecialCasePetTier3
	SpecialCasePackMentality
	SpecialCaseNotPackMentality
	SpecialCaseFastSnipe
	SpecialCaseNotFastSnipe
	SpecialCaseCrossPunchBuff
	SpecialCaseNotCrossPunchBuff
	SpecialCaseNotBoxingBuff
	SpecialCaseNotKickBuff
)

var specialCaseNames = enum.NewTable[SpecialCase]("SpecialCase").
	Add(
		"None",
		"Hidden",
		"Domination",
		"Scourge",
		"Mezzed",
		"CriticalHit",
		"CriticalBoss",
		"CriticalMinion",
		"Robot",
		"Assassination",
		"Containment",
		"Defiance",
		"TargetDroneActive",
		"Combo",
		"VersusSpecial",
		"NotDisintegrated",
		"Disintegrated",
		"NotAccelerated",
		"Accelerated",
		"NotDelayed",
		"Delayed",
		"ComboLevel0",
		"ComboLevel1",
		"ComboLevel2",
		"ComboLevel3",
		"FastMode",
		"NotAssassination",
		"PerfectionOfBody0",
		"PerfectionOfBody1",
		"PerfectionOfBody2",
		"PerfectionOfBody3",
		"PerfectionOfMind0",
		"PerfectionOfMind1",
		"PerfectionOfMind2",
		"PerfectionOfMind3",
		"PerfectionOfSoul0",
		"PerfectionOfSoul1",
		"PerfectionOfSoul2",
		"PerfectionOfSoul3",
		"TeamSize1",
		"TeamSize2",
		"TeamSize3",
		"NotComboLevel3",
		"ToHit97",
		"DefensiveAdaptation",
		"EfficientAdaptation",
		"OffensiveAdaptation",
		"NotDefensiveAdaptation",
		"NotDefensiveNorOffensiveAdaptation",
		"BoxingBuff",
		"KickBuff",
		"Supremacy",
		"SupremacyAndBuffPwr",
		"PetTier2",
		"PetTier3",
		"PackMentality",
		"NotPackMentality",
		"FastSnipe",
		"NotFastSnipe",
		"CrossPunchBuff",
		"NotCrossPunchBuff",
		"NotBoxingBuff",
		"NotKickBuff",
	)

func (v SpecialCase) Known() bool {
	return specialCaseNames.Known(v)
}

func (v SpecialCase) String() string {
	return specialCaseNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v SpecialCase) MarshalText() ([]byte, error) {
	return specialCaseNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SpecialCase) UnmarshalText(text []byte) error {
	return unmarshalText(specialCaseNames, v, text)
}

type Stacking uint32

const (
	StackingNo Stacking = iota
	StackingYes
)

var stackingNames = enum.NewTable[Stacking]("Stacking").
	Add("No", "Yes")

func (v Stacking) Known() bool {
	return stackingNames.Known(v)
}

func (v Stacking) String() string {
	return stackingNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v Stacking) MarshalText() ([]byte, error) {
	return stackingNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Stacking) UnmarshalText(text []byte) error {
	return unmarshalText(stackingNames, v, text)
}

type SummonEntity uint32

const (
	SummonEntityPet SummonEntity = iota
	SummonEntityHenchman
)

var summonEntityNames = enum.NewTable[SummonEntity]("SummonEntity").
	Add("Pet", "Henchman")

func (v SummonEntity) Known() bool {
	return summonEntityNames.Known(v)
}

func (v SummonEntity) String() string {
	return summonEntityNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v SummonEntity) MarshalText() ([]byte, error) {
	return summonEntityNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SummonEntity) UnmarshalText(text []byte) error {
	return unmarshalText(summonEntityNames, v, text)
}

// SuppressType is an event that suppresses an effect.
type SuppressType uint32

const (
	SuppressTypeHeld SuppressType = iota
	SuppressTypeSleep
	SuppressTypeStunned
	SuppressTypeImmobilized
	SuppressTypeTerrorized
	SuppressTypeKnocked
	SuppressTypeAttacked
	SuppressTypeHitByFoe
	SuppressTypeMissionObjectClick
	SuppressTypeActivateAttackClick
	SuppressTypeDamaged
	SuppressTypePhased1
	SuppressTypeConfused
)

var suppressTypeNames = enum.NewTable[SuppressType]("SuppressType").
	Add(
		"Held",
		"Sleep",
		"Stunned",
		"Immobilized",
		"Terrorized",
		"Knocked",
		"Attacked",
		"HitByFoe",
		"MissionObjectClick",
		"ActivateAttackClick",
		"Damaged",
		"Phased1",
		"Confused",
	)

func (v SuppressType) Known() bool {
	return suppressTypeNames.Known(v)
}

func (v SuppressType) String() string {
	return suppressTypeNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v SuppressType) MarshalText() ([]byte, error) {
	return suppressTypeNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SuppressType) UnmarshalText(text []byte) error {
	return unmarshalText(suppressTypeNames, v, text)
}

// Suppress is the set of events that suppress an effect.
type Suppress = bitvec.BitVec[SuppressType]

type ToWho uint32

const (
	ToWhoUnspecified ToWho = iota
	ToWhoTarget
	ToWhoSelf
	ToWhoAll
)

var toWhoNames = enum.NewTable[ToWho]("ToWho").
	Add("Unspecified", "Target", "Self", "All")

func (v ToWho) Known() bool {
	return toWhoNames.Known(v)
}

func (v ToWho) String() string {
	return toWhoNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v ToWho) MarshalText() ([]byte, error) {
	return toWhoNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ToWho) UnmarshalText(text []byte) error {
	return unmarshalText(toWhoNames, v, text)
}

// VectorKind is an attack vector.
type VectorKind uint32

const (
	VectorKindMelee VectorKind = iota
	VectorKindRanged
	VectorKindAoe
	VectorKindSmashing
	VectorKindLethal
	VectorKindCold
	VectorKindFire
	VectorKindEnergy
	VectorKindNegativeEnergy
	VectorKindPsionic
	VectorKindToxic
)

var vectorKindNames = enum.NewTable[VectorKind]("VectorKind").
	Add(
		"Melee",
		"Ranged",
		"Aoe",
		"Smashing",
		"Lethal",
		"Cold",
		"Fire",
		"Energy",
		"NegativeEnergy",
		"Psionic",
		"Toxic",
	)

func (v VectorKind) Known() bool {
	return vectorKindNames.Known(v)
}

func (v VectorKind) String() string {
	return vectorKindNames.Format(v)
}

// MarshalText implements encoding.TextMarshaler.
func (v VectorKind) MarshalText() ([]byte, error) {
	return vectorKindNames.MarshalName(v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *VectorKind) UnmarshalText(text []byte) error {
	return unmarshalText(vectorKindNames, v, text)
}

// Vector is the set of attack vectors of a power.
type Vector = bitvec.BitVec[VectorKind]

func unmarshalText[T ~uint32](t *enum.Table[T], v *T, text []byte) error {
	x, err := t.UnmarshalName(text)
	if err != nil {
		return err
	}
	*v = x

	return nil
}
