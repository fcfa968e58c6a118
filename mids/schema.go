package mids

import "github.com/mhdkit/netbin/codec"

// StringPair is a (powerset, power) reference or a (key, value) pair.
type StringPair [2]string

func stringPair(p *StringPair) codec.Value {
	return codec.Fixed(p[:], codec.String)
}

// Database is the Mids Reborn powers database (I12.mhd).
//
// The *Magic fields hold the section markers the file carries between tables;
// they are data like any other string and are written back unchanged.
type Database struct {
	Version         string      `yaml:"version" cbor:"version"`
	LegacyYear      int32       `yaml:"legacy_year" cbor:"legacy_year"`
	Datetime        int64       `yaml:"datetime" cbor:"datetime"`
	Issue           uint32      `yaml:"issue" cbor:"issue"`
	PageVolume      uint32      `yaml:"page_volume" cbor:"page_volume"`
	PageVolumeName  string      `yaml:"page_volume_name" cbor:"page_volume_name"`
	ArchetypesMagic string      `yaml:"archetypes_magic" cbor:"archetypes_magic"`
	Archetypes      []Archetype `yaml:"archetypes" cbor:"archetypes"`
	PowersetsMagic  string      `yaml:"powersets_magic" cbor:"powersets_magic"`
	Powersets       []Powerset  `yaml:"powersets" cbor:"powersets"`
	PowersMagic     string      `yaml:"powers_magic" cbor:"powers_magic"`
	Powers          []Power     `yaml:"powers" cbor:"powers"`
	SummonsMagic    string      `yaml:"summons_magic" cbor:"summons_magic"`
	Summons         []Summon    `yaml:"summons" cbor:"summons"`
}

// Fields implements codec.Record.
func (d *Database) Fields() []codec.Field {
	return []codec.Field{
		codec.F("version", codec.String(&d.Version)),
		codec.F("legacy_year", codec.Int32(&d.LegacyYear)),
		codec.F("datetime", codec.Int64(&d.Datetime)),
		codec.F("issue", codec.Uint32(&d.Issue)),
		codec.F("page_volume", codec.Uint32(&d.PageVolume)),
		codec.F("page_volume_name", codec.String(&d.PageVolumeName)),
		codec.F("archetypes_magic", codec.String(&d.ArchetypesMagic)),
		codec.F("archetypes", codec.Seq(&d.Archetypes, codec.RecordOf[Archetype])),
		codec.F("powersets_magic", codec.String(&d.PowersetsMagic)),
		codec.F("powersets", codec.Seq(&d.Powersets, codec.RecordOf[Powerset])),
		codec.F("powers_magic", codec.String(&d.PowersMagic)),
		codec.F("powers", codec.Seq(&d.Powers, codec.RecordOf[Power])),
		codec.F("summons_magic", codec.String(&d.SummonsMagic)),
		codec.F("summons", codec.Seq(&d.Summons, codec.RecordOf[Summon])),
	}
}

// Archetype is a playable or NPC class.
type Archetype struct {
	DisplayName string   `yaml:"display_name" cbor:"display_name"`
	Hitpoints   int32    `yaml:"hitpoints" cbor:"hitpoints"`
	HPCap       float32  `yaml:"hp_cap" cbor:"hp_cap"`
	DescLong    string   `yaml:"desc_long" cbor:"desc_long"`
	ResCap      float32  `yaml:"res_cap" cbor:"res_cap"`
	Origins     []string `yaml:"origins" cbor:"origins"`
	// ClassName is referenced by Powerset.ATClass and Summon.ClassName.
	ClassName      string    `yaml:"class_name" cbor:"class_name"`
	ClassType      ClassType `yaml:"class_type" cbor:"class_type"`
	Column         int32     `yaml:"column" cbor:"column"`
	DescShort      string    `yaml:"desc_short" cbor:"desc_short"`
	PrimaryGroup   string    `yaml:"primary_group" cbor:"primary_group"`
	SecondaryGroup string    `yaml:"secondary_group" cbor:"secondary_group"`
	Playable       bool      `yaml:"playable" cbor:"playable"`
	RechargeCap    float32   `yaml:"recharge_cap" cbor:"recharge_cap"`
	DamageCap      float32   `yaml:"damage_cap" cbor:"damage_cap"`
	RecoveryCap    float32   `yaml:"recovery_cap" cbor:"recovery_cap"`
	RegenCap       float32   `yaml:"regen_cap" cbor:"regen_cap"`
	BaseRecovery   float32   `yaml:"base_recovery" cbor:"base_recovery"`
	BaseRegen      float32   `yaml:"base_regen" cbor:"base_regen"`
	BaseThreat     float32   `yaml:"base_threat" cbor:"base_threat"`
	PerceptionCap  float32   `yaml:"perception_cap" cbor:"perception_cap"`
}

func (a *Archetype) Fields() []codec.Field {
	return []codec.Field{
		codec.F("display_name", codec.String(&a.DisplayName)),
		codec.F("hitpoints", codec.Int32(&a.Hitpoints)),
		codec.F("hp_cap", codec.Float32(&a.HPCap)),
		codec.F("desc_long", codec.String(&a.DescLong)),
		codec.F("res_cap", codec.Float32(&a.ResCap)),
		codec.F("origins", codec.Seq(&a.Origins, codec.String)),
		codec.F("class_name", codec.String(&a.ClassName)),
		codec.F("class_type", codec.Enum(&a.ClassType)),
		codec.F("column", codec.Int32(&a.Column)),
		codec.F("desc_short", codec.String(&a.DescShort)),
		codec.F("primary_group", codec.String(&a.PrimaryGroup)),
		codec.F("secondary_group", codec.String(&a.SecondaryGroup)),
		codec.F("playable", codec.Bool(&a.Playable)),
		codec.F("recharge_cap", codec.Float32(&a.RechargeCap)),
		codec.F("damage_cap", codec.Float32(&a.DamageCap)),
		codec.F("recovery_cap", codec.Float32(&a.RecoveryCap)),
		codec.F("regen_cap", codec.Float32(&a.RegenCap)),
		codec.F("base_recovery", codec.Float32(&a.BaseRecovery)),
		codec.F("base_regen", codec.Float32(&a.BaseRegen)),
		codec.F("base_threat", codec.Float32(&a.BaseThreat)),
		codec.F("perception_cap", codec.Float32(&a.PerceptionCap)),
	}
}

// Powerset is a named group of powers.
type Powerset struct {
	DisplayName      string       `yaml:"display_name" cbor:"display_name"`
	NIDArchetype     int32        `yaml:"nid_archetype" cbor:"nid_archetype"`
	SetType          PowerSetType `yaml:"set_type" cbor:"set_type"`
	ImageName        string       `yaml:"image_name" cbor:"image_name"`
	FullName         string       `yaml:"full_name" cbor:"full_name"`
	SetName          string       `yaml:"set_name" cbor:"set_name"`
	Description      string       `yaml:"description" cbor:"description"`
	SubName          string       `yaml:"sub_name" cbor:"sub_name"`
	ATClass          string       `yaml:"at_class" cbor:"at_class"`
	UIDTrunkSet      string       `yaml:"uid_trunk_set" cbor:"uid_trunk_set"`
	UIDLinkSecondary string       `yaml:"uid_link_secondary" cbor:"uid_link_secondary"`
	MutexSets        []MutexSet   `yaml:"mutex_sets" cbor:"mutex_sets"`
}

func (p *Powerset) Fields() []codec.Field {
	return []codec.Field{
		codec.F("display_name", codec.String(&p.DisplayName)),
		codec.F("nid_archetype", codec.Int32(&p.NIDArchetype)),
		codec.F("set_type", codec.Enum(&p.SetType)),
		codec.F("image_name", codec.String(&p.ImageName)),
		codec.F("full_name", codec.String(&p.FullName)),
		codec.F("set_name", codec.String(&p.SetName)),
		codec.F("description", codec.String(&p.Description)),
		codec.F("sub_name", codec.String(&p.SubName)),
		codec.F("at_class", codec.String(&p.ATClass)),
		codec.F("uid_trunk_set", codec.String(&p.UIDTrunkSet)),
		codec.F("uid_link_secondary", codec.String(&p.UIDLinkSecondary)),
		codec.F("mutex_sets", codec.Seq(&p.MutexSets, codec.RecordOf[MutexSet])),
	}
}

// MutexSet references a powerset that excludes its owner.
type MutexSet struct {
	// UID references Powerset.FullName.
	UID string `yaml:"uid" cbor:"uid"`
	NID int32  `yaml:"nid" cbor:"nid"`
}

func (m *MutexSet) Fields() []codec.Field {
	return []codec.Field{
		codec.F("uid", codec.String(&m.UID)),
		codec.F("nid", codec.Int32(&m.NID)),
	}
}

// Power is one power and its effects.
//
// Every field is part of the on-disk layout, including those the Mids
// application no longer reads.
type Power struct {
	StaticIndex      int32       `yaml:"static_index" cbor:"static_index"`
	FullName         string      `yaml:"full_name" cbor:"full_name"`
	GroupName        string      `yaml:"group_name" cbor:"group_name"`
	SetName          string      `yaml:"set_name" cbor:"set_name"`
	PowerName        string      `yaml:"power_name" cbor:"power_name"`
	DisplayName      string      `yaml:"display_name" cbor:"display_name"`
	Available        int32       `yaml:"available" cbor:"available"`
	Requires         Requirement `yaml:"requires" cbor:"requires"`
	ModesRequired    ModeFlags   `yaml:"modes_required" cbor:"modes_required"`
	ModesDisallowed  ModeFlags   `yaml:"modes_disallowed" cbor:"modes_disallowed"`
	PowerType        PowerType   `yaml:"power_type" cbor:"power_type"`
	Accuracy         float32     `yaml:"accuracy" cbor:"accuracy"`
	AttackTypes      Vector      `yaml:"attack_types" cbor:"attack_types"`
	GroupMembership  []string    `yaml:"group_membership" cbor:"group_membership"`
	EntitiesAffected Entity      `yaml:"entities_affected" cbor:"entities_affected"`
	EntitiesAutoHit  Entity      `yaml:"entities_auto_hit" cbor:"entities_auto_hit"`
	Target           Entity      `yaml:"target" cbor:"target"`
	TargetLoS        bool        `yaml:"target_lo_s" cbor:"target_lo_s"`
	Range            float32     `yaml:"range" cbor:"range"`
	TargetSecondary  Entity      `yaml:"target_secondary" cbor:"target_secondary"`
	RangeSecondary   float32     `yaml:"range_secondary" cbor:"range_secondary"`
	EndCost          float32     `yaml:"end_cost" cbor:"end_cost"`
	InterruptTime    float32     `yaml:"interrupt_time" cbor:"interrupt_time"`
	CastTime         float32     `yaml:"cast_time" cbor:"cast_time"`
	RechargeTime     float32     `yaml:"recharge_time" cbor:"recharge_time"`
	BaseRechargeTime float32     `yaml:"base_recharge_time" cbor:"base_recharge_time"`
	ActivatePeriod   float32     `yaml:"activate_period" cbor:"activate_period"`
	EffectArea       EffectArea  `yaml:"effect_area" cbor:"effect_area"`
	Radius           float32     `yaml:"radius" cbor:"radius"`
	Arc              int32       `yaml:"arc" cbor:"arc"`
	MaxTargets       int32       `yaml:"max_targets" cbor:"max_targets"`
	MaxBoosts        string      `yaml:"max_boosts" cbor:"max_boosts"`
	CastFlags        CastFlags   `yaml:"cast_flags" cbor:"cast_flags"`
	AIReport         Notify      `yaml:"ai_report" cbor:"ai_report"`
	NumCharges       int32       `yaml:"num_charges" cbor:"num_charges"`
	UsageTime        int32       `yaml:"usage_time" cbor:"usage_time"`
	LifeTime         int32       `yaml:"life_time" cbor:"life_time"`
	LifeTimeInGame   int32       `yaml:"life_time_in_game" cbor:"life_time_in_game"`
	NumAllowed       int32       `yaml:"num_allowed" cbor:"num_allowed"`
	DoNotSave        bool        `yaml:"do_not_save" cbor:"do_not_save"`
	BoostsAllowed    []string    `yaml:"boosts_allowed" cbor:"boosts_allowed"`
	CastThroughHold  bool        `yaml:"cast_through_hold" cbor:"cast_through_hold"`
	IgnoreStrength   bool        `yaml:"ignore_strength" cbor:"ignore_strength"`
	DescShort        string      `yaml:"desc_short" cbor:"desc_short"`
	DescLong         string      `yaml:"desc_long" cbor:"desc_long"`
	// Enhancements are indexes into the enhancement class table (EClasses.mhd).
	Enhancements []uint32  `yaml:"enhancements" cbor:"enhancements"`
	SetTypes     []SetType `yaml:"set_types" cbor:"set_types"`
	ClickBuff    bool      `yaml:"click_buff" cbor:"click_buff"`
	AlwaysToggle bool      `yaml:"always_toggle" cbor:"always_toggle"`
	// Level is the available level plus one.
	Level                       int32     `yaml:"level" cbor:"level"`
	AllowFrontLoading           bool      `yaml:"allow_front_loading" cbor:"allow_front_loading"`
	VariableEnabled             bool      `yaml:"variable_enabled" cbor:"variable_enabled"`
	VariableOverride            bool      `yaml:"variable_override" cbor:"variable_override"`
	VariableName                string    `yaml:"variable_name" cbor:"variable_name"`
	VariableMin                 int32     `yaml:"variable_min" cbor:"variable_min"`
	VariableMax                 int32     `yaml:"variable_max" cbor:"variable_max"`
	UIDSubPower                 []string  `yaml:"uid_sub_power" cbor:"uid_sub_power"`
	IgnoreEnh                   []Enhance `yaml:"ignore_enh" cbor:"ignore_enh"`
	IgnoreBuff                  []Enhance `yaml:"ignore_buff" cbor:"ignore_buff"`
	SkipMax                     bool      `yaml:"skip_max" cbor:"skip_max"`
	InherentType                GridType  `yaml:"inherent_type" cbor:"inherent_type"`
	DisplayLocation             int32     `yaml:"display_location" cbor:"display_location"`
	MutexAuto                   bool      `yaml:"mutex_auto" cbor:"mutex_auto"`
	MutexIgnore                 bool      `yaml:"mutex_ignore" cbor:"mutex_ignore"`
	AbsorbSummonEffects         bool      `yaml:"absorb_summon_effects" cbor:"absorb_summon_effects"`
	AbsorbSummonAttributes      bool      `yaml:"absorb_summon_attributes" cbor:"absorb_summon_attributes"`
	ShowSummonAnyway            bool      `yaml:"show_summon_anyway" cbor:"show_summon_anyway"`
	NeverAutoUpdate             bool      `yaml:"never_auto_update" cbor:"never_auto_update"`
	NeverAutoUpdateRequirements bool      `yaml:"never_auto_update_requirements" cbor:"never_auto_update_requirements"`
	IncludeFlag                 bool      `yaml:"include_flag" cbor:"include_flag"`
	ForcedClass                 string    `yaml:"forced_class" cbor:"forced_class"`
	SortOverride                bool      `yaml:"sort_override" cbor:"sort_override"`
	BoostBoostable              bool      `yaml:"boost_boostable" cbor:"boost_boostable"`
	BoostUsePlayerLevel         bool      `yaml:"boost_use_player_level" cbor:"boost_use_player_level"`
	Effects                     []Effect  `yaml:"effects" cbor:"effects"`
	HiddenPower                 bool      `yaml:"hidden_power" cbor:"hidden_power"`
	Active                      bool      `yaml:"active" cbor:"active"`
	Taken                       bool      `yaml:"taken" cbor:"taken"`
	Stacks                      int32     `yaml:"stacks" cbor:"stacks"`
	VariableStart               int32     `yaml:"variable_start" cbor:"variable_start"`
}

func (p *Power) Fields() []codec.Field {
	return []codec.Field{
		codec.F("static_index", codec.Int32(&p.StaticIndex)),
		codec.F("full_name", codec.String(&p.FullName)),
		codec.F("group_name", codec.String(&p.GroupName)),
		codec.F("set_name", codec.String(&p.SetName)),
		codec.F("power_name", codec.String(&p.PowerName)),
		codec.F("display_name", codec.String(&p.DisplayName)),
		codec.F("available", codec.Int32(&p.Available)),
		codec.F("requires", codec.Struct(&p.Requires)),
		codec.F("modes_required", codec.Flags(&p.ModesRequired)),
		codec.F("modes_disallowed", codec.Flags(&p.ModesDisallowed)),
		codec.F("power_type", codec.Enum(&p.PowerType)),
		codec.F("accuracy", codec.Float32(&p.Accuracy)),
		codec.F("attack_types", codec.Flags(&p.AttackTypes)),
		codec.F("group_membership", codec.Seq(&p.GroupMembership, codec.String)),
		codec.F("entities_affected", codec.Flags(&p.EntitiesAffected)),
		codec.F("entities_auto_hit", codec.Flags(&p.EntitiesAutoHit)),
		codec.F("target", codec.Flags(&p.Target)),
		codec.F("target_lo_s", codec.Bool(&p.TargetLoS)),
		codec.F("range", codec.Float32(&p.Range)),
		codec.F("target_secondary", codec.Flags(&p.TargetSecondary)),
		codec.F("range_secondary", codec.Float32(&p.RangeSecondary)),
		codec.F("end_cost", codec.Float32(&p.EndCost)),
		codec.F("interrupt_time", codec.Float32(&p.InterruptTime)),
		codec.F("cast_time", codec.Float32(&p.CastTime)),
		codec.F("recharge_time", codec.Float32(&p.RechargeTime)),
		codec.F("base_recharge_time", codec.Float32(&p.BaseRechargeTime)),
		codec.F("activate_period", codec.Float32(&p.ActivatePeriod)),
		codec.F("effect_area", codec.Enum(&p.EffectArea)),
		codec.F("radius", codec.Float32(&p.Radius)),
		codec.F("arc", codec.Int32(&p.Arc)),
		codec.F("max_targets", codec.Int32(&p.MaxTargets)),
		codec.F("max_boosts", codec.String(&p.MaxBoosts)),
		codec.F("cast_flags", codec.Flags(&p.CastFlags)),
		codec.F("ai_report", codec.Enum(&p.AIReport)),
		codec.F("num_charges", codec.Int32(&p.NumCharges)),
		codec.F("usage_time", codec.Int32(&p.UsageTime)),
		codec.F("life_time", codec.Int32(&p.LifeTime)),
		codec.F("life_time_in_game", codec.Int32(&p.LifeTimeInGame)),
		codec.F("num_allowed", codec.Int32(&p.NumAllowed)),
		codec.F("do_not_save", codec.Bool(&p.DoNotSave)),
		codec.F("boosts_allowed", codec.Seq(&p.BoostsAllowed, codec.String)),
		codec.F("cast_through_hold", codec.Bool(&p.CastThroughHold)),
		codec.F("ignore_strength", codec.Bool(&p.IgnoreStrength)),
		codec.F("desc_short", codec.String(&p.DescShort)),
		codec.F("desc_long", codec.String(&p.DescLong)),
		codec.F("enhancements", codec.Seq(&p.Enhancements, codec.Uint32)),
		codec.F("set_types", codec.Seq(&p.SetTypes, codec.Enum[SetType])),
		codec.F("click_buff", codec.Bool(&p.ClickBuff)),
		codec.F("always_toggle", codec.Bool(&p.AlwaysToggle)),
		codec.F("level", codec.Int32(&p.Level)),
		codec.F("allow_front_loading", codec.Bool(&p.AllowFrontLoading)),
		codec.F("variable_enabled", codec.Bool(&p.VariableEnabled)),
		codec.F("variable_override", codec.Bool(&p.VariableOverride)),
		codec.F("variable_name", codec.String(&p.VariableName)),
		codec.F("variable_min", codec.Int32(&p.VariableMin)),
		codec.F("variable_max", codec.Int32(&p.VariableMax)),
		codec.F("uid_sub_power", codec.Seq(&p.UIDSubPower, codec.String)),
		codec.F("ignore_enh", codec.Seq(&p.IgnoreEnh, codec.Enum[Enhance])),
		codec.F("ignore_buff", codec.Seq(&p.IgnoreBuff, codec.Enum[Enhance])),
		codec.F("skip_max", codec.Bool(&p.SkipMax)),
		codec.F("inherent_type", codec.Enum(&p.InherentType)),
		codec.F("display_location", codec.Int32(&p.DisplayLocation)),
		codec.F("mutex_auto", codec.Bool(&p.MutexAuto)),
		codec.F("mutex_ignore", codec.Bool(&p.MutexIgnore)),
		codec.F("absorb_summon_effects", codec.Bool(&p.AbsorbSummonEffects)),
		codec.F("absorb_summon_attributes", codec.Bool(&p.AbsorbSummonAttributes)),
		codec.F("show_summon_anyway", codec.Bool(&p.ShowSummonAnyway)),
		codec.F("never_auto_update", codec.Bool(&p.NeverAutoUpdate)),
		codec.F("never_auto_update_requirements", codec.Bool(&p.NeverAutoUpdateRequirements)),
		codec.F("include_flag", codec.Bool(&p.IncludeFlag)),
		codec.F("forced_class", codec.String(&p.ForcedClass)),
		codec.F("sort_override", codec.Bool(&p.SortOverride)),
		codec.F("boost_boostable", codec.Bool(&p.BoostBoostable)),
		codec.F("boost_use_player_level", codec.Bool(&p.BoostUsePlayerLevel)),
		codec.F("effects", codec.Seq(&p.Effects, codec.RecordOf[Effect])),
		codec.F("hidden_power", codec.Bool(&p.HiddenPower)),
		codec.F("active", codec.Bool(&p.Active)),
		codec.F("taken", codec.Bool(&p.Taken)),
		codec.F("stacks", codec.Int32(&p.Stacks)),
		codec.F("variable_start", codec.Int32(&p.VariableStart)),
	}
}

// Requirement lists the classes and powers a power depends on.
type Requirement struct {
	ClassName    []string     `yaml:"class_name" cbor:"class_name"`
	ClassNameNot []string     `yaml:"class_name_not" cbor:"class_name_not"`
	PowerID      []StringPair `yaml:"power_id" cbor:"power_id"`
	PowerIDNot   []StringPair `yaml:"power_id_not" cbor:"power_id_not"`
}

func (r *Requirement) Fields() []codec.Field {
	return []codec.Field{
		codec.F("class_name", codec.Seq(&r.ClassName, codec.String)),
		codec.F("class_name_not", codec.Seq(&r.ClassNameNot, codec.String)),
		codec.F("power_id", codec.Seq(&r.PowerID, stringPair)),
		codec.F("power_id_not", codec.Seq(&r.PowerIDNot, stringPair)),
	}
}

// Effect is one effect of a power.
type Effect struct {
	PowerFullName             string          `yaml:"power_full_name" cbor:"power_full_name"`
	UniqueID                  int32           `yaml:"unique_id" cbor:"unique_id"`
	EffectClass               EffectClass     `yaml:"effect_class" cbor:"effect_class"`
	EffectType                EffectType      `yaml:"effect_type" cbor:"effect_type"`
	DamageType                Damage          `yaml:"damage_type" cbor:"damage_type"`
	MezType                   Mez             `yaml:"mez_type" cbor:"mez_type"`
	ETModifies                EffectType      `yaml:"et_modifies" cbor:"et_modifies"`
	Summon                    string          `yaml:"summon" cbor:"summon"`
	DelayedTime               float32         `yaml:"delayed_time" cbor:"delayed_time"`
	Ticks                     int32           `yaml:"ticks" cbor:"ticks"`
	Stacking                  Stacking        `yaml:"stacking" cbor:"stacking"`
	BaseProbability           float32         `yaml:"base_probability" cbor:"base_probability"`
	Suppression               Suppress        `yaml:"suppression" cbor:"suppression"`
	Buffable                  bool            `yaml:"buffable" cbor:"buffable"`
	Resistible                bool            `yaml:"resistible" cbor:"resistible"`
	SpecialCase               SpecialCase     `yaml:"special_case" cbor:"special_case"`
	VariableModifiedOverride  bool            `yaml:"variable_modified_override" cbor:"variable_modified_override"`
	IgnoreScaling             bool            `yaml:"ignore_scaling" cbor:"ignore_scaling"`
	PvMode                    PvX             `yaml:"pv_mode" cbor:"pv_mode"`
	ToWho                     ToWho           `yaml:"to_who" cbor:"to_who"`
	DisplayPercentageOverride OverrideBoolean `yaml:"display_percentage_override" cbor:"display_percentage_override"`
	Scale                     float32         `yaml:"scale" cbor:"scale"`
	NMagnitude                float32         `yaml:"n_magnitude" cbor:"n_magnitude"`
	NDuration                 float32         `yaml:"n_duration" cbor:"n_duration"`
	AttribType                AttribType      `yaml:"attrib_type" cbor:"attrib_type"`
	Aspect                    Aspect          `yaml:"aspect" cbor:"aspect"`
	ModifierTable             string          `yaml:"modifier_table" cbor:"modifier_table"`
	NearGround                bool            `yaml:"near_ground" cbor:"near_ground"`
	CancelOnMiss              bool            `yaml:"cancel_on_miss" cbor:"cancel_on_miss"`
	RequiresToHitCheck        bool            `yaml:"requires_to_hit_check" cbor:"requires_to_hit_check"`
	UIDClassName              string          `yaml:"uid_class_name" cbor:"uid_class_name"`
	NIDClassName              int32           `yaml:"n_id_class_name" cbor:"n_id_class_name"`
	ExpressionDuration        string          `yaml:"expression_duration" cbor:"expression_duration"`
	ExpressionMagnitude       string          `yaml:"expression_magnitude" cbor:"expression_magnitude"`
	ExpressionProbability     string          `yaml:"expression_probability" cbor:"expression_probability"`
	Reward                    string          `yaml:"reward" cbor:"reward"`
	EffectID                  string          `yaml:"effect_id" cbor:"effect_id"`
	IgnoreED                  bool            `yaml:"ignore_ed" cbor:"ignore_ed"`
	Override                  string          `yaml:"override" cbor:"override"`
	ProcsPerMinute            float32         `yaml:"procs_per_minute" cbor:"procs_per_minute"`
	PowerAttribs              PowerAttribs    `yaml:"power_attribs" cbor:"power_attribs"`
	AtrOrigAccuracy           float32         `yaml:"atr_orig_accuracy" cbor:"atr_orig_accuracy"`
	AtrOrigActivatePeriod     float32         `yaml:"atr_orig_activate_period" cbor:"atr_orig_activate_period"`
	AtrOrigArc                int32           `yaml:"atr_orig_arc" cbor:"atr_orig_arc"`
	AtrOrigCastTime           float32         `yaml:"atr_orig_cast_time" cbor:"atr_orig_cast_time"`
	AtrOrigEffectArea         EffectArea      `yaml:"atr_orig_effect_area" cbor:"atr_orig_effect_area"`
	AtrOrigEnduranceCost      float32         `yaml:"atr_orig_endurance_cost" cbor:"atr_orig_endurance_cost"`
	AtrOrigInterruptTime      float32         `yaml:"atr_orig_interrupt_time" cbor:"atr_orig_interrupt_time"`
	AtrOrigMaxTargets         int32           `yaml:"atr_orig_max_targets" cbor:"atr_orig_max_targets"`
	AtrOrigRadius             float32         `yaml:"atr_orig_radius" cbor:"atr_orig_radius"`
	AtrOrigRange              float32         `yaml:"atr_orig_range" cbor:"atr_orig_range"`
	AtrOrigRechargeTime       float32         `yaml:"atr_orig_recharge_time" cbor:"atr_orig_recharge_time"`
	AtrOrigSecondaryRange     float32         `yaml:"atr_orig_secondary_range" cbor:"atr_orig_secondary_range"`
	AtrModAccuracy            float32         `yaml:"atr_mod_accuracy" cbor:"atr_mod_accuracy"`
	AtrModActivatePeriod      float32         `yaml:"atr_mod_activate_period" cbor:"atr_mod_activate_period"`
	AtrModArc                 int32           `yaml:"atr_mod_arc" cbor:"atr_mod_arc"`
	AtrModCastTime            float32         `yaml:"atr_mod_cast_time" cbor:"atr_mod_cast_time"`
	AtrModEffectArea          EffectArea      `yaml:"atr_mod_effect_area" cbor:"atr_mod_effect_area"`
	AtrModEnduranceCost       float32         `yaml:"atr_mod_endurance_cost" cbor:"atr_mod_endurance_cost"`
	AtrModInterruptTime       float32         `yaml:"atr_mod_interrupt_time" cbor:"atr_mod_interrupt_time"`
	AtrModMaxTargets          int32           `yaml:"atr_mod_max_targets" cbor:"atr_mod_max_targets"`
	AtrModRadius              float32         `yaml:"atr_mod_radius" cbor:"atr_mod_radius"`
	AtrModRange               float32         `yaml:"atr_mod_range" cbor:"atr_mod_range"`
	AtrModRechargeTime        float32         `yaml:"atr_mod_recharge_time" cbor:"atr_mod_recharge_time"`
	AtrModSecondaryRange      float32         `yaml:"atr_mod_secondary_range" cbor:"atr_mod_secondary_range"`
	// ActiveConditionals is stored with the legacy double-length sequence prefix.
	ActiveConditionals []StringPair `yaml:"active_conditionals_kv" cbor:"active_conditionals_kv"`
}

func (e *Effect) Fields() []codec.Field {
	return []codec.Field{
		codec.F("power_full_name", codec.String(&e.PowerFullName)),
		codec.F("unique_id", codec.Int32(&e.UniqueID)),
		codec.F("effect_class", codec.Enum(&e.EffectClass)),
		codec.F("effect_type", codec.Enum(&e.EffectType)),
		codec.F("damage_type", codec.Enum(&e.DamageType)),
		codec.F("mez_type", codec.Enum(&e.MezType)),
		codec.F("et_modifies", codec.Enum(&e.ETModifies)),
		codec.F("summon", codec.String(&e.Summon)),
		codec.F("delayed_time", codec.Float32(&e.DelayedTime)),
		codec.F("ticks", codec.Int32(&e.Ticks)),
		codec.F("stacking", codec.Enum(&e.Stacking)),
		codec.F("base_probability", codec.Float32(&e.BaseProbability)),
		codec.F("suppression", codec.Flags(&e.Suppression)),
		codec.F("buffable", codec.Bool(&e.Buffable)),
		codec.F("resistible", codec.Bool(&e.Resistible)),
		codec.F("special_case", codec.Enum(&e.SpecialCase)),
		codec.F("variable_modified_override", codec.Bool(&e.VariableModifiedOverride)),
		codec.F("ignore_scaling", codec.Bool(&e.IgnoreScaling)),
		codec.F("pv_mode", codec.Enum(&e.PvMode)),
		codec.F("to_who", codec.Enum(&e.ToWho)),
		codec.F("display_percentage_override", codec.Enum(&e.DisplayPercentageOverride)),
		codec.F("scale", codec.Float32(&e.Scale)),
		codec.F("n_magnitude", codec.Float32(&e.NMagnitude)),
		codec.F("n_duration", codec.Float32(&e.NDuration)),
		codec.F("attrib_type", codec.Enum(&e.AttribType)),
		codec.F("aspect", codec.Enum(&e.Aspect)),
		codec.F("modifier_table", codec.String(&e.ModifierTable)),
		codec.F("near_ground", codec.Bool(&e.NearGround)),
		codec.F("cancel_on_miss", codec.Bool(&e.CancelOnMiss)),
		codec.F("requires_to_hit_check", codec.Bool(&e.RequiresToHitCheck)),
		codec.F("uid_class_name", codec.String(&e.UIDClassName)),
		codec.F("n_id_class_name", codec.Int32(&e.NIDClassName)),
		codec.F("expression_duration", codec.String(&e.ExpressionDuration)),
		codec.F("expression_magnitude", codec.String(&e.ExpressionMagnitude)),
		codec.F("expression_probability", codec.String(&e.ExpressionProbability)),
		codec.F("reward", codec.String(&e.Reward)),
		codec.F("effect_id", codec.String(&e.EffectID)),
		codec.F("ignore_ed", codec.Bool(&e.IgnoreED)),
		codec.F("override", codec.String(&e.Override)),
		codec.F("procs_per_minute", codec.Float32(&e.ProcsPerMinute)),
		codec.F("power_attribs", codec.Enum(&e.PowerAttribs)),
		codec.F("atr_orig_accuracy", codec.Float32(&e.AtrOrigAccuracy)),
		codec.F("atr_orig_activate_period", codec.Float32(&e.AtrOrigActivatePeriod)),
		codec.F("atr_orig_arc", codec.Int32(&e.AtrOrigArc)),
		codec.F("atr_orig_cast_time", codec.Float32(&e.AtrOrigCastTime)),
		codec.F("atr_orig_effect_area", codec.Enum(&e.AtrOrigEffectArea)),
		codec.F("atr_orig_endurance_cost", codec.Float32(&e.AtrOrigEnduranceCost)),
		codec.F("atr_orig_interrupt_time", codec.Float32(&e.AtrOrigInterruptTime)),
		codec.F("atr_orig_max_targets", codec.Int32(&e.AtrOrigMaxTargets)),
		codec.F("atr_orig_radius", codec.Float32(&e.AtrOrigRadius)),
		codec.F("atr_orig_range", codec.Float32(&e.AtrOrigRange)),
		codec.F("atr_orig_recharge_time", codec.Float32(&e.AtrOrigRechargeTime)),
		codec.F("atr_orig_secondary_range", codec.Float32(&e.AtrOrigSecondaryRange)),
		codec.F("atr_mod_accuracy", codec.Float32(&e.AtrModAccuracy)),
		codec.F("atr_mod_activate_period", codec.Float32(&e.AtrModActivatePeriod)),
		codec.F("atr_mod_arc", codec.Int32(&e.AtrModArc)),
		codec.F("atr_mod_cast_time", codec.Float32(&e.AtrModCastTime)),
		codec.F("atr_mod_effect_area", codec.Enum(&e.AtrModEffectArea)),
		codec.F("atr_mod_endurance_cost", codec.Float32(&e.AtrModEnduranceCost)),
		codec.F("atr_mod_interrupt_time", codec.Float32(&e.AtrModInterruptTime)),
		codec.F("atr_mod_max_targets", codec.Int32(&e.AtrModMaxTargets)),
		codec.F("atr_mod_radius", codec.Float32(&e.AtrModRadius)),
		codec.F("atr_mod_range", codec.Float32(&e.AtrModRange)),
		codec.F("atr_mod_recharge_time", codec.Float32(&e.AtrModRechargeTime)),
		codec.F("atr_mod_secondary_range", codec.Float32(&e.AtrModSecondaryRange)),
		codec.F("active_conditionals_kv", codec.HackSeq(&e.ActiveConditionals, stringPair)),
	}
}

// Summon is an entity created by a power.
type Summon struct {
	UID         string       `yaml:"uid" cbor:"uid"`
	DisplayName string       `yaml:"display_name" cbor:"display_name"`
	EntityType  SummonEntity `yaml:"entity_type" cbor:"entity_type"`
	ClassName   string       `yaml:"class_name" cbor:"class_name"`
	// PowersetFullNames and UpgradePowerFullNames are stored with the legacy double-length sequence prefix.
	PowersetFullNames     []string `yaml:"powerset_full_name" cbor:"powerset_full_name"`
	UpgradePowerFullNames []string `yaml:"upgrade_power_full_name" cbor:"upgrade_power_full_name"`
}

func (s *Summon) Fields() []codec.Field {
	return []codec.Field{
		codec.F("uid", codec.String(&s.UID)),
		codec.F("display_name", codec.String(&s.DisplayName)),
		codec.F("entity_type", codec.Enum(&s.EntityType)),
		codec.F("class_name", codec.String(&s.ClassName)),
		codec.F("powerset_full_name", codec.HackSeq(&s.PowersetFullNames, codec.String)),
		codec.F("upgrade_power_full_name", codec.HackSeq(&s.UpgradePowerFullNames, codec.String)),
	}
}
