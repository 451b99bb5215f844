package drawsteel

// Characteristic is one of the five hero/monster characteristics
type Characteristic string

// Characteristic constants
const (
	CharacteristicMight     Characteristic = "might"
	CharacteristicAgility   Characteristic = "agility"
	CharacteristicReason    Characteristic = "reason"
	CharacteristicIntuition Characteristic = "intuition"
	CharacteristicPresence  Characteristic = "presence"
	CharacteristicNone      Characteristic = "none"
)

// CanonicalCharacteristics is the fixed order used for tie-breaking
var CanonicalCharacteristics = []Characteristic{
	CharacteristicMight,
	CharacteristicAgility,
	CharacteristicReason,
	CharacteristicIntuition,
	CharacteristicPresence,
}

// Condition names recognized by default extraction, in priority order
const (
	ConditionBleeding   = "bleeding"
	ConditionDazed      = "dazed"
	ConditionGrabbed    = "grabbed"
	ConditionFrightened = "frightened"
	ConditionProne      = "prone"
	ConditionRestrained = "restrained"
	ConditionSlowed     = "slowed"
	ConditionTaunted    = "taunted"
	ConditionWeakened   = "weakened"
)

// DefaultConditions lists the built-in condition vocabulary. Order is match priority.
var DefaultConditions = []string{
	ConditionBleeding,
	ConditionDazed,
	ConditionGrabbed,
	ConditionFrightened,
	ConditionProne,
	ConditionRestrained,
	ConditionSlowed,
	ConditionTaunted,
	ConditionWeakened,
}

// Duration is how long an applied condition lasts
type Duration string

// Duration constants
const (
	DurationTurn      Duration = "turn"
	DurationSave      Duration = "save"
	DurationEncounter Duration = "encounter"
	DurationRespite   Duration = "respite"
)

// MovementVerb is a forced movement keyword
type MovementVerb string

// MovementVerb constants
const (
	MovementSlide MovementVerb = "slide"
	MovementPush  MovementVerb = "push"
	MovementPull  MovementVerb = "pull"
	MovementShift MovementVerb = "shift"
)

// EffectKind classifies a grouped power-roll effect
type EffectKind string

// EffectKind constants
const (
	EffectKindDamage  EffectKind = "damage"
	EffectKindApplied EffectKind = "applied"
	EffectKindForced  EffectKind = "forced"
	EffectKindSpecial EffectKind = "special"
)

// Tier is one of the three power-roll result bands
type Tier string

// Tier constants
const (
	Tier1 Tier = "tier1"
	Tier2 Tier = "tier2"
	Tier3 Tier = "tier3"
)

// Tiers lists the tiers in ascending order
var Tiers = []Tier{Tier1, Tier2, Tier3}

// PotencyValues holds the potency formula per tier index
var PotencyValues = [3]string{"@potency.weak", "@potency.average", "@potency.strong"}

// ItemType distinguishes features from abilities
type ItemType string

// ItemType constants
const (
	ItemTypeFeature ItemType = "feature"
	ItemTypeAbility ItemType = "ability"
)

// ActionType is the normalized action economy slot of an ability
type ActionType string

// ActionType constants
const (
	ActionMain          ActionType = "main"
	ActionManeuver      ActionType = "maneuver"
	ActionFreeManeuver  ActionType = "freeManeuver"
	ActionTriggered     ActionType = "triggered"
	ActionFreeTriggered ActionType = "freeTriggered"
	ActionNone          ActionType = "none"
	ActionVillain       ActionType = "villain"
	ActionSpecial       ActionType = "special"
)

// Ability category constants
const (
	CategorySignature = "signature"
	CategoryHeroic    = "heroic"
	CategoryVillain   = "villain"
)

// DistanceType is the normalized range shape of an ability
type DistanceType string

// DistanceType constants
const (
	DistanceBurst       DistanceType = "burst"
	DistanceCube        DistanceType = "cube"
	DistanceLine        DistanceType = "line"
	DistanceAura        DistanceType = "aura"
	DistanceMeleeRanged DistanceType = "meleeRanged"
	DistanceRanged      DistanceType = "ranged"
	DistanceMelee       DistanceType = "melee"
	DistanceSelf        DistanceType = "self"
	DistanceSpecial     DistanceType = "special"
)

// TargetType is the normalized target descriptor of an ability
type TargetType string

// TargetType constants
const (
	TargetCreatureObject TargetType = "creatureObject"
	TargetSelfOrAlly     TargetType = "selfOrAlly"
	TargetSelfOrCreature TargetType = "selfOrCreature"
	TargetSelfAlly       TargetType = "selfAlly"
	TargetCreature       TargetType = "creature"
	TargetObject         TargetType = "object"
	TargetEnemy          TargetType = "enemy"
	TargetAlly           TargetType = "ally"
	TargetSelf           TargetType = "self"
	TargetSpecial        TargetType = "special"
)

// Display templates resolved by the host system
const (
	DisplayPotency = "{{potency}}"
	DisplayForced  = "{{forced}}"
)

// Source defaults for imported monster content
const (
	SourceBook    = "Monsters"
	SourceLicense = "Draw Steel Creator License"
)

// Images used for imported items
const (
	ImgAbilityMain      = "icons/skills/melee/strike-polearm-glowing-white.webp"
	ImgAbilityManeuver  = "icons/magic/air/air-pressure-shield-blue.webp"
	ImgAbilityTriggered = "icons/skills/movement/arrow-upward-yellow.webp"
	ImgAbilityMalice    = "icons/magic/unholy/silhouette-robe-evil-power.webp"
	ImgAbilityVillain   = "icons/magic/death/skull-horned-worn-fire-blue.webp"
	ImgFeatureCaptain   = "icons/skills/social/intimidation-impressing.webp"
	ImgFeatureDefault   = "icons/creatures/unholy/demon-hairy-winged-pink.webp"
	ImgStatusEffect     = "icons/svg/downgrade.svg"
)

// EntityTypeMonster is the rpg-toolkit entity type for imported monsters
const EntityTypeMonster = "monster"
