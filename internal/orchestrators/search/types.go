package search

import (
	"time"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
)

// WeaponMode says how the weapon candidates of a search were chosen
type WeaponMode string

// Weapon modes
const (
	// WeaponModeNone means no weapon constraint was given
	WeaponModeNone WeaponMode = "none"
	// WeaponModeName means candidates are the weapons with the selected name
	WeaponModeName WeaponMode = "name"
	// WeaponModeFilter means candidates passed the type, element and skill filter
	WeaponModeFilter WeaponMode = "filter"
	// WeaponModeLabelOnly means only type or element was given; no candidates
	// are listed and the label describes the choice
	WeaponModeLabelOnly WeaponMode = "label_only"
)

// NoWeaponLabel is the label shown when a search has no weapon information
const NoWeaponLabel = "武器情報なし"

// ArmorSet is one armor combination prepared for display
type ArmorSet struct {
	// Items are ordered head, body, arm, waist, leg
	Items        []*equipment.ArmorItem
	TotalDefense int
	// Skills are the summed levels granted by the set
	Skills []equipment.SkillLevel
}

// Combination pairs an armor set with a weapon candidate. Weapon is nil when
// no candidate exists; WeaponLabel then describes the weapon choice.
type Combination struct {
	Armor       *ArmorSet
	Weapon      *equipment.WeaponItem
	WeaponLabel string
}

// WeaponCriteria holds the weapon side of a search
type WeaponCriteria struct {
	// Name selects weapons by exact name and overrides the other fields
	Name    string
	Type    string
	Element string
	Skills  []equipment.SkillLevel
}

// SearchArmorInput defines the request for an armor search
type SearchArmorInput struct {
	Requirements []equipment.SkillLevel
	// Deduplicate drops combinations that repeat an earlier one item for item
	Deduplicate bool
	// MaxSets caps the returned sets, 0 returns all
	MaxSets int
}

// SearchArmorOutput defines the response for an armor search
type SearchArmorOutput struct {
	SearchID string
	// Requirements are the sanitized requirements the search ran with
	Requirements []equipment.SkillLevel
	Sets         []*ArmorSet
	// TotalFound counts combinations before MaxSets was applied
	TotalFound int
	Elapsed    time.Duration
}

// SearchWeaponsInput defines the request for a weapon search
type SearchWeaponsInput struct {
	Criteria WeaponCriteria
}

// SearchWeaponsOutput defines the response for a weapon search
type SearchWeaponsOutput struct {
	SearchID string
	Mode     WeaponMode
	Weapons  []*equipment.WeaponItem
	Elapsed  time.Duration
}

// SearchInput defines the request for a combined armor and weapon search
type SearchInput struct {
	ArmorSkills []equipment.SkillLevel
	Weapon      WeaponCriteria
	Deduplicate bool
	// MaxSets caps the returned combinations, 0 returns all
	MaxSets int
}

// SearchOutput defines the response for a combined search
type SearchOutput struct {
	SearchID     string
	ArmorSets    []*ArmorSet
	Weapons      []*equipment.WeaponItem
	WeaponMode   WeaponMode
	WeaponLabel  string
	Combinations []*Combination
	Elapsed      time.Duration
}

// ListWeaponNamesInput defines the request for weapon name options
type ListWeaponNamesInput struct {
	Type    string
	Element string
}

// WeaponNameOption is a selectable weapon name
type WeaponNameOption struct {
	Name     string
	Furigana string
}

// ListWeaponNamesOutput defines the response for weapon name options
type ListWeaponNamesOutput struct {
	Options []*WeaponNameOption
}

// ListSkillsInput defines the request for selectable skills
type ListSkillsInput struct {
	Kind equipment.SkillKind
	// Category limits armor skills to one category, empty lists all
	Category equipment.SkillCategory
}

// ListSkillsOutput defines the response for selectable skills
type ListSkillsOutput struct {
	// Skills are ordered by reading using Japanese collation
	Skills []*equipment.Skill
}
