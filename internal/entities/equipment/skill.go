package equipment

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types of the skill master lists
const (
	EntityTypeSkill       = "skill"
	EntityTypeWeaponSkill = "weapon_skill"
)

// SkillKind says which master list a skill belongs to
type SkillKind string

// Skill kinds
const (
	// SkillKindArmor skills come from armor and decorations
	SkillKindArmor SkillKind = "armor"
	// SkillKindWeapon skills only appear on weapons
	SkillKindWeapon SkillKind = "weapon"
)

// String returns the string representation of the kind
func (k SkillKind) String() string {
	return string(k)
}

// IsValid checks if the kind is known
func (k SkillKind) IsValid() bool {
	return k == SkillKindArmor || k == SkillKindWeapon
}

// SkillCategory groups armor skills for selection
type SkillCategory string

// Armor skill categories, in display order
const (
	SkillCategoryAttack   SkillCategory = "攻撃系"
	SkillCategorySurvival SkillCategory = "生存系"
	SkillCategoryComfort  SkillCategory = "快適系"
)

// String returns the string representation of the category
func (c SkillCategory) String() string {
	return string(c)
}

// IsValid checks if the category is known
func (c SkillCategory) IsValid() bool {
	for _, known := range AllSkillCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// AllSkillCategories returns every armor skill category in display order
func AllSkillCategories() []SkillCategory {
	return []SkillCategory{
		SkillCategoryAttack,
		SkillCategorySurvival,
		SkillCategoryComfort,
	}
}

// Skill is an entry of a skill master list. Weapon skills carry no category;
// armor skills may lack one in older exports.
type Skill struct {
	ID       int           `json:"id"`
	Kind     SkillKind     `json:"kind"`
	Name     string        `json:"name"`
	MaxLevel int           `json:"maxLevel"`
	Category SkillCategory `json:"category,omitempty"`
	Furigana string        `json:"furigana,omitempty"`
}

// SortKey is the reading used to order skills for display
func (s *Skill) SortKey() string {
	if s.Furigana != "" {
		return s.Furigana
	}
	return s.Name
}

// Clone returns a copy of the skill
func (s *Skill) Clone() *Skill {
	clone := *s
	return &clone
}

// GetID returns the skill ID in its string form
func (s *Skill) GetID() string {
	return strconv.Itoa(s.ID)
}

// GetType returns the rpg-toolkit entity type of the skill's master list
func (s *Skill) GetType() string {
	if s.Kind == SkillKindWeapon {
		return EntityTypeWeaponSkill
	}
	return EntityTypeSkill
}

var _ core.Entity = (*Skill)(nil)
