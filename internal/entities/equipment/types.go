// Package equipment defines the armor and weapon catalog types shared by the
// search engine, the catalog repositories and the transport layer.
package equipment

import (
	"slices"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types used when items are addressed through rpg-toolkit
const (
	EntityTypeArmor  = "armor"
	EntityTypeWeapon = "weapon"
)

// SlotCount is the number of decoration slots every item carries
const SlotCount = 3

// MaxSlotLevel is the largest decoration slot size
const MaxSlotLevel = 3

// SkillLevel is a named skill amount, either granted by an item or required
// by a search. Names are compared exactly, without normalization.
type SkillLevel struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// ArmorItem is a wearable catalog entry for a single body part
type ArmorItem struct {
	ID      int            `json:"id"`
	Part    Part           `json:"part"`
	Name    string         `json:"name"`
	Defense int            `json:"defense"`
	Slots   [SlotCount]int `json:"slots"`
	Series  string         `json:"series,omitempty"`
	Group   string         `json:"group,omitempty"`
	Skills  []SkillLevel   `json:"skills"`
}

// SkillLevel returns the level the item grants for name, or 0
func (a *ArmorItem) SkillLevel(name string) int {
	return skillLevel(a.Skills, name)
}

// HasSkill reports whether the item grants name at any level
func (a *ArmorItem) HasSkill(name string) bool {
	return hasSkill(a.Skills, name)
}

// Clone returns a deep copy of the item
func (a *ArmorItem) Clone() *ArmorItem {
	clone := *a
	clone.Skills = slices.Clone(a.Skills)
	return &clone
}

// GetID returns the item ID in its string form
func (a *ArmorItem) GetID() string {
	return strconv.Itoa(a.ID)
}

// GetType returns the rpg-toolkit entity type
func (a *ArmorItem) GetType() string {
	return EntityTypeArmor
}

// WeaponItem is a weapon catalog entry. Affinity, Element and ElementAtk are
// nil when the catalog does not record them.
type WeaponItem struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Furigana   string         `json:"furigana,omitempty"`
	Type       WeaponType     `json:"type"`
	Attack     int            `json:"attack"`
	Affinity   *int           `json:"affinity"`
	Element    *Element       `json:"element"`
	ElementAtk *int           `json:"elementAtk"`
	Slots      [SlotCount]int `json:"slots"`
	Skills     []SkillLevel   `json:"skills"`
}

// ElementName returns the element as a string, "" when unset
func (w *WeaponItem) ElementName() string {
	if w.Element == nil {
		return ""
	}
	return w.Element.String()
}

// SkillLevel returns the level the weapon grants for name, or 0
func (w *WeaponItem) SkillLevel(name string) int {
	return skillLevel(w.Skills, name)
}

// SortKey is the reading used to order weapon names for display
func (w *WeaponItem) SortKey() string {
	if w.Furigana != "" {
		return w.Furigana
	}
	return w.Name
}

// Clone returns a deep copy of the weapon
func (w *WeaponItem) Clone() *WeaponItem {
	clone := *w
	clone.Skills = slices.Clone(w.Skills)
	if w.Affinity != nil {
		affinity := *w.Affinity
		clone.Affinity = &affinity
	}
	if w.Element != nil {
		element := *w.Element
		clone.Element = &element
	}
	if w.ElementAtk != nil {
		elementAtk := *w.ElementAtk
		clone.ElementAtk = &elementAtk
	}
	return &clone
}

// GetID returns the item ID in its string form
func (w *WeaponItem) GetID() string {
	return strconv.Itoa(w.ID)
}

// GetType returns the rpg-toolkit entity type
func (w *WeaponItem) GetType() string {
	return EntityTypeWeapon
}

func skillLevel(skills []SkillLevel, name string) int {
	for _, s := range skills {
		if s.Name == name {
			return s.Level
		}
	}
	return 0
}

func hasSkill(skills []SkillLevel, name string) bool {
	for _, s := range skills {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Compile-time check that catalog items implement core.Entity
var (
	_ core.Entity = (*ArmorItem)(nil)
	_ core.Entity = (*WeaponItem)(nil)
)
