// Package builders provides test data builders for creating catalog fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
)

// ArmorBuilder provides a fluent interface for building test ArmorItem instances
type ArmorBuilder struct {
	item *equipment.ArmorItem
}

// NewArmorBuilder creates a new builder with minimal defaults
func NewArmorBuilder() *ArmorBuilder {
	return &ArmorBuilder{
		item: &equipment.ArmorItem{
			ID:      1,
			Part:    equipment.PartHead,
			Name:    "Test Helm",
			Defense: 10,
		},
	}
}

// WithID sets the item ID
func (b *ArmorBuilder) WithID(id int) *ArmorBuilder {
	b.item.ID = id
	return b
}

// WithPart sets the body part
func (b *ArmorBuilder) WithPart(part equipment.Part) *ArmorBuilder {
	b.item.Part = part
	return b
}

// WithName sets the item name
func (b *ArmorBuilder) WithName(name string) *ArmorBuilder {
	b.item.Name = name
	return b
}

// WithDefense sets the defense value
func (b *ArmorBuilder) WithDefense(defense int) *ArmorBuilder {
	b.item.Defense = defense
	return b
}

// WithSlots sets the three decoration slot sizes
func (b *ArmorBuilder) WithSlots(slot1, slot2, slot3 int) *ArmorBuilder {
	b.item.Slots = [equipment.SlotCount]int{slot1, slot2, slot3}
	return b
}

// WithSeries sets the series and group labels
func (b *ArmorBuilder) WithSeries(series, group string) *ArmorBuilder {
	b.item.Series = series
	b.item.Group = group
	return b
}

// WithSkill appends a granted skill
func (b *ArmorBuilder) WithSkill(name string, level int) *ArmorBuilder {
	b.item.Skills = append(b.item.Skills, equipment.SkillLevel{Name: name, Level: level})
	return b
}

// Build returns the built armor item
func (b *ArmorBuilder) Build() *equipment.ArmorItem {
	return b.item
}

// Armor is a shorthand for the common id/part/name/skills case
func Armor(id int, part equipment.Part, name string, skills ...equipment.SkillLevel) *equipment.ArmorItem {
	b := NewArmorBuilder().WithID(id).WithPart(part).WithName(name)
	for _, s := range skills {
		b.WithSkill(s.Name, s.Level)
	}
	return b.Build()
}

// Skill is a shorthand for building a SkillLevel
func Skill(name string, level int) equipment.SkillLevel {
	return equipment.SkillLevel{Name: name, Level: level}
}
