package builders

import (
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
)

// WeaponBuilder provides a fluent interface for building test WeaponItem instances
type WeaponBuilder struct {
	item *equipment.WeaponItem
}

// NewWeaponBuilder creates a new builder with minimal defaults
func NewWeaponBuilder() *WeaponBuilder {
	return &WeaponBuilder{
		item: &equipment.WeaponItem{
			ID:     1,
			Name:   "Test Blade",
			Type:   equipment.WeaponTypeGreatSword,
			Attack: 100,
		},
	}
}

// WithID sets the weapon ID
func (b *WeaponBuilder) WithID(id int) *WeaponBuilder {
	b.item.ID = id
	return b
}

// WithName sets the weapon name and its reading
func (b *WeaponBuilder) WithName(name string, furigana ...string) *WeaponBuilder {
	b.item.Name = name
	if len(furigana) > 0 {
		b.item.Furigana = furigana[0]
	}
	return b
}

// WithType sets the weapon type
func (b *WeaponBuilder) WithType(weaponType equipment.WeaponType) *WeaponBuilder {
	b.item.Type = weaponType
	return b
}

// WithAttack sets the attack value
func (b *WeaponBuilder) WithAttack(attack int) *WeaponBuilder {
	b.item.Attack = attack
	return b
}

// WithAffinity sets the affinity percentage
func (b *WeaponBuilder) WithAffinity(affinity int) *WeaponBuilder {
	b.item.Affinity = &affinity
	return b
}

// WithElement sets the element and its attack value
func (b *WeaponBuilder) WithElement(element equipment.Element, elementAtk int) *WeaponBuilder {
	b.item.Element = &element
	b.item.ElementAtk = &elementAtk
	return b
}

// WithSlots sets the three decoration slot sizes
func (b *WeaponBuilder) WithSlots(slot1, slot2, slot3 int) *WeaponBuilder {
	b.item.Slots = [equipment.SlotCount]int{slot1, slot2, slot3}
	return b
}

// WithSkill appends a granted skill
func (b *WeaponBuilder) WithSkill(name string, level int) *WeaponBuilder {
	b.item.Skills = append(b.item.Skills, equipment.SkillLevel{Name: name, Level: level})
	return b
}

// Build returns the built weapon item
func (b *WeaponBuilder) Build() *equipment.WeaponItem {
	return b.item
}
