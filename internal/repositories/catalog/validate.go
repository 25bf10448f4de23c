package catalog

import (
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
)

func validateArmor(items []*equipment.ArmorItem) error {
	for i, item := range items {
		if item == nil {
			return errors.InvalidArgumentf("armor[%d] cannot be nil", i)
		}
		if item.ID <= 0 {
			return errors.InvalidArgumentf("armor[%d] %q has invalid ID %d", i, item.Name, item.ID)
		}
		if !item.Part.IsValid() {
			return errors.InvalidArgumentf("armor[%d] %q has unknown part %q", i, item.Name, item.Part)
		}
	}
	return nil
}

func validateWeapons(weapons []*equipment.WeaponItem) error {
	for i, weapon := range weapons {
		if weapon == nil {
			return errors.InvalidArgumentf("weapon[%d] cannot be nil", i)
		}
		if weapon.ID <= 0 {
			return errors.InvalidArgumentf("weapon[%d] %q has invalid ID %d", i, weapon.Name, weapon.ID)
		}
	}
	return nil
}

func validateSkills(skills []*equipment.Skill) error {
	for i, skill := range skills {
		if skill == nil {
			return errors.InvalidArgumentf("skill[%d] cannot be nil", i)
		}
		if skill.ID <= 0 {
			return errors.InvalidArgumentf("skill[%d] %q has invalid ID %d", i, skill.Name, skill.ID)
		}
		if !skill.Kind.IsValid() {
			return errors.InvalidArgumentf("skill[%d] %q has unknown kind %q", i, skill.Name, skill.Kind)
		}
		if skill.Name == "" {
			return errors.InvalidArgumentf("skill[%d] has no name", i)
		}
	}
	return nil
}

func validateKind(kind equipment.SkillKind) error {
	if !kind.IsValid() {
		return errors.InvalidArgumentf("unknown skill kind %q", kind)
	}
	return nil
}

// checkUniqueIDs rejects a snapshot in which two records share an ID
func checkUniqueIDs[T any](what string, items []T, id func(T) int, name func(T) string) error {
	seen := make(map[int]int, len(items))
	for i, item := range items {
		if first, ok := seen[id(item)]; ok {
			return errors.InvalidArgumentf("%s[%d] %q repeats ID %d of %s[%d]", what, i, name(item), id(item), what, first)
		}
		seen[id(item)] = i
	}
	return nil
}
