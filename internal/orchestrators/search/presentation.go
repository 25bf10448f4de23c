package search

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/engine"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
)

func toArmorSets(combos [][]*equipment.ArmorItem) []*ArmorSet {
	sets := make([]*ArmorSet, 0, len(combos))
	for _, combo := range combos {
		sets = append(sets, &ArmorSet{
			Items:        engine.SortByPart(combo),
			TotalDefense: engine.TotalDefense(combo),
			Skills:       engine.GrantedSkills(combo),
		})
	}
	return sets
}

func capSets(combos [][]*equipment.ArmorItem, maxSets int) [][]*equipment.ArmorItem {
	if maxSets > 0 && len(combos) > maxSets {
		return combos[:maxSets]
	}
	return combos
}

// pairCombinations pairs every armor set with every weapon, in armor-major
// order, stopping at maxSets pairings. Without weapons each set is paired
// with the label alone.
func pairCombinations(sets []*ArmorSet, weapons []*equipment.WeaponItem, label string, maxSets int) []*Combination {
	full := func(n int) bool { return maxSets > 0 && n >= maxSets }

	combinations := make([]*Combination, 0)
	for _, set := range sets {
		if len(weapons) == 0 {
			combinations = append(combinations, &Combination{Armor: set, WeaponLabel: label})
			if full(len(combinations)) {
				break
			}
			continue
		}

		for _, weapon := range weapons {
			combinations = append(combinations, &Combination{Armor: set, Weapon: weapon, WeaponLabel: weapon.Name})
			if full(len(combinations)) {
				return combinations
			}
		}
	}
	return combinations
}

// sortSkills orders skills by reading using Japanese collation
func sortSkills(skills []*equipment.Skill) []*equipment.Skill {
	c := collate.New(language.Japanese)
	slices.SortStableFunc(skills, func(a, b *equipment.Skill) int {
		return c.CompareString(a.SortKey(), b.SortKey())
	})
	return skills
}

// weaponNameOptions orders weapons by reading (furigana, falling back to
// the name) using Japanese collation
func weaponNameOptions(weapons []*equipment.WeaponItem) []*WeaponNameOption {
	sorted := slices.Clone(weapons)
	c := collate.New(language.Japanese)
	slices.SortStableFunc(sorted, func(a, b *equipment.WeaponItem) int {
		return c.CompareString(a.SortKey(), b.SortKey())
	})

	options := make([]*WeaponNameOption, 0, len(sorted))
	for _, w := range sorted {
		options = append(options, &WeaponNameOption{Name: w.Name, Furigana: w.Furigana})
	}
	return options
}
