package engine

import (
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
)

// SortByPart returns a copy of set ordered head, body, arm, waist, leg
func SortByPart(set []*equipment.ArmorItem) []*equipment.ArmorItem {
	sorted := slices.Clone(set)
	slices.SortStableFunc(sorted, func(a, b *equipment.ArmorItem) int {
		return a.Part.Index() - b.Part.Index()
	})
	return sorted
}

// TotalDefense sums the defense of every item in the set
func TotalDefense(set []*equipment.ArmorItem) int {
	total := 0
	for _, item := range set {
		total += item.Defense
	}
	return total
}

// GrantedSkills sums the skill levels of the set, ordered by first appearance
func GrantedSkills(set []*equipment.ArmorItem) []equipment.SkillLevel {
	var granted []equipment.SkillLevel
	index := make(map[string]int)
	for _, item := range set {
		for _, s := range item.Skills {
			i, ok := index[s.Name]
			if !ok {
				index[s.Name] = len(granted)
				granted = append(granted, equipment.SkillLevel{Name: s.Name, Level: s.Level})
				continue
			}
			granted[i].Level += s.Level
		}
	}
	return granted
}

// UniqueCombinations drops every set that repeats an earlier one item for item,
// regardless of the order the items were chosen in. The first occurrence keeps
// its position.
func UniqueCombinations(sets [][]*equipment.ArmorItem) [][]*equipment.ArmorItem {
	unique := make([][]*equipment.ArmorItem, 0, len(sets))
	seen := make(map[string]struct{}, len(sets))
	for _, set := range sets {
		key := combinationKey(set)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, set)
	}
	return unique
}

func combinationKey(set []*equipment.ArmorItem) string {
	var b strings.Builder
	for _, item := range SortByPart(set) {
		b.WriteString(item.Part.String())
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(item.ID))
		b.WriteByte(';')
	}
	return b.String()
}
