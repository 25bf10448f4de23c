package engine

import (
	"cmp"
	"slices"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
)

// SortRequirements returns a copy of reqs ordered by level, highest first.
// Requirements with equal levels keep their relative order.
func SortRequirements(reqs []equipment.SkillLevel) []equipment.SkillLevel {
	sorted := slices.Clone(reqs)
	slices.SortStableFunc(sorted, func(a, b equipment.SkillLevel) int {
		return cmp.Compare(b.Level, a.Level)
	})
	return sorted
}

// SearchArmor returns every armor set, at most one item per part, whose summed
// skill levels meet all requirements. An empty requirement list yields no sets.
func SearchArmor(items []*equipment.ArmorItem, reqs []equipment.SkillLevel) [][]*equipment.ArmorItem {
	results := [][]*equipment.ArmorItem{}
	if len(reqs) == 0 {
		return results
	}

	groups := GroupByPart(FilterCandidates(items, reqs))
	sorted := SortRequirements(reqs)

	s := newArmorSearch(groups, sorted)
	s.core(0, make([]*equipment.ArmorItem, 0, equipment.PartCount))

	return append(results, s.results...)
}

// armorSearch is the state shared by one SearchArmor call. Branch state
// (the partial set and the shortage) is passed by value.
type armorSearch struct {
	groups     *PartGroups
	reqs       []equipment.SkillLevel
	mainGroups [][]*equipment.ArmorItem

	// shortage slots are per distinct requirement name
	names []string
	slot  map[string]int

	results [][]*equipment.ArmorItem
}

func newArmorSearch(groups *PartGroups, sorted []equipment.SkillLevel) *armorSearch {
	s := &armorSearch{
		groups: groups,
		reqs:   sorted,
		slot:   make(map[string]int, len(sorted)),
	}

	for _, req := range sorted {
		if _, ok := s.slot[req.Name]; !ok {
			s.slot[req.Name] = len(s.names)
			s.names = append(s.names, req.Name)
		}
	}

	main := sorted[0]
	s.mainGroups = make([][]*equipment.ArmorItem, len(groups.Order))
	for i, part := range groups.Order {
		for _, item := range groups.Items[part] {
			if grantsAtLeast(item, main) {
				s.mainGroups[i] = append(s.mainGroups[i], item)
			}
		}
	}

	return s
}

// core walks the parts in group order. Each part is first left empty, then
// tried with every item that covers the main requirement alone.
func (s *armorSearch) core(index int, set []*equipment.ArmorItem) {
	if index == len(s.mainGroups) {
		s.supplement(set, s.coreShortage(set), s.vacantParts(set))
		return
	}

	s.core(index+1, set)

	for _, item := range s.mainGroups[index] {
		s.core(index+1, append(set, item))
	}
}

// supplement fills the vacant parts from the full candidate groups. A set is
// kept only when no shortage is left once every vacant part was visited.
func (s *armorSearch) supplement(set []*equipment.ArmorItem, shortage []int, vacant []equipment.Part) {
	if len(vacant) == 0 {
		if satisfied(shortage) {
			s.results = append(s.results, slices.Clone(set))
		}
		return
	}

	part, rest := vacant[0], vacant[1:]

	s.supplement(set, shortage, rest)

	for _, item := range s.groups.Items[part] {
		next := slices.Clone(shortage)
		for _, skill := range item.Skills {
			if i, ok := s.slot[skill.Name]; ok {
				next[i] -= skill.Level
			}
		}
		s.supplement(append(set, item), next, rest)
	}
}

// coreShortage computes what the core leaf still lacks, clamped at zero. When a
// name is required twice the later requirement in sorted order wins.
func (s *armorSearch) coreShortage(set []*equipment.ArmorItem) []int {
	shortage := make([]int, len(s.names))
	for _, req := range s.reqs {
		total := 0
		for _, item := range set {
			total += item.SkillLevel(req.Name)
		}
		shortage[s.slot[req.Name]] = max(0, req.Level-total)
	}
	return shortage
}

func (s *armorSearch) vacantParts(set []*equipment.ArmorItem) []equipment.Part {
	vacant := make([]equipment.Part, 0, len(s.groups.Order))
	for _, part := range s.groups.Order {
		used := slices.ContainsFunc(set, func(item *equipment.ArmorItem) bool {
			return item.Part == part
		})
		if !used {
			vacant = append(vacant, part)
		}
	}
	return vacant
}

func satisfied(shortage []int) bool {
	for _, lv := range shortage {
		if lv > 0 {
			return false
		}
	}
	return true
}
