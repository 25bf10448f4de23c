package engine

import (
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
)

// PartGroups holds the candidate items of each part. Order lists the parts in
// the order their first candidate was seen, which fixes the branch order of
// both search phases. Parts without candidates appear in neither field.
type PartGroups struct {
	Order []equipment.Part
	Items map[equipment.Part][]*equipment.ArmorItem
}

// Len returns the number of parts that have candidates
func (g *PartGroups) Len() int {
	return len(g.Order)
}

// FilterCandidates returns, in catalog order, the items that grant at least
// one of the required skills at any level
func FilterCandidates(items []*equipment.ArmorItem, reqs []equipment.SkillLevel) []*equipment.ArmorItem {
	filtered := make([]*equipment.ArmorItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if grantsAny(item, reqs) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// GroupByPart partitions items by part, keeping catalog order inside each group
func GroupByPart(items []*equipment.ArmorItem) *PartGroups {
	groups := &PartGroups{
		Items: make(map[equipment.Part][]*equipment.ArmorItem),
	}
	for _, item := range items {
		if _, seen := groups.Items[item.Part]; !seen {
			groups.Order = append(groups.Order, item.Part)
		}
		groups.Items[item.Part] = append(groups.Items[item.Part], item)
	}
	return groups
}

func grantsAny(item *equipment.ArmorItem, reqs []equipment.SkillLevel) bool {
	for _, req := range reqs {
		if item.HasSkill(req.Name) {
			return true
		}
	}
	return false
}

// grantsAtLeast reports whether any single skill entry of the item covers req
func grantsAtLeast(item *equipment.ArmorItem, req equipment.SkillLevel) bool {
	for _, s := range item.Skills {
		if s.Name == req.Name && s.Level >= req.Level {
			return true
		}
	}
	return false
}
