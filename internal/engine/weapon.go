package engine

import (
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
)

// WeaponQuery holds the optional weapon constraints. Empty Type or Element
// means the constraint is absent.
type WeaponQuery struct {
	Type    string
	Element string
	Skills  []equipment.SkillLevel
}

// IsEmpty reports whether the query constrains nothing
func (q WeaponQuery) IsEmpty() bool {
	return q.Type == "" && q.Element == "" && len(q.Skills) == 0
}

// FilterWeapons returns the weapons matching every constraint of q, in
// catalog order. A required skill the weapon lacks rejects it.
func FilterWeapons(weapons []*equipment.WeaponItem, q WeaponQuery) []*equipment.WeaponItem {
	matched := make([]*equipment.WeaponItem, 0, len(weapons))
	for _, w := range weapons {
		if w == nil {
			continue
		}
		if q.Type != "" && w.Type.String() != q.Type {
			continue
		}
		if q.Element != "" && (w.Element == nil || w.Element.String() != q.Element) {
			continue
		}
		if !coversSkills(w.Skills, q.Skills) {
			continue
		}
		matched = append(matched, w)
	}
	return matched
}

// FilterWeaponsByName returns the weapons whose name equals name exactly
func FilterWeaponsByName(weapons []*equipment.WeaponItem, name string) []*equipment.WeaponItem {
	matched := make([]*equipment.WeaponItem, 0, 1)
	for _, w := range weapons {
		if w != nil && w.Name == name {
			matched = append(matched, w)
		}
	}
	return matched
}

func coversSkills(granted, required []equipment.SkillLevel) bool {
	for _, req := range required {
		found := false
		for _, s := range granted {
			if s.Name == req.Name && s.Level >= req.Level {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
