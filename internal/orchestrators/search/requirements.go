package search

import (
	"strings"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
)

// SanitizeRequirements drops unnamed requirements and levels of zero or less.
// A repeated name keeps the position of its first occurrence and the level
// of its last.
func SanitizeRequirements(reqs []equipment.SkillLevel) []equipment.SkillLevel {
	sanitized := make([]equipment.SkillLevel, 0, len(reqs))
	index := make(map[string]int, len(reqs))

	for _, req := range reqs {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			continue
		}

		i, seen := index[name]
		if req.Level <= 0 {
			if seen {
				// a later zero level clears the earlier selection
				sanitized[i].Level = 0
			}
			continue
		}
		if seen {
			sanitized[i].Level = req.Level
			continue
		}

		index[name] = len(sanitized)
		sanitized = append(sanitized, equipment.SkillLevel{Name: name, Level: req.Level})
	}

	kept := sanitized[:0]
	for _, req := range sanitized {
		if req.Level > 0 {
			kept = append(kept, req)
		}
	}
	return kept
}

// WeaponLabel describes the weapon choice of a search when no weapon
// candidate is shown
func WeaponLabel(criteria WeaponCriteria) string {
	switch {
	case criteria.Name != "":
		return criteria.Name
	case criteria.Type != "" && criteria.Element != "":
		return criteria.Type + " " + criteria.Element
	case criteria.Type != "":
		return criteria.Type
	case criteria.Element != "":
		return criteria.Element
	default:
		return NoWeaponLabel
	}
}

func sanitizeCriteria(criteria WeaponCriteria) WeaponCriteria {
	return WeaponCriteria{
		Name:    strings.TrimSpace(criteria.Name),
		Type:    criteria.Type,
		Element: criteria.Element,
		Skills:  SanitizeRequirements(criteria.Skills),
	}
}

func validateCriteria(criteria WeaponCriteria) error {
	vb := errors.NewValidationBuilder()
	validateTypeAndElement(criteria.Type, criteria.Element, vb)
	return vb.Build()
}

func validateTypeAndElement(weaponType, element string, vb *errors.ValidationBuilder) {
	if weaponType != "" && !equipment.WeaponType(weaponType).IsValid() {
		vb.InvalidField("type", "unknown weapon type "+weaponType)
	}
	if element != "" && !equipment.Element(element).IsValid() {
		vb.InvalidField("element", "unknown element "+element)
	}
}

func validateMaxSets(maxSets int) error {
	if maxSets < 0 {
		return errors.InvalidArgumentf("max sets must not be negative, got %d", maxSets)
	}
	return nil
}
