package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/engine"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/testutils"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/testutils/builders"
)

func weaponNames(weapons []*equipment.WeaponItem) []string {
	out := make([]string, 0, len(weapons))
	for _, w := range weapons {
		out = append(out, w.Name)
	}
	return out
}

func TestFilterWeapons(t *testing.T) {
	catalog := testutils.CreateWeapons()

	testCases := []struct {
		name     string
		query    engine.WeaponQuery
		expected []string
	}{
		{
			name:     "no constraints returns the catalog",
			query:    engine.WeaponQuery{},
			expected: []string{"W1", "Iron Katana", "Buster Sword", "Flame Blade"},
		},
		{
			name: "type and skill threshold",
			query: engine.WeaponQuery{
				Type:   equipment.WeaponTypeGreatSword.String(),
				Skills: []equipment.SkillLevel{builders.Skill(testutils.SkillCritical, 1)},
			},
			expected: []string{"W1"},
		},
		{
			name: "threshold above every weapon",
			query: engine.WeaponQuery{
				Skills: []equipment.SkillLevel{builders.Skill(testutils.SkillCritical, 3)},
			},
			expected: []string{},
		},
		{
			name:     "type only",
			query:    engine.WeaponQuery{Type: equipment.WeaponTypeGreatSword.String()},
			expected: []string{"W1", "Buster Sword"},
		},
		{
			name:     "element skips weapons without an element",
			query:    engine.WeaponQuery{Element: equipment.ElementFire.String()},
			expected: []string{"W1", "Flame Blade"},
		},
		{
			name: "every required skill must be present",
			query: engine.WeaponQuery{
				Skills: []equipment.SkillLevel{
					builders.Skill(testutils.SkillCritical, 1),
					builders.Skill(testutils.SkillAttack, 1),
				},
			},
			expected: []string{"Iron Katana"},
		},
		{
			name: "type and element must both match",
			query: engine.WeaponQuery{
				Type:    equipment.WeaponTypeLongSword.String(),
				Element: equipment.ElementFire.String(),
			},
			expected: []string{},
		},
		{
			name: "unknown skill rejects all",
			query: engine.WeaponQuery{
				Skills: []equipment.SkillLevel{builders.Skill("砥石使用高速化", 1)},
			},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.FilterWeapons(catalog, tc.query)
			assert.Equal(t, tc.expected, weaponNames(result))

			for _, w := range result {
				if tc.query.Type != "" {
					assert.Equal(t, tc.query.Type, w.Type.String())
				}
				if tc.query.Element != "" {
					assert.Equal(t, tc.query.Element, w.ElementName())
				}
				for _, req := range tc.query.Skills {
					assert.GreaterOrEqual(t, w.SkillLevel(req.Name), req.Level)
				}
			}
		})
	}
}

func TestFilterWeapons_EmptyQueryKeepsOrderAndItems(t *testing.T) {
	catalog := testutils.CreateWeapons()

	result := engine.FilterWeapons(catalog, engine.WeaponQuery{})

	assert.Equal(t, catalog, result)
	assert.True(t, engine.WeaponQuery{}.IsEmpty())
}

func TestFilterWeaponsByName(t *testing.T) {
	catalog := testutils.CreateWeapons()

	assert.Equal(t, []string{"Iron Katana"}, weaponNames(engine.FilterWeaponsByName(catalog, "Iron Katana")))
	assert.Empty(t, engine.FilterWeaponsByName(catalog, "iron katana"))
}
