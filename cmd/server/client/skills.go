package client

import (
	"fmt"
	"strconv"
	"strings"

	skillsimv1alpha1 "github.com/KirkDiggler/rpg-skill-simulator/internal/api/skillsim/v1alpha1"
)

// parseSkillArgs turns "name:level" arguments into skill requirements
func parseSkillArgs(args []string) ([]*skillsimv1alpha1.SkillLevel, error) {
	skills := make([]*skillsimv1alpha1.SkillLevel, 0, len(args))
	for _, arg := range args {
		idx := strings.LastIndex(arg, ":")
		if idx <= 0 || idx == len(arg)-1 {
			return nil, fmt.Errorf("invalid skill %q, expected name:level", arg)
		}

		level, err := strconv.ParseInt(arg[idx+1:], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid level in %q: %w", arg, err)
		}

		skills = append(skills, &skillsimv1alpha1.SkillLevel{
			Name:  strings.TrimSpace(arg[:idx]),
			Level: int32(level),
		})
	}
	return skills, nil
}

func formatSkills(skills []*skillsimv1alpha1.SkillLevel) string {
	if len(skills) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(skills))
	for _, skill := range skills {
		parts = append(parts, fmt.Sprintf("%s+%d", skill.GetName(), skill.GetLevel()))
	}
	return strings.Join(parts, ", ")
}

func printArmorSet(index int, set *skillsimv1alpha1.ArmorSet) {
	fmt.Printf("\nSet %d (defense %d):\n", index+1, set.TotalDefense)
	for _, item := range set.Items {
		fmt.Printf("  [%s] %s  slots %v  %s\n", item.Part, item.Name, item.Slots, formatSkills(item.Skills))
	}
	fmt.Printf("  Skills: %s\n", formatSkills(set.Skills))
}

func printWeapon(weapon *skillsimv1alpha1.Weapon) {
	fmt.Printf("  %s (%s) attack %d", weapon.Name, weapon.Type, weapon.Attack)
	if weapon.Affinity != nil {
		fmt.Printf(" affinity %d%%", *weapon.Affinity)
	}
	if weapon.Element != nil {
		fmt.Printf(" %s", *weapon.Element)
		if weapon.ElementAtk != nil {
			fmt.Printf(" %d", *weapon.ElementAtk)
		}
	}
	fmt.Printf("  slots %v  %s\n", weapon.Slots, formatSkills(weapon.Skills))
}
