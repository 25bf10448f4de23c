package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	skillsimv1alpha1 "github.com/KirkDiggler/rpg-skill-simulator/internal/api/skillsim/v1alpha1"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
)

var (
	skillsKind     string
	skillsCategory string
)

var listSkillsCmd = &cobra.Command{
	Use:   "list-skills",
	Short: "List the skills a search can require",
	Long:  `List armor or weapon skills with their maximum level. Armor skills are grouped by category.`,
	Args:  cobra.NoArgs,
	RunE:  listSkills,
}

func init() {
	listSkillsCmd.Flags().StringVar(&skillsKind, "kind", "armor", "Skill kind: armor or weapon")
	listSkillsCmd.Flags().StringVar(&skillsCategory, "category", "", "Armor skill category (攻撃系, 生存系, 快適系)")
}

func listSkills(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSimulatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListSkills(ctx, &skillsimv1alpha1.ListSkillsRequest{
		Kind:     skillsKind,
		Category: skillsCategory,
	})
	if err != nil {
		return fmt.Errorf("failed to list skills: %w", errors.FromGRPCError(err))
	}

	for _, group := range groupSkills(resp.Skills) {
		if group.category != "" {
			fmt.Printf("[%s]\n", group.category)
		}
		for _, skill := range group.skills {
			fmt.Printf("  %s (max %d)\n", skill.Name, skill.MaxLevel)
		}
	}

	return nil
}

type skillGroup struct {
	category string
	skills   []*skillsimv1alpha1.Skill
}

// groupSkills groups skills by category in display order, keeping skills
// without a known category in a trailing untitled group
func groupSkills(skills []*skillsimv1alpha1.Skill) []skillGroup {
	byCategory := make(map[string][]*skillsimv1alpha1.Skill)
	var other []*skillsimv1alpha1.Skill
	for _, skill := range skills {
		if equipment.SkillCategory(skill.Category).IsValid() {
			byCategory[skill.Category] = append(byCategory[skill.Category], skill)
			continue
		}
		other = append(other, skill)
	}

	groups := make([]skillGroup, 0, len(byCategory)+1)
	for _, category := range equipment.AllSkillCategories() {
		if listed := byCategory[category.String()]; len(listed) > 0 {
			groups = append(groups, skillGroup{category: category.String(), skills: listed})
		}
	}
	if len(other) > 0 {
		groups = append(groups, skillGroup{skills: other})
	}
	return groups
}
