package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	skillsimv1alpha1 "github.com/KirkDiggler/rpg-skill-simulator/internal/api/skillsim/v1alpha1"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
)

var (
	searchDedupe       bool
	searchMaxSets      int32
	searchWeaponSkills []string
)

var searchCmd = &cobra.Command{
	Use:   "search [skill:level...]",
	Short: "Search armor sets and weapons together",
	Long: `Run the armor and weapon searches and pair the results. Examples:

  search 攻撃:3 --type 大剣
  search 攻撃:3 --name "Buster Sword"
  search 攻撃:3 --weapon-skill 会心:1 --element 火属性`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchDedupe, "dedupe", false, "Drop repeated armor sets")
	searchCmd.Flags().Int32Var(&searchMaxSets, "max-sets", 30, "Maximum armor sets, 0 for all")
	searchCmd.Flags().StringSliceVar(&searchWeaponSkills, "weapon-skill", nil, "Weapon skill as name:level, repeatable")
	addWeaponFlags(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	armorSkills, err := parseSkillArgs(args)
	if err != nil {
		return err
	}
	weaponSkills, err := parseSkillArgs(searchWeaponSkills)
	if err != nil {
		return err
	}

	client, cleanup, err := createSimulatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Search(ctx, &skillsimv1alpha1.SearchRequest{
		ArmorSkills: armorSkills,
		Weapon: &skillsimv1alpha1.WeaponCriteria{
			Name:    weaponName,
			Type:    weaponType,
			Element: weaponElement,
			Skills:  weaponSkills,
		},
		Deduplicate: searchDedupe,
		MaxSets:     searchMaxSets,
	})
	if err != nil {
		return fmt.Errorf("failed to search: %w", errors.FromGRPCError(err))
	}

	fmt.Printf("Search %s: %d armor sets, %d weapons (%s), %d combinations (%s)\n",
		resp.SearchId, len(resp.ArmorSets), len(resp.Weapons), resp.WeaponMode,
		len(resp.Combinations), time.Duration(resp.ElapsedMicros)*time.Microsecond)
	fmt.Printf("Weapon: %s\n", resp.WeaponLabel)

	for i, combo := range resp.Combinations {
		printArmorSet(i, combo.Armor)
		if combo.Weapon != nil {
			printWeapon(combo.Weapon)
		} else {
			fmt.Printf("  %s\n", combo.WeaponLabel)
		}
	}

	return nil
}
