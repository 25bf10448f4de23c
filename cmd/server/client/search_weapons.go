package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	skillsimv1alpha1 "github.com/KirkDiggler/rpg-skill-simulator/internal/api/skillsim/v1alpha1"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
)

var (
	weaponName    string
	weaponType    string
	weaponElement string
)

var searchWeaponsCmd = &cobra.Command{
	Use:   "search-weapons [skill:level...]",
	Short: "Search weapons by name or by type, element and skills",
	Args:  cobra.ArbitraryArgs,
	RunE:  searchWeapons,
}

func init() {
	addWeaponFlags(searchWeaponsCmd)
}

func addWeaponFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&weaponName, "name", "", "Exact weapon name, overrides the other filters")
	cmd.Flags().StringVar(&weaponType, "type", "", "Weapon type")
	cmd.Flags().StringVar(&weaponElement, "element", "", "Weapon element")
}

func searchWeapons(cmd *cobra.Command, args []string) error {
	skills, err := parseSkillArgs(args)
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

	resp, err := client.SearchWeapons(ctx, &skillsimv1alpha1.SearchWeaponsRequest{
		Criteria: &skillsimv1alpha1.WeaponCriteria{
			Name:    weaponName,
			Type:    weaponType,
			Element: weaponElement,
			Skills:  skills,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to search weapons: %w", errors.FromGRPCError(err))
	}

	fmt.Printf("Search %s (%s): %d weapons\n", resp.SearchId, resp.Mode, len(resp.Weapons))
	for _, weapon := range resp.Weapons {
		printWeapon(weapon)
	}

	return nil
}
