package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	skillsimv1alpha1 "github.com/KirkDiggler/rpg-skill-simulator/internal/api/skillsim/v1alpha1"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
)

var (
	namesType    string
	namesElement string
)

var listWeaponNamesCmd = &cobra.Command{
	Use:   "list-weapon-names",
	Short: "List weapon names for a type or element",
	Args:  cobra.NoArgs,
	RunE:  listWeaponNames,
}

func init() {
	listWeaponNamesCmd.Flags().StringVar(&namesType, "type", "", "Weapon type")
	listWeaponNamesCmd.Flags().StringVar(&namesElement, "element", "", "Weapon element")
}

func listWeaponNames(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSimulatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListWeaponNames(ctx, &skillsimv1alpha1.ListWeaponNamesRequest{
		Type:    namesType,
		Element: namesElement,
	})
	if err != nil {
		return fmt.Errorf("failed to list weapon names: %w", errors.FromGRPCError(err))
	}

	for _, option := range resp.Options {
		if option.Furigana != "" {
			fmt.Printf("%s (%s)\n", option.Name, option.Furigana)
			continue
		}
		fmt.Println(option.Name)
	}

	return nil
}
