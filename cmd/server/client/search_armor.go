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
	armorDedupe  bool
	armorMaxSets int32
)

var searchArmorCmd = &cobra.Command{
	Use:   "search-armor [skill:level...]",
	Short: "Search armor sets that reach the requested skill levels",
	Long: `Search the armor catalog. Examples:

  search-armor 攻撃:3
  search-armor 攻撃:3 防御:2 --dedupe`,
	Args: cobra.MinimumNArgs(1),
	RunE: searchArmor,
}

func init() {
	searchArmorCmd.Flags().BoolVar(&armorDedupe, "dedupe", false, "Drop repeated sets")
	searchArmorCmd.Flags().Int32Var(&armorMaxSets, "max-sets", 30, "Maximum sets to print, 0 for all")
}

func searchArmor(cmd *cobra.Command, args []string) error {
	reqs, err := parseSkillArgs(args)
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

	resp, err := client.SearchArmor(ctx, &skillsimv1alpha1.SearchArmorRequest{
		Requirements: reqs,
		Deduplicate:  armorDedupe,
		MaxSets:      armorMaxSets,
	})
	if err != nil {
		return fmt.Errorf("failed to search armor: %w", errors.FromGRPCError(err))
	}

	fmt.Printf("Search %s: %d sets for %s (%s)\n",
		resp.SearchId, resp.TotalFound, formatSkills(resp.Requirements),
		time.Duration(resp.ElapsedMicros)*time.Microsecond)
	for i, set := range resp.Sets {
		printArmorSet(i, set)
	}

	return nil
}
