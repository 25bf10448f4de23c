package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/redis"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/repositories/catalog"
)

var (
	importRedisAddr           string
	importArmorSnapshot       string
	importWeaponSnapshot      string
	importSkillSnapshot       string
	importWeaponSkillSnapshot string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the equipment catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import snapshot files into Redis",
	Long:  `Load armor, weapon and skill master snapshots and store every entry in the Redis catalog. Existing items with the same id are replaced.`,
	RunE:  runCatalogImport,
}

func init() {
	catalogImportCmd.Flags().StringVar(&importRedisAddr, "redis-addr", "localhost:6379", "Redis address")
	catalogImportCmd.Flags().StringVar(&importArmorSnapshot, "armor-snapshot", "data/armor.json", "Armor snapshot file")
	catalogImportCmd.Flags().StringVar(&importWeaponSnapshot, "weapon-snapshot", "data/weapons.json", "Weapon snapshot file, empty for none")
	catalogImportCmd.Flags().StringVar(&importSkillSnapshot, "skill-snapshot", "", "Armor skill master file, empty for none")
	catalogImportCmd.Flags().StringVar(&importWeaponSkillSnapshot, "weapon-skill-snapshot", "", "Weapon skill master file, empty for none")

	catalogCmd.AddCommand(catalogImportCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	client, err := redis.NewClient(importRedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if err := redis.Ping(cmd.Context(), client); err != nil {
		return err
	}

	dest, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create redis catalog: %w", err)
	}

	stored, err := importSnapshots(cmd.Context(), catalog.SnapshotFiles{
		Armor:        importArmorSnapshot,
		Weapons:      importWeaponSnapshot,
		Skills:       importSkillSnapshot,
		WeaponSkills: importWeaponSkillSnapshot,
	}, dest)
	if err != nil {
		return err
	}

	log.Printf("Imported %d armor pieces, %d weapons and %d skills into %s",
		stored.armor, stored.weapons, stored.skills, importRedisAddr)
	return nil
}

type importCounts struct {
	armor   int
	weapons int
	skills  int
}

// importSnapshots copies every item from the snapshot files into dest
func importSnapshots(ctx context.Context, files catalog.SnapshotFiles, dest catalog.Repository) (*importCounts, error) {
	source, err := catalog.LoadSnapshotFiles(files)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	snapshot, err := source.GetCatalog(ctx, catalog.GetCatalogInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog snapshot: %w", err)
	}

	armorOut, err := dest.PutArmor(ctx, catalog.PutArmorInput{Items: snapshot.Armor})
	if err != nil {
		return nil, fmt.Errorf("failed to store armor: %w", err)
	}

	weaponOut, err := dest.PutWeapons(ctx, catalog.PutWeaponsInput{Weapons: snapshot.Weapons})
	if err != nil {
		return nil, fmt.Errorf("failed to store weapons: %w", err)
	}

	counts := &importCounts{armor: armorOut.Stored, weapons: weaponOut.Stored}
	for _, kind := range []equipment.SkillKind{equipment.SkillKindArmor, equipment.SkillKindWeapon} {
		listed, err := source.ListSkills(ctx, catalog.ListSkillsInput{Kind: kind})
		if err != nil {
			return nil, fmt.Errorf("failed to read %s skills: %w", kind, err)
		}
		skillOut, err := dest.PutSkills(ctx, catalog.PutSkillsInput{Skills: listed.Skills})
		if err != nil {
			return nil, fmt.Errorf("failed to store %s skills: %w", kind, err)
		}
		counts.skills += skillOut.Stored
	}

	return counts, nil
}
