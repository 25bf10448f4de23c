// Package catalog provides the armor and weapon catalog consumed by the
// combination search, together with the armor and weapon skill master
// lists. Catalogs load from the snapshot files the data pipeline produces
// or from Redis.
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-skill-simulator/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
)

// Repository defines the interface for catalog access
type Repository interface {
	// GetCatalog returns every armor item and weapon in catalog order.
	// Items are shared between callers and must be treated as read-only.
	// Returns errors.DataLoss when stored records cannot be decoded
	// Returns errors.Internal for storage failures
	GetCatalog(ctx context.Context, input GetCatalogInput) (*GetCatalogOutput, error)

	// PutArmor inserts or replaces armor items by ID
	// Returns errors.InvalidArgument for nil items, non-positive IDs or unknown parts
	PutArmor(ctx context.Context, input PutArmorInput) (*PutArmorOutput, error)

	// PutWeapons inserts or replaces weapons by ID
	// Returns errors.InvalidArgument for nil weapons or non-positive IDs
	PutWeapons(ctx context.Context, input PutWeaponsInput) (*PutWeaponsOutput, error)

	// ListSkills returns the master list of one skill kind in catalog order
	// Returns errors.InvalidArgument for an unknown kind
	// Returns errors.DataLoss when stored records cannot be decoded
	ListSkills(ctx context.Context, input ListSkillsInput) (*ListSkillsOutput, error)

	// PutSkills inserts or replaces master list entries by kind and ID
	// Returns errors.InvalidArgument for nil skills, non-positive IDs, unknown kinds or a missing name
	PutSkills(ctx context.Context, input PutSkillsInput) (*PutSkillsOutput, error)
}

// GetCatalogInput defines the input for loading the catalog
type GetCatalogInput struct {
	// SkipWeapons avoids loading weapons when only armor is searched
	SkipWeapons bool
}

// GetCatalogOutput defines the output for loading the catalog
type GetCatalogOutput struct {
	Armor   []*equipment.ArmorItem
	Weapons []*equipment.WeaponItem
}

// PutArmorInput defines the input for storing armor
type PutArmorInput struct {
	Items []*equipment.ArmorItem
}

// PutArmorOutput defines the output for storing armor
type PutArmorOutput struct {
	Stored int
}

// PutWeaponsInput defines the input for storing weapons
type PutWeaponsInput struct {
	Weapons []*equipment.WeaponItem
}

// PutWeaponsOutput defines the output for storing weapons
type PutWeaponsOutput struct {
	Stored int
}

// ListSkillsInput defines the input for listing a skill master list
type ListSkillsInput struct {
	Kind equipment.SkillKind
}

// ListSkillsOutput defines the output for listing a skill master list
type ListSkillsOutput struct {
	Skills []*equipment.Skill
}

// PutSkillsInput defines the input for storing master list entries
type PutSkillsInput struct {
	Skills []*equipment.Skill
}

// PutSkillsOutput defines the output for storing master list entries
type PutSkillsOutput struct {
	Stored int
}
