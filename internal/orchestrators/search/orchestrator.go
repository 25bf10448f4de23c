// Package search implements the search orchestrator: it loads the catalog,
// runs the combination engine and prepares results for display
package search

//go:generate mockgen -destination=mock/mock_service.go -package=searchmock github.com/KirkDiggler/rpg-skill-simulator/internal/orchestrators/search Service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/engine"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/repositories/catalog"
)

// Service defines the interface for search operations
type Service interface {
	// SearchArmor finds armor combinations meeting the skill requirements
	SearchArmor(ctx context.Context, input *SearchArmorInput) (*SearchArmorOutput, error)

	// SearchWeapons lists weapons by name, or by type, element and skills
	SearchWeapons(ctx context.Context, input *SearchWeaponsInput) (*SearchWeaponsOutput, error)

	// Search runs the armor and weapon searches together and pairs the results
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// ListWeaponNames lists weapon names for a type and/or element
	ListWeaponNames(ctx context.Context, input *ListWeaponNamesInput) (*ListWeaponNamesOutput, error)

	// ListSkills lists the armor or weapon skills a search can require
	ListSkills(ctx context.Context, input *ListSkillsInput) (*ListSkillsOutput, error)
}

// Config holds the dependencies for the search orchestrator
type Config struct {
	CatalogRepo catalog.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo catalog.Repository
	idGen       idgen.Generator
	clock       clock.Clock
}

// NewOrchestrator creates a new search orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		catalogRepo: cfg.CatalogRepo,
		idGen:       cfg.IDGenerator,
		clock:       c,
	}, nil
}

func (o *orchestrator) SearchArmor(ctx context.Context, input *SearchArmorInput) (*SearchArmorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMaxSets(input.MaxSets); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err)
	}

	searchID := o.idGen.Generate()
	start := o.clock.Now()
	reqs := SanitizeRequirements(input.Requirements)

	output := &SearchArmorOutput{
		SearchID:     searchID,
		Requirements: engine.SortRequirements(reqs),
		Sets:         []*ArmorSet{},
	}

	if len(reqs) > 0 {
		cat, err := o.catalogRepo.GetCatalog(ctx, catalog.GetCatalogInput{SkipWeapons: true})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load catalog")
		}

		combos := searchArmor(cat.Armor, reqs, input.Deduplicate)
		output.TotalFound = len(combos)
		output.Sets = toArmorSets(capSets(combos, input.MaxSets))
	}

	output.Elapsed = clock.Since(o.clock, start)

	slog.InfoContext(ctx, "armor search complete",
		"search_id", searchID,
		"requirements", len(reqs),
		"found", output.TotalFound,
		"returned", len(output.Sets),
		"deduplicate", input.Deduplicate,
		"elapsed", output.Elapsed)

	return output, nil
}

func (o *orchestrator) SearchWeapons(ctx context.Context, input *SearchWeaponsInput) (*SearchWeaponsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCriteria(input.Criteria); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err)
	}

	searchID := o.idGen.Generate()
	start := o.clock.Now()

	cat, err := o.catalogRepo.GetCatalog(ctx, catalog.GetCatalogInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	criteria := sanitizeCriteria(input.Criteria)
	mode := WeaponModeFilter
	if criteria.Name != "" {
		mode = WeaponModeName
	}

	output := &SearchWeaponsOutput{
		SearchID: searchID,
		Mode:     mode,
		Weapons:  selectWeapons(cat.Weapons, criteria, mode),
	}
	output.Elapsed = clock.Since(o.clock, start)

	slog.InfoContext(ctx, "weapon search complete",
		"search_id", searchID,
		"mode", string(mode),
		"found", len(output.Weapons),
		"elapsed", output.Elapsed)

	return output, nil
}

func (o *orchestrator) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMaxSets(input.MaxSets); err != nil {
		return nil, err
	}
	if err := validateCriteria(input.Weapon); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err)
	}

	searchID := o.idGen.Generate()
	start := o.clock.Now()
	reqs := SanitizeRequirements(input.ArmorSkills)
	criteria := sanitizeCriteria(input.Weapon)
	mode := combinedWeaponMode(criteria)

	output := &SearchOutput{
		SearchID:     searchID,
		ArmorSets:    []*ArmorSet{},
		Weapons:      []*equipment.WeaponItem{},
		WeaponMode:   mode,
		WeaponLabel:  WeaponLabel(criteria),
		Combinations: []*Combination{},
	}

	if len(reqs) > 0 || mode == WeaponModeName || mode == WeaponModeFilter {
		cat, err := o.catalogRepo.GetCatalog(ctx, catalog.GetCatalogInput{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load catalog")
		}

		var combos [][]*equipment.ArmorItem
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			combos = searchArmor(cat.Armor, reqs, input.Deduplicate)
			return gctx.Err()
		})
		g.Go(func() error {
			output.Weapons = selectWeapons(cat.Weapons, criteria, mode)
			return gctx.Err()
		})
		if err := g.Wait(); err != nil {
			return nil, errors.FromContext(err)
		}

		output.ArmorSets = toArmorSets(combos)
		output.Combinations = pairCombinations(output.ArmorSets, output.Weapons, output.WeaponLabel, input.MaxSets)
	}

	output.Elapsed = clock.Since(o.clock, start)

	slog.InfoContext(ctx, "combined search complete",
		"search_id", searchID,
		"requirements", len(reqs),
		"armor_sets", len(output.ArmorSets),
		"weapon_mode", string(mode),
		"weapons", len(output.Weapons),
		"combinations", len(output.Combinations),
		"elapsed", output.Elapsed)

	return output, nil
}

func (o *orchestrator) ListWeaponNames(ctx context.Context, input *ListWeaponNamesInput) (*ListWeaponNamesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Type == "" && input.Element == "" {
		vb.Field("type", "type or element is required")
	}
	validateTypeAndElement(input.Type, input.Element, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	cat, err := o.catalogRepo.GetCatalog(ctx, catalog.GetCatalogInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	matched := engine.FilterWeapons(cat.Weapons, engine.WeaponQuery{
		Type:    input.Type,
		Element: input.Element,
	})

	slog.DebugContext(ctx, "listed weapon names",
		"type", input.Type,
		"element", input.Element,
		"count", len(matched))

	return &ListWeaponNamesOutput{Options: weaponNameOptions(matched)}, nil
}

func (o *orchestrator) ListSkills(ctx context.Context, input *ListSkillsInput) (*ListSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if !input.Kind.IsValid() {
		vb.InvalidField("kind", "must be armor or weapon")
	}
	if input.Category != "" {
		if !input.Category.IsValid() {
			vb.InvalidField("category", "unknown category")
		} else if input.Kind == equipment.SkillKindWeapon {
			vb.InvalidField("category", "weapon skills have no category")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	listed, err := o.catalogRepo.ListSkills(ctx, catalog.ListSkillsInput{Kind: input.Kind})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load skills")
	}

	skills := make([]*equipment.Skill, 0, len(listed.Skills))
	for _, skill := range listed.Skills {
		if input.Category == "" || skill.Category == input.Category {
			skills = append(skills, skill)
		}
	}

	slog.DebugContext(ctx, "listed skills",
		"kind", input.Kind.String(),
		"category", input.Category.String(),
		"count", len(skills))

	return &ListSkillsOutput{Skills: sortSkills(skills)}, nil
}

func searchArmor(items []*equipment.ArmorItem, reqs []equipment.SkillLevel, deduplicate bool) [][]*equipment.ArmorItem {
	combos := engine.SearchArmor(items, reqs)
	if deduplicate {
		combos = engine.UniqueCombinations(combos)
	}
	return combos
}

// selectWeapons applies the weapon mode to the catalog
func selectWeapons(weapons []*equipment.WeaponItem, criteria WeaponCriteria, mode WeaponMode) []*equipment.WeaponItem {
	switch mode {
	case WeaponModeName:
		return engine.FilterWeaponsByName(weapons, criteria.Name)
	case WeaponModeFilter:
		return engine.FilterWeapons(weapons, engine.WeaponQuery{
			Type:    criteria.Type,
			Element: criteria.Element,
			Skills:  criteria.Skills,
		})
	default:
		return []*equipment.WeaponItem{}
	}
}

// combinedWeaponMode picks the weapon mode of a combined search. Type and
// element alone only label the weapon slot.
func combinedWeaponMode(criteria WeaponCriteria) WeaponMode {
	switch {
	case criteria.Name != "":
		return WeaponModeName
	case len(criteria.Skills) > 0:
		return WeaponModeFilter
	case criteria.Type != "" || criteria.Element != "":
		return WeaponModeLabelOnly
	default:
		return WeaponModeNone
	}
}
