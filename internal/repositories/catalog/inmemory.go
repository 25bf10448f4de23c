package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
)

// InMemoryRepository implements Repository over a catalog held in memory.
// Catalog order is insertion order; replacing an item keeps its position.
type InMemoryRepository struct {
	mu      sync.RWMutex
	armor   []*equipment.ArmorItem
	weapons []*equipment.WeaponItem
	skills  map[equipment.SkillKind][]*equipment.Skill
}

// NewInMemory creates a repository seeded with the given items
func NewInMemory(armor []*equipment.ArmorItem, weapons []*equipment.WeaponItem) (*InMemoryRepository, error) {
	r := &InMemoryRepository{
		skills: make(map[equipment.SkillKind][]*equipment.Skill),
	}

	if _, err := r.PutArmor(context.Background(), PutArmorInput{Items: armor}); err != nil {
		return nil, err
	}
	if _, err := r.PutWeapons(context.Background(), PutWeaponsInput{Weapons: weapons}); err != nil {
		return nil, err
	}

	return r, nil
}

// GetCatalog returns the current catalog
func (r *InMemoryRepository) GetCatalog(ctx context.Context, input GetCatalogInput) (*GetCatalogOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	output := &GetCatalogOutput{
		Armor: slices.Clone(r.armor),
	}
	if !input.SkipWeapons {
		output.Weapons = slices.Clone(r.weapons)
	}

	return output, nil
}

// PutArmor stores copies of the given armor items
func (r *InMemoryRepository) PutArmor(ctx context.Context, input PutArmorInput) (*PutArmorOutput, error) {
	if err := validateArmor(input.Items); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range input.Items {
		r.armor = upsert(r.armor, item.Clone(), func(a *equipment.ArmorItem) int { return a.ID })
	}

	return &PutArmorOutput{Stored: len(input.Items)}, nil
}

// PutWeapons stores copies of the given weapons
func (r *InMemoryRepository) PutWeapons(ctx context.Context, input PutWeaponsInput) (*PutWeaponsOutput, error) {
	if err := validateWeapons(input.Weapons); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, weapon := range input.Weapons {
		r.weapons = upsert(r.weapons, weapon.Clone(), func(w *equipment.WeaponItem) int { return w.ID })
	}

	return &PutWeaponsOutput{Stored: len(input.Weapons)}, nil
}

// ListSkills returns the master list of the requested kind
func (r *InMemoryRepository) ListSkills(ctx context.Context, input ListSkillsInput) (*ListSkillsOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	skills := make([]*equipment.Skill, 0, len(r.skills[input.Kind]))
	for _, skill := range r.skills[input.Kind] {
		skills = append(skills, skill.Clone())
	}

	return &ListSkillsOutput{Skills: skills}, nil
}

// PutSkills stores copies of the given master list entries
func (r *InMemoryRepository) PutSkills(ctx context.Context, input PutSkillsInput) (*PutSkillsOutput, error) {
	if err := validateSkills(input.Skills); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, skill := range input.Skills {
		r.skills[skill.Kind] = upsert(r.skills[skill.Kind], skill.Clone(), func(s *equipment.Skill) int { return s.ID })
	}

	return &PutSkillsOutput{Stored: len(input.Skills)}, nil
}

func upsert[T any](items []T, item T, id func(T) int) []T {
	if i := slices.IndexFunc(items, func(existing T) bool { return id(existing) == id(item) }); i >= 0 {
		items[i] = item
		return items
	}
	return append(items, item)
}
