// Package v1alpha1 handles the SimulatorService grpc interface
package v1alpha1

import (
	"context"

	skillsimv1alpha1 "github.com/KirkDiggler/rpg-skill-simulator/internal/api/skillsim/v1alpha1"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/orchestrators/search"
)

// HandlerConfig holds dependencies for the simulator handler
type HandlerConfig struct {
	SearchService search.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.SearchService == nil {
		return errors.InvalidArgument("search service is required")
	}
	return nil
}

// Handler implements the SimulatorService gRPC service
type Handler struct {
	skillsimv1alpha1.UnimplementedSimulatorServiceServer
	searchService search.Service
}

// NewHandler creates a new simulator handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		searchService: cfg.SearchService,
	}, nil
}

// SearchArmor finds armor combinations meeting the requested skills
func (h *Handler) SearchArmor(
	ctx context.Context,
	req *skillsimv1alpha1.SearchArmorRequest,
) (*skillsimv1alpha1.SearchArmorResponse, error) {
	vb := errors.NewValidationBuilder()
	validateSkills("requirements", req.Requirements, vb)
	validateMaxSets(req.MaxSets, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.searchService.SearchArmor(ctx, &search.SearchArmorInput{
		Requirements: convertSkillsFromProto(req.Requirements),
		Deduplicate:  req.Deduplicate,
		MaxSets:      int(req.MaxSets),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skillsimv1alpha1.SearchArmorResponse{
		SearchId:      output.SearchID,
		Requirements:  convertSkillsToProto(output.Requirements),
		Sets:          convertArmorSetsToProto(output.Sets),
		TotalFound:    int32(output.TotalFound),
		ElapsedMicros: output.Elapsed.Microseconds(),
	}, nil
}

// SearchWeapons lists weapons matching the criteria
func (h *Handler) SearchWeapons(
	ctx context.Context,
	req *skillsimv1alpha1.SearchWeaponsRequest,
) (*skillsimv1alpha1.SearchWeaponsResponse, error) {
	vb := errors.NewValidationBuilder()
	validateSkills("criteria.skills", req.Criteria.GetSkills(), vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.searchService.SearchWeapons(ctx, &search.SearchWeaponsInput{
		Criteria: convertCriteriaFromProto(req.Criteria),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skillsimv1alpha1.SearchWeaponsResponse{
		SearchId:      output.SearchID,
		Mode:          string(output.Mode),
		Weapons:       convertWeaponsToProto(output.Weapons),
		ElapsedMicros: output.Elapsed.Microseconds(),
	}, nil
}

// Search finds armor combinations and pairs them with weapon candidates
func (h *Handler) Search(
	ctx context.Context,
	req *skillsimv1alpha1.SearchRequest,
) (*skillsimv1alpha1.SearchResponse, error) {
	vb := errors.NewValidationBuilder()
	validateSkills("armor_skills", req.ArmorSkills, vb)
	validateSkills("weapon.skills", req.Weapon.GetSkills(), vb)
	validateMaxSets(req.MaxSets, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.searchService.Search(ctx, &search.SearchInput{
		ArmorSkills: convertSkillsFromProto(req.ArmorSkills),
		Weapon:      convertCriteriaFromProto(req.Weapon),
		Deduplicate: req.Deduplicate,
		MaxSets:     int(req.MaxSets),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return convertSearchOutputToProto(output), nil
}

// ListWeaponNames lists weapon names for a type and/or element
func (h *Handler) ListWeaponNames(
	ctx context.Context,
	req *skillsimv1alpha1.ListWeaponNamesRequest,
) (*skillsimv1alpha1.ListWeaponNamesResponse, error) {
	if req.Type == "" && req.Element == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("type or element is required"))
	}

	output, err := h.searchService.ListWeaponNames(ctx, &search.ListWeaponNamesInput{
		Type:    req.Type,
		Element: req.Element,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	options := make([]*skillsimv1alpha1.WeaponNameOption, 0, len(output.Options))
	for _, option := range output.Options {
		options = append(options, &skillsimv1alpha1.WeaponNameOption{
			Name:     option.Name,
			Furigana: option.Furigana,
		})
	}

	return &skillsimv1alpha1.ListWeaponNamesResponse{Options: options}, nil
}

// ListSkills lists the armor or weapon skills a search can require
func (h *Handler) ListSkills(
	ctx context.Context,
	req *skillsimv1alpha1.ListSkillsRequest,
) (*skillsimv1alpha1.ListSkillsResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("kind", req.Kind, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.searchService.ListSkills(ctx, &search.ListSkillsInput{
		Kind:     equipment.SkillKind(req.Kind),
		Category: equipment.SkillCategory(req.Category),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &skillsimv1alpha1.ListSkillsResponse{Skills: convertSkillListToProto(output.Skills)}, nil
}

func validateSkills(field string, skills []*skillsimv1alpha1.SkillLevel, vb *errors.ValidationBuilder) {
	for i, skill := range skills {
		if skill == nil {
			vb.RequiredField(errors.FieldPath(field, i, ""))
			continue
		}
		errors.ValidateRequired(errors.FieldPath(field, i, "name"), skill.Name, vb)
		if skill.Level < 0 {
			vb.Field(errors.FieldPath(field, i, "level"), "must not be negative")
		}
	}
}

func validateMaxSets(maxSets int32, vb *errors.ValidationBuilder) {
	if maxSets < 0 {
		vb.Field("max_sets", "must not be negative")
	}
}
