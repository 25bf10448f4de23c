package v1alpha1

import (
	skillsimv1alpha1 "github.com/KirkDiggler/rpg-skill-simulator/internal/api/skillsim/v1alpha1"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/orchestrators/search"
)

func convertSkillsFromProto(skills []*skillsimv1alpha1.SkillLevel) []equipment.SkillLevel {
	converted := make([]equipment.SkillLevel, 0, len(skills))
	for _, skill := range skills {
		converted = append(converted, equipment.SkillLevel{
			Name:  skill.GetName(),
			Level: int(skill.GetLevel()),
		})
	}
	return converted
}

func convertSkillsToProto(skills []equipment.SkillLevel) []*skillsimv1alpha1.SkillLevel {
	converted := make([]*skillsimv1alpha1.SkillLevel, 0, len(skills))
	for _, skill := range skills {
		converted = append(converted, &skillsimv1alpha1.SkillLevel{
			Name:  skill.Name,
			Level: int32(skill.Level),
		})
	}
	return converted
}

func convertCriteriaFromProto(criteria *skillsimv1alpha1.WeaponCriteria) search.WeaponCriteria {
	return search.WeaponCriteria{
		Name:    criteria.GetName(),
		Type:    criteria.GetType(),
		Element: criteria.GetElement(),
		Skills:  convertSkillsFromProto(criteria.GetSkills()),
	}
}

func convertSlotsToProto(slots [equipment.SlotCount]int) []int32 {
	converted := make([]int32, 0, len(slots))
	for _, slot := range slots {
		converted = append(converted, int32(slot))
	}
	return converted
}

func convertArmorToProto(item *equipment.ArmorItem) *skillsimv1alpha1.ArmorItem {
	return &skillsimv1alpha1.ArmorItem{
		Id:      int32(item.ID),
		Part:    item.Part.String(),
		Name:    item.Name,
		Defense: int32(item.Defense),
		Slots:   convertSlotsToProto(item.Slots),
		Series:  item.Series,
		Group:   item.Group,
		Skills:  convertSkillsToProto(item.Skills),
	}
}

func convertArmorSetToProto(set *search.ArmorSet) *skillsimv1alpha1.ArmorSet {
	items := make([]*skillsimv1alpha1.ArmorItem, 0, len(set.Items))
	for _, item := range set.Items {
		items = append(items, convertArmorToProto(item))
	}
	return &skillsimv1alpha1.ArmorSet{
		Items:        items,
		TotalDefense: int32(set.TotalDefense),
		Skills:       convertSkillsToProto(set.Skills),
	}
}

func convertArmorSetsToProto(sets []*search.ArmorSet) []*skillsimv1alpha1.ArmorSet {
	converted := make([]*skillsimv1alpha1.ArmorSet, 0, len(sets))
	for _, set := range sets {
		converted = append(converted, convertArmorSetToProto(set))
	}
	return converted
}

func convertWeaponToProto(weapon *equipment.WeaponItem) *skillsimv1alpha1.Weapon {
	converted := &skillsimv1alpha1.Weapon{
		Id:       int32(weapon.ID),
		Name:     weapon.Name,
		Furigana: weapon.Furigana,
		Type:     weapon.Type.String(),
		Attack:   int32(weapon.Attack),
		Slots:    convertSlotsToProto(weapon.Slots),
		Skills:   convertSkillsToProto(weapon.Skills),
	}
	if weapon.Affinity != nil {
		affinity := int32(*weapon.Affinity)
		converted.Affinity = &affinity
	}
	if weapon.Element != nil {
		element := weapon.Element.String()
		converted.Element = &element
	}
	if weapon.ElementAtk != nil {
		elementAtk := int32(*weapon.ElementAtk)
		converted.ElementAtk = &elementAtk
	}
	return converted
}

func convertWeaponsToProto(weapons []*equipment.WeaponItem) []*skillsimv1alpha1.Weapon {
	converted := make([]*skillsimv1alpha1.Weapon, 0, len(weapons))
	for _, weapon := range weapons {
		converted = append(converted, convertWeaponToProto(weapon))
	}
	return converted
}

// convertSearchOutputToProto converts every armor set and weapon once so
// combinations share the converted messages
func convertSearchOutputToProto(output *search.SearchOutput) *skillsimv1alpha1.SearchResponse {
	armorSets := make(map[*search.ArmorSet]*skillsimv1alpha1.ArmorSet, len(output.ArmorSets))
	resp := &skillsimv1alpha1.SearchResponse{
		SearchId:      output.SearchID,
		ArmorSets:     make([]*skillsimv1alpha1.ArmorSet, 0, len(output.ArmorSets)),
		Weapons:       make([]*skillsimv1alpha1.Weapon, 0, len(output.Weapons)),
		WeaponMode:    string(output.WeaponMode),
		WeaponLabel:   output.WeaponLabel,
		Combinations:  make([]*skillsimv1alpha1.Combination, 0, len(output.Combinations)),
		ElapsedMicros: output.Elapsed.Microseconds(),
	}
	for _, set := range output.ArmorSets {
		converted := convertArmorSetToProto(set)
		armorSets[set] = converted
		resp.ArmorSets = append(resp.ArmorSets, converted)
	}

	weapons := make(map[*equipment.WeaponItem]*skillsimv1alpha1.Weapon, len(output.Weapons))
	for _, weapon := range output.Weapons {
		converted := convertWeaponToProto(weapon)
		weapons[weapon] = converted
		resp.Weapons = append(resp.Weapons, converted)
	}

	for _, combination := range output.Combinations {
		converted := &skillsimv1alpha1.Combination{
			Armor:       armorSets[combination.Armor],
			WeaponLabel: combination.WeaponLabel,
		}
		if converted.Armor == nil {
			converted.Armor = convertArmorSetToProto(combination.Armor)
		}
		if combination.Weapon != nil {
			converted.Weapon = weapons[combination.Weapon]
			if converted.Weapon == nil {
				converted.Weapon = convertWeaponToProto(combination.Weapon)
			}
		}
		resp.Combinations = append(resp.Combinations, converted)
	}

	return resp
}

func convertSkillListToProto(skills []*equipment.Skill) []*skillsimv1alpha1.Skill {
	converted := make([]*skillsimv1alpha1.Skill, 0, len(skills))
	for _, skill := range skills {
		converted = append(converted, &skillsimv1alpha1.Skill{
			Id:       int32(skill.ID),
			Name:     skill.Name,
			MaxLevel: int32(skill.MaxLevel),
			Category: skill.Category.String(),
			Furigana: skill.Furigana,
		})
	}
	return converted
}
