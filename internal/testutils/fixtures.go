package testutils

import (
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/testutils/builders"
)

// Skill names used across fixtures
const (
	SkillAttack   = "攻撃"
	SkillDefense  = "防御"
	SkillCritical = "会心"
	SkillStamina  = "体力"
)

// CreateStarterArmor returns the three-piece catalog used by the basic search
// scenarios: a head and body piece granting attack and an arm piece that does not
func CreateStarterArmor() []*equipment.ArmorItem {
	return []*equipment.ArmorItem{
		builders.NewArmorBuilder().WithID(1).WithPart(equipment.PartHead).WithName("HeadA").
			WithDefense(30).WithSkill(SkillAttack, 2).Build(),
		builders.NewArmorBuilder().WithID(2).WithPart(equipment.PartBody).WithName("BodyA").
			WithDefense(40).WithSkill(SkillAttack, 1).Build(),
		builders.NewArmorBuilder().WithID(3).WithPart(equipment.PartArm).WithName("ArmA").
			WithDefense(20).WithSkill(SkillDefense, 2).Build(),
	}
}

// CreateFullArmor returns a catalog with candidates for all five parts and
// several overlapping skills, listed out of display order
func CreateFullArmor() []*equipment.ArmorItem {
	return []*equipment.ArmorItem{
		builders.Armor(10, equipment.PartBody, "Rathalos Mail",
			builders.Skill(SkillAttack, 3), builders.Skill(SkillCritical, 1)),
		builders.Armor(11, equipment.PartHead, "Rathalos Helm",
			builders.Skill(SkillAttack, 1)),
		builders.Armor(12, equipment.PartHead, "Kulu Headpiece",
			builders.Skill(SkillCritical, 2)),
		builders.Armor(13, equipment.PartArm, "Rathalos Braces",
			builders.Skill(SkillAttack, 3)),
		builders.Armor(14, equipment.PartWaist, "Anja Coil",
			builders.Skill(SkillStamina, 2), builders.Skill(SkillCritical, 1)),
		builders.Armor(15, equipment.PartLeg, "Kulu Boots",
			builders.Skill(SkillCritical, 1), builders.Skill(SkillAttack, 1)),
		builders.Armor(16, equipment.PartLeg, "Leather Pants",
			builders.Skill(SkillDefense, 1)),
		builders.Armor(17, equipment.PartWaist, "Bone Coil",
			builders.Skill(SkillDefense, 2)),
	}
}

// CreateWeapons returns a small weapon catalog
func CreateWeapons() []*equipment.WeaponItem {
	return []*equipment.WeaponItem{
		builders.NewWeaponBuilder().WithID(1).WithName("W1", "だぶりゅーいち").
			WithType(equipment.WeaponTypeGreatSword).WithElement(equipment.ElementFire, 30).
			WithSkill(SkillCritical, 2).Build(),
		builders.NewWeaponBuilder().WithID(2).WithName("Iron Katana", "あいあんかたな").
			WithType(equipment.WeaponTypeLongSword).WithAffinity(10).
			WithSkill(SkillCritical, 1).WithSkill(SkillAttack, 2).Build(),
		builders.NewWeaponBuilder().WithID(3).WithName("Buster Sword", "ばすたーそーど").
			WithType(equipment.WeaponTypeGreatSword).WithSkill(SkillAttack, 1).Build(),
		builders.NewWeaponBuilder().WithID(4).WithName("Flame Blade", "あかいけん").
			WithType(equipment.WeaponTypeSwordAndShield).WithElement(equipment.ElementFire, 24).Build(),
	}
}

// CreateArmorSkills returns an armor skill master list, out of reading order
func CreateArmorSkills() []*equipment.Skill {
	return []*equipment.Skill{
		{ID: 1, Kind: equipment.SkillKindArmor, Name: SkillStamina, MaxLevel: 3,
			Category: equipment.SkillCategorySurvival, Furigana: "たいりょく"},
		{ID: 2, Kind: equipment.SkillKindArmor, Name: SkillAttack, MaxLevel: 7,
			Category: equipment.SkillCategoryAttack, Furigana: "こうげき"},
		{ID: 3, Kind: equipment.SkillKindArmor, Name: SkillCritical, MaxLevel: 5,
			Category: equipment.SkillCategoryAttack, Furigana: "かいしん"},
		{ID: 4, Kind: equipment.SkillKindArmor, Name: SkillDefense, MaxLevel: 7,
			Category: equipment.SkillCategorySurvival, Furigana: "ぼうぎょ"},
	}
}

// CreateWeaponSkills returns a weapon skill master list
func CreateWeaponSkills() []*equipment.Skill {
	return []*equipment.Skill{
		{ID: 1, Kind: equipment.SkillKindWeapon, Name: "業物", MaxLevel: 3, Furigana: "わざもの"},
		{ID: 2, Kind: equipment.SkillKindWeapon, Name: "匠", MaxLevel: 5, Furigana: "たくみ"},
	}
}
