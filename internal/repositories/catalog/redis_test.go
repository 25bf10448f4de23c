package catalog_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-skill-simulator/internal/redis"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/testutils"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/testutils/builders"
)

type RedisCatalogTestSuite struct {
	suite.Suite
	ctx    context.Context
	client redisclient.Client
	mr     *miniredis.Miniredis
	repo   catalog.Repository
}

func TestRedisCatalogSuite(t *testing.T) {
	suite.Run(t, new(RedisCatalogTestSuite))
}

func (s *RedisCatalogTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisCatalogTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *catalog.RedisConfig
		errMsg string
	}{
		{
			name:   "error with nil config",
			config: nil,
			errMsg: "config cannot be nil",
		},
		{
			name:   "error with nil client",
			config: &catalog.RedisConfig{},
			errMsg: "client cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := catalog.NewRedis(tc.config)
			s.Require().Error(err)
			s.Nil(repo)
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisCatalogTestSuite) TestEmptyCatalog() {
	output, err := s.repo.GetCatalog(s.ctx, catalog.GetCatalogInput{})
	s.Require().NoError(err)
	s.Empty(output.Armor)
	s.Empty(output.Weapons)
}

func (s *RedisCatalogTestSuite) TestRoundTrip() {
	armor := testutils.CreateFullArmor()
	weapons := testutils.CreateWeapons()

	putArmor, err := s.repo.PutArmor(s.ctx, catalog.PutArmorInput{Items: armor})
	s.Require().NoError(err)
	s.Equal(len(armor), putArmor.Stored)

	putWeapons, err := s.repo.PutWeapons(s.ctx, catalog.PutWeaponsInput{Weapons: weapons})
	s.Require().NoError(err)
	s.Equal(len(weapons), putWeapons.Stored)

	output, err := s.repo.GetCatalog(s.ctx, catalog.GetCatalogInput{})
	s.Require().NoError(err)

	s.Equal(withEmptySkills(armor), output.Armor)
	s.Equal(withEmptyWeaponSkills(weapons), output.Weapons)
}

func (s *RedisCatalogTestSuite) TestCatalogOrderFollowsIDs() {
	_, err := s.repo.PutArmor(s.ctx, catalog.PutArmorInput{Items: []*equipment.ArmorItem{
		builders.Armor(30, equipment.PartLeg, "Third"),
		builders.Armor(4, equipment.PartHead, "First"),
		builders.Armor(12, equipment.PartBody, "Second"),
	}})
	s.Require().NoError(err)

	output, err := s.repo.GetCatalog(s.ctx, catalog.GetCatalogInput{SkipWeapons: true})
	s.Require().NoError(err)
	s.Require().Len(output.Armor, 3)
	s.Equal("First", output.Armor[0].Name)
	s.Equal("Second", output.Armor[1].Name)
	s.Equal("Third", output.Armor[2].Name)
}

func (s *RedisCatalogTestSuite) TestPutReplacesFields() {
	_, err := s.repo.PutWeapons(s.ctx, catalog.PutWeaponsInput{Weapons: []*equipment.WeaponItem{
		builders.NewWeaponBuilder().WithID(1).WithName("Blade").WithAffinity(15).WithSkill(testutils.SkillAttack, 1).Build(),
	}})
	s.Require().NoError(err)

	_, err = s.repo.PutWeapons(s.ctx, catalog.PutWeaponsInput{Weapons: []*equipment.WeaponItem{
		builders.NewWeaponBuilder().WithID(1).WithName("Blade II").Build(),
	}})
	s.Require().NoError(err)

	output, err := s.repo.GetCatalog(s.ctx, catalog.GetCatalogInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Weapons, 1)
	s.Equal("Blade II", output.Weapons[0].Name)
	s.Nil(output.Weapons[0].Affinity, "fields absent from the new record are cleared")
	s.Empty(output.Weapons[0].Skills)
}

func (s *RedisCatalogTestSuite) TestStringEncodedSkillsAreNormalized() {
	s.mr.HSet(catalog.ItemKey(equipment.EntityTypeArmor, "5"),
		"id", "5", "part", "head", "name", "Legacy", "defense", "12",
		"skills", `"[{\"name\":\"攻撃\",\"level\":2}]"`)
	_, err := s.mr.ZAdd(catalog.IndexKey(equipment.EntityTypeArmor), 5, "5")
	s.Require().NoError(err)

	output, err := s.repo.GetCatalog(s.ctx, catalog.GetCatalogInput{SkipWeapons: true})
	s.Require().NoError(err)
	s.Require().Len(output.Armor, 1)
	s.Equal([]equipment.SkillLevel{{Name: testutils.SkillAttack, Level: 2}}, output.Armor[0].Skills)
}

func (s *RedisCatalogTestSuite) TestMissingItemIsSkipped() {
	_, err := s.repo.PutArmor(s.ctx, catalog.PutArmorInput{Items: testutils.CreateStarterArmor()})
	s.Require().NoError(err)
	s.mr.Del(catalog.ItemKey(equipment.EntityTypeArmor, "2"))

	output, err := s.repo.GetCatalog(s.ctx, catalog.GetCatalogInput{SkipWeapons: true})
	s.Require().NoError(err)
	s.Require().Len(output.Armor, 2)
	s.Equal("HeadA", output.Armor[0].Name)
	s.Equal("ArmA", output.Armor[1].Name)
}

func (s *RedisCatalogTestSuite) TestCorruptNumericField() {
	s.mr.HSet(catalog.ItemKey(equipment.EntityTypeArmor, "9"),
		"id", "9", "part", "arm", "name", "Broken", "defense", "lots")
	_, err := s.mr.ZAdd(catalog.IndexKey(equipment.EntityTypeArmor), 9, "9")
	s.Require().NoError(err)

	_, err = s.repo.GetCatalog(s.ctx, catalog.GetCatalogInput{})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
	s.Contains(err.Error(), "defense")
}

func (s *RedisCatalogTestSuite) TestConnectionFailure() {
	s.mr.Close()

	_, err := s.repo.GetCatalog(s.ctx, catalog.GetCatalogInput{})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *RedisCatalogTestSuite) TestSkillsRoundTrip() {
	armorSkills := testutils.CreateArmorSkills()
	weaponSkills := testutils.CreateWeaponSkills()

	put, err := s.repo.PutSkills(s.ctx, catalog.PutSkillsInput{Skills: append(armorSkills, weaponSkills...)})
	s.Require().NoError(err)
	s.Equal(len(armorSkills)+len(weaponSkills), put.Stored)

	armor, err := s.repo.ListSkills(s.ctx, catalog.ListSkillsInput{Kind: equipment.SkillKindArmor})
	s.Require().NoError(err)
	s.Equal(armorSkills, armor.Skills)

	weapon, err := s.repo.ListSkills(s.ctx, catalog.ListSkillsInput{Kind: equipment.SkillKindWeapon})
	s.Require().NoError(err)
	s.Equal(weaponSkills, weapon.Skills)

	s.True(s.mr.Exists(catalog.ItemKey(equipment.EntityTypeWeaponSkill, "2")))
}

func (s *RedisCatalogTestSuite) TestSkillsCorruptMaxLevel() {
	s.mr.HSet(catalog.ItemKey(equipment.EntityTypeSkill, "1"), "id", "1", "name", "攻撃", "maxLevel", "seven")
	_, err := s.mr.ZAdd(catalog.IndexKey(equipment.EntityTypeSkill), 1, "1")
	s.Require().NoError(err)

	_, err = s.repo.ListSkills(s.ctx, catalog.ListSkillsInput{Kind: equipment.SkillKindArmor})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
	s.Contains(err.Error(), "maxLevel")
}

func (s *RedisCatalogTestSuite) TestListSkills_UnknownKind() {
	_, err := s.repo.ListSkills(s.ctx, catalog.ListSkillsInput{Kind: "decoration"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func withEmptySkills(items []*equipment.ArmorItem) []*equipment.ArmorItem {
	for _, item := range items {
		if item.Skills == nil {
			item.Skills = []equipment.SkillLevel{}
		}
	}
	return items
}

func withEmptyWeaponSkills(weapons []*equipment.WeaponItem) []*equipment.WeaponItem {
	for _, weapon := range weapons {
		if weapon.Skills == nil {
			weapon.Skills = []equipment.SkillLevel{}
		}
	}
	return weapons
}
