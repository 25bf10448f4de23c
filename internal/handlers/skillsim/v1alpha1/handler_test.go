package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	skillsimv1alpha1 "github.com/KirkDiggler/rpg-skill-simulator/internal/api/skillsim/v1alpha1"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/handlers/skillsim/v1alpha1"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/orchestrators/search"
	searchmock "github.com/KirkDiggler/rpg-skill-simulator/internal/orchestrators/search/mock"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/testutils"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/testutils/builders"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockSearch *searchmock.MockService
	handler    *v1alpha1.Handler
	ctx        context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSearch = searchmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SearchService: s.mockSearch,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Nil(handler)

	handler, err = v1alpha1.NewHandler(nil)
	s.Require().Error(err)
	s.Nil(handler)
}

func (s *HandlerTestSuite) TestSearchArmor_Success() {
	starter := testutils.CreateStarterArmor()
	set := &search.ArmorSet{
		Items:        []*equipment.ArmorItem{starter[0], starter[1]},
		TotalDefense: 70,
		Skills:       []equipment.SkillLevel{{Name: testutils.SkillAttack, Level: 3}},
	}

	s.mockSearch.EXPECT().
		SearchArmor(s.ctx, &search.SearchArmorInput{
			Requirements: []equipment.SkillLevel{{Name: testutils.SkillAttack, Level: 3}},
			Deduplicate:  true,
			MaxSets:      30,
		}).
		Return(&search.SearchArmorOutput{
			SearchID:     "search_1",
			Requirements: []equipment.SkillLevel{{Name: testutils.SkillAttack, Level: 3}},
			Sets:         []*search.ArmorSet{set},
			TotalFound:   1,
			Elapsed:      1500 * time.Microsecond,
		}, nil)

	resp, err := s.handler.SearchArmor(s.ctx, &skillsimv1alpha1.SearchArmorRequest{
		Requirements: []*skillsimv1alpha1.SkillLevel{{Name: testutils.SkillAttack, Level: 3}},
		Deduplicate:  true,
		MaxSets:      30,
	})
	s.Require().NoError(err)

	s.Equal("search_1", resp.SearchId)
	s.Equal(int32(1), resp.TotalFound)
	s.Equal(int64(1500), resp.ElapsedMicros)
	s.Require().Len(resp.Sets, 1)
	s.Equal(int32(70), resp.Sets[0].TotalDefense)
	s.Require().Len(resp.Sets[0].Items, 2)
	s.Equal("head", resp.Sets[0].Items[0].Part)
	s.Equal("HeadA", resp.Sets[0].Items[0].Name)
	s.Equal([]int32{0, 0, 0}, resp.Sets[0].Items[0].Slots)
	s.Equal(int32(3), resp.Sets[0].Skills[0].Level)
}

func (s *HandlerTestSuite) TestSearchArmor_Validation() {
	testCases := []struct {
		name   string
		req    *skillsimv1alpha1.SearchArmorRequest
		errMsg string
	}{
		{
			name: "missing name",
			req: &skillsimv1alpha1.SearchArmorRequest{
				Requirements: []*skillsimv1alpha1.SkillLevel{{Level: 2}},
			},
			errMsg: "requirements[0].name",
		},
		{
			name: "negative level",
			req: &skillsimv1alpha1.SearchArmorRequest{
				Requirements: []*skillsimv1alpha1.SkillLevel{{Name: "攻撃", Level: -1}},
			},
			errMsg: "requirements[0].level",
		},
		{
			name: "nil entry",
			req: &skillsimv1alpha1.SearchArmorRequest{
				Requirements: []*skillsimv1alpha1.SkillLevel{nil},
			},
			errMsg: "requirements[0]",
		},
		{
			name:   "negative max sets",
			req:    &skillsimv1alpha1.SearchArmorRequest{MaxSets: -2},
			errMsg: "max_sets",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.handler.SearchArmor(s.ctx, tc.req)
			s.Require().Error(err)
			s.Nil(resp)

			st, ok := status.FromError(err)
			s.Require().True(ok)
			s.Equal(codes.InvalidArgument, st.Code())
			s.Contains(st.Message(), tc.errMsg)
		})
	}
}

func (s *HandlerTestSuite) TestSearchArmor_ServiceError() {
	s.mockSearch.EXPECT().
		SearchArmor(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("catalog unavailable"))

	_, err := s.handler.SearchArmor(s.ctx, &skillsimv1alpha1.SearchArmorRequest{
		Requirements: []*skillsimv1alpha1.SkillLevel{{Name: "攻撃", Level: 1}},
	})
	s.Require().Error(err)
	s.Equal(codes.Unavailable, status.Code(err))
}

func (s *HandlerTestSuite) TestSearchWeapons_Success() {
	weapons := testutils.CreateWeapons()

	s.mockSearch.EXPECT().
		SearchWeapons(s.ctx, &search.SearchWeaponsInput{
			Criteria: search.WeaponCriteria{
				Type:    "大剣",
				Element: "火属性",
				Skills:  []equipment.SkillLevel{{Name: testutils.SkillCritical, Level: 2}},
			},
		}).
		Return(&search.SearchWeaponsOutput{
			SearchID: "search_2",
			Mode:     search.WeaponModeFilter,
			Weapons:  weapons[:1],
		}, nil)

	resp, err := s.handler.SearchWeapons(s.ctx, &skillsimv1alpha1.SearchWeaponsRequest{
		Criteria: &skillsimv1alpha1.WeaponCriteria{
			Type:    "大剣",
			Element: "火属性",
			Skills:  []*skillsimv1alpha1.SkillLevel{{Name: testutils.SkillCritical, Level: 2}},
		},
	})
	s.Require().NoError(err)

	s.Equal("filter", resp.Mode)
	s.Require().Len(resp.Weapons, 1)
	w := resp.Weapons[0]
	s.Equal("W1", w.Name)
	s.Equal("だぶりゅーいち", w.Furigana)
	s.Require().NotNil(w.Element)
	s.Equal("火属性", *w.Element)
	s.Require().NotNil(w.ElementAtk)
	s.Equal(int32(30), *w.ElementAtk)
	s.Nil(w.Affinity)
}

func (s *HandlerTestSuite) TestSearchWeapons_NilCriteria() {
	s.mockSearch.EXPECT().
		SearchWeapons(s.ctx, &search.SearchWeaponsInput{
			Criteria: search.WeaponCriteria{Skills: []equipment.SkillLevel{}},
		}).
		Return(&search.SearchWeaponsOutput{Mode: search.WeaponModeFilter}, nil)

	resp, err := s.handler.SearchWeapons(s.ctx, &skillsimv1alpha1.SearchWeaponsRequest{})
	s.Require().NoError(err)
	s.NotNil(resp.Weapons)
	s.Empty(resp.Weapons)
}

func (s *HandlerTestSuite) TestSearch_SharesConvertedMessages() {
	armor := builders.Armor(1, equipment.PartHead, "HeadX", builders.Skill(testutils.SkillAttack, 3))
	set := &search.ArmorSet{Items: []*equipment.ArmorItem{armor}, TotalDefense: 10}
	weapons := testutils.CreateWeapons()[1:3]

	s.mockSearch.EXPECT().
		Search(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *search.SearchInput) (*search.SearchOutput, error) {
			s.Equal(30, input.MaxSets)
			s.Equal("大剣", input.Weapon.Type)
			return &search.SearchOutput{
				SearchID:    "search_3",
				ArmorSets:   []*search.ArmorSet{set},
				Weapons:     weapons,
				WeaponMode:  search.WeaponModeFilter,
				WeaponLabel: "大剣",
				Combinations: []*search.Combination{
					{Armor: set, Weapon: weapons[0], WeaponLabel: weapons[0].Name},
					{Armor: set, Weapon: weapons[1], WeaponLabel: weapons[1].Name},
				},
			}, nil
		})

	resp, err := s.handler.Search(s.ctx, &skillsimv1alpha1.SearchRequest{
		ArmorSkills: []*skillsimv1alpha1.SkillLevel{{Name: testutils.SkillAttack, Level: 3}},
		Weapon: &skillsimv1alpha1.WeaponCriteria{
			Type:   "大剣",
			Skills: []*skillsimv1alpha1.SkillLevel{{Name: testutils.SkillAttack, Level: 1}},
		},
		MaxSets: 30,
	})
	s.Require().NoError(err)

	s.Equal("filter", resp.WeaponMode)
	s.Require().Len(resp.Combinations, 2)
	s.Same(resp.ArmorSets[0], resp.Combinations[0].Armor)
	s.Same(resp.Weapons[1], resp.Combinations[1].Weapon)
	s.Equal("Buster Sword", resp.Combinations[1].WeaponLabel)
}

func (s *HandlerTestSuite) TestSearch_WithoutWeapon() {
	set := &search.ArmorSet{Items: []*equipment.ArmorItem{testutils.CreateStarterArmor()[0]}}

	s.mockSearch.EXPECT().
		Search(s.ctx, gomock.Any()).
		Return(&search.SearchOutput{
			ArmorSets:    []*search.ArmorSet{set},
			WeaponMode:   search.WeaponModeNone,
			WeaponLabel:  search.NoWeaponLabel,
			Combinations: []*search.Combination{{Armor: set, WeaponLabel: search.NoWeaponLabel}},
		}, nil)

	resp, err := s.handler.Search(s.ctx, &skillsimv1alpha1.SearchRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Combinations, 1)
	s.Nil(resp.Combinations[0].Weapon)
	s.Equal(search.NoWeaponLabel, resp.Combinations[0].WeaponLabel)
}

func (s *HandlerTestSuite) TestSearch_Validation() {
	_, err := s.handler.Search(s.ctx, &skillsimv1alpha1.SearchRequest{
		Weapon: &skillsimv1alpha1.WeaponCriteria{
			Skills: []*skillsimv1alpha1.SkillLevel{{Name: "", Level: 1}},
		},
	})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Contains(status.Convert(err).Message(), "weapon.skills[0].name")
}

func (s *HandlerTestSuite) TestListWeaponNames() {
	s.mockSearch.EXPECT().
		ListWeaponNames(s.ctx, &search.ListWeaponNamesInput{Type: "大剣"}).
		Return(&search.ListWeaponNamesOutput{
			Options: []*search.WeaponNameOption{
				{Name: "W1", Furigana: "だぶりゅーいち"},
				{Name: "Buster Sword", Furigana: "ばすたーそーど"},
			},
		}, nil)

	resp, err := s.handler.ListWeaponNames(s.ctx, &skillsimv1alpha1.ListWeaponNamesRequest{Type: "大剣"})
	s.Require().NoError(err)
	s.Require().Len(resp.Options, 2)
	s.Equal("W1", resp.Options[0].Name)
	s.Equal("ばすたーそーど", resp.Options[1].Furigana)
}

func (s *HandlerTestSuite) TestListWeaponNames_RequiresFilter() {
	_, err := s.handler.ListWeaponNames(s.ctx, &skillsimv1alpha1.ListWeaponNamesRequest{})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestListSkills() {
	s.mockSearch.EXPECT().
		ListSkills(s.ctx, &search.ListSkillsInput{
			Kind:     equipment.SkillKindArmor,
			Category: equipment.SkillCategoryAttack,
		}).
		Return(&search.ListSkillsOutput{
			Skills: []*equipment.Skill{
				{ID: 3, Kind: equipment.SkillKindArmor, Name: testutils.SkillCritical, MaxLevel: 5,
					Category: equipment.SkillCategoryAttack, Furigana: "かいしん"},
			},
		}, nil)

	resp, err := s.handler.ListSkills(s.ctx, &skillsimv1alpha1.ListSkillsRequest{Kind: "armor", Category: "攻撃系"})
	s.Require().NoError(err)
	s.Equal([]*skillsimv1alpha1.Skill{
		{Id: 3, Name: testutils.SkillCritical, MaxLevel: 5, Category: "攻撃系", Furigana: "かいしん"},
	}, resp.Skills)
}

func (s *HandlerTestSuite) TestListSkills_RequiresKind() {
	_, err := s.handler.ListSkills(s.ctx, &skillsimv1alpha1.ListSkillsRequest{})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Contains(err.Error(), "kind")
}

func (s *HandlerTestSuite) TestListSkills_ServiceError() {
	s.mockSearch.EXPECT().
		ListSkills(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgumentf("unknown category"))

	_, err := s.handler.ListSkills(s.ctx, &skillsimv1alpha1.ListSkillsRequest{Kind: "weapon", Category: "攻撃系"})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}
