// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	mockclock "github.com/KirkDiggler/rpg-skill-simulator/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/repositories/catalog"
	catalogmock "github.com/KirkDiggler/rpg-skill-simulator/internal/repositories/catalog/mock"
)

// ExpectCatalogGet sets up a mock expectation for loading the catalog
func ExpectCatalogGet(
	ctx context.Context, mockRepo *catalogmock.MockRepository,
	input catalog.GetCatalogInput, armor []*equipment.ArmorItem, weapons []*equipment.WeaponItem,
) *gomock.Call {
	return mockRepo.EXPECT().
		GetCatalog(ctx, input).
		Return(&catalog.GetCatalogOutput{Armor: armor, Weapons: weapons}, nil)
}

// ExpectCatalogGetAny sets up an expectation that matches any catalog input
func ExpectCatalogGetAny(
	mockRepo *catalogmock.MockRepository,
	armor []*equipment.ArmorItem, weapons []*equipment.WeaponItem,
) *gomock.Call {
	return mockRepo.EXPECT().
		GetCatalog(gomock.Any(), gomock.Any()).
		Return(&catalog.GetCatalogOutput{Armor: armor, Weapons: weapons}, nil)
}

// ExpectCatalogGetError sets up a mock expectation for a failing catalog load
func ExpectCatalogGetError(mockRepo *catalogmock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		GetCatalog(gomock.Any(), gomock.Any()).
		Return(nil, err)
}

// ExpectSkillsList sets up a mock expectation for listing a skill master list
func ExpectSkillsList(
	mockRepo *catalogmock.MockRepository, kind equipment.SkillKind, skills []*equipment.Skill,
) *gomock.Call {
	return mockRepo.EXPECT().
		ListSkills(gomock.Any(), catalog.ListSkillsInput{Kind: kind}).
		Return(&catalog.ListSkillsOutput{Skills: skills}, nil)
}

// ExpectElapsed makes the clock report start and then start+elapsed, the
// pair of readings taken around a timed search
func ExpectElapsed(mockClock *mockclock.MockClock, start time.Time, elapsed time.Duration) {
	gomock.InOrder(
		mockClock.EXPECT().Now().Return(start),
		mockClock.EXPECT().Now().Return(start.Add(elapsed)),
	)
}

// ExpectClockAnyTimes makes the clock return a fixed time for any number of calls
func ExpectClockAnyTimes(mockClock *mockclock.MockClock, now time.Time) {
	mockClock.EXPECT().Now().Return(now).AnyTimes()
}
