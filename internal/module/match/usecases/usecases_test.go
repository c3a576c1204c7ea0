package usecases_test

import (
	"context"
	"testing"
	"time"

	"cricket-booking/internal/module/match/mocks"
	"cricket-booking/internal/module/match/models/entity"
	"cricket-booking/internal/module/match/usecases"
	log_internal "cricket-booking/internal/pkg/log"

	"github.com/stretchr/testify/assert"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log_internal.Setup())
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestListMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		logo := "https://cdn.example/ind.png"
		matchesMock := []entity.Match{
			{
				ID:       1,
				Team1:    entity.Team{ID: 10, Name: "India", ShortName: "IND", LogoURL: &logo},
				Team2:    entity.Team{ID: 11, Name: "Australia", ShortName: "AUS"},
				StartsAt: time.Date(2026, 9, 12, 19, 30, 0, 0, time.UTC),
				Stadium:  entity.Stadium{ID: 5, Name: "Wankhede Stadium", City: "Mumbai", Capacity: 33000},
				Status:   entity.MatchStatusUpcoming,
			},
		}

		repoMock.On("FindManyMatches", ctx, "Upcoming").Return(matchesMock, nil)

		resp, err := uc.ListMatches(ctx, "Upcoming")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "India", resp[0].Team1.Name)
		assert.Equal(t, "2026-09-12 19:30:00", resp[0].StartsAt)
		assert.Equal(t, "Upcoming", resp[0].Status)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		setup()
		defer teardown()

		_, err := uc.ListMatches(ctx, "Postponed")

		assert.Error(t, err)
		repoMock.AssertNotCalled(t, "FindManyMatches", ctx, "Postponed")
	})

	t.Run("empty filter lists everything", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindManyMatches", ctx, "").Return([]entity.Match{}, nil)

		resp, err := uc.ListMatches(ctx, "")

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestGetMatch(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	matchMock := entity.Match{
		ID:       3,
		Team1:    entity.Team{ID: 12, Name: "England", ShortName: "ENG"},
		Team2:    entity.Team{ID: 13, Name: "South Africa", ShortName: "SA"},
		StartsAt: time.Date(2026, 10, 1, 14, 0, 0, 0, time.UTC),
		Stadium:  entity.Stadium{ID: 6, Name: "Eden Gardens", City: "Kolkata", Capacity: 66000},
		Status:   entity.MatchStatusUpcoming,
	}

	repoMock.On("FindMatchByID", ctx, int64(3)).Return(matchMock, nil)

	resp, err := uc.GetMatch(ctx, 3)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Nil(t, resp.Team1.LogoURL)
	assert.Equal(t, "Eden Gardens", resp.Stadium.Name)
}
