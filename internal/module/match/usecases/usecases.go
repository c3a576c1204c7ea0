package usecases

import (
	"context"

	"cricket-booking/internal/module/match/models/entity"
	"cricket-booking/internal/module/match/models/response"
	"cricket-booking/internal/module/match/repositories"
	"cricket-booking/internal/pkg/errors"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo repositories.Repositories
	log  *otelzap.Logger
}

type Usecase interface {
	ListMatches(ctx context.Context, status string) ([]response.Match, error)
	GetMatch(ctx context.Context, matchID int64) (response.Match, error)
	ListTeams(ctx context.Context) ([]response.Team, error)
	ListStadiums(ctx context.Context) ([]response.Stadium, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) ListMatches(ctx context.Context, status string) ([]response.Match, error) {
	if status != "" && !entity.ValidMatchStatus(status) {
		return nil, errors.BadRequest("status must be one of Upcoming, Live, Completed")
	}

	matches, err := u.repo.FindManyMatches(ctx, status)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Match, 0, len(matches))
	for _, m := range matches {
		resp = append(resp, matchResponse(m))
	}
	return resp, nil
}

func (u *usecase) GetMatch(ctx context.Context, matchID int64) (response.Match, error) {
	match, err := u.repo.FindMatchByID(ctx, matchID)
	if err != nil {
		return response.Match{}, err
	}
	return matchResponse(match), nil
}

func (u *usecase) ListTeams(ctx context.Context) ([]response.Team, error) {
	teams, err := u.repo.FindManyTeams(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Team, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, teamResponse(t))
	}
	return resp, nil
}

func (u *usecase) ListStadiums(ctx context.Context) ([]response.Stadium, error) {
	stadiums, err := u.repo.FindManyStadiums(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Stadium, 0, len(stadiums))
	for _, s := range stadiums {
		resp = append(resp, response.Stadium{
			ID:       s.ID,
			Name:     s.Name,
			City:     s.City,
			Capacity: s.Capacity,
		})
	}
	return resp, nil
}

func teamResponse(t entity.Team) response.Team {
	return response.Team{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
		LogoURL:   t.LogoURL,
	}
}

func matchResponse(m entity.Match) response.Match {
	return response.Match{
		ID:       m.ID,
		Team1:    teamResponse(m.Team1),
		Team2:    teamResponse(m.Team2),
		StartsAt: m.StartsAt.Format("2006-01-02 15:04:05"),
		Stadium: response.Stadium{
			ID:       m.Stadium.ID,
			Name:     m.Stadium.Name,
			City:     m.Stadium.City,
			Capacity: m.Stadium.Capacity,
		},
		Status: m.Status,
	}
}
