package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cricket-booking/internal/module/match/models/entity"
	"cricket-booking/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

type Repositories interface {
	FindManyMatches(ctx context.Context, status string) ([]entity.Match, error)
	FindMatchByID(ctx context.Context, matchID int64) (entity.Match, error)
	FindManyTeams(ctx context.Context) ([]entity.Team, error)
	FindManyStadiums(ctx context.Context) ([]entity.Stadium, error)
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// matchRow is the raw join row. Normalization into entity.Match happens
// here and nowhere else.
type matchRow struct {
	ID              int64          `db:"id"`
	StartsAt        time.Time      `db:"starts_at"`
	Status          sql.NullString `db:"status"`
	Team1ID         int64          `db:"team1_id"`
	Team1Name       string         `db:"team1_name"`
	Team1ShortName  sql.NullString `db:"team1_short_name"`
	Team1LogoURL    sql.NullString `db:"team1_logo_url"`
	Team2ID         int64          `db:"team2_id"`
	Team2Name       string         `db:"team2_name"`
	Team2ShortName  sql.NullString `db:"team2_short_name"`
	Team2LogoURL    sql.NullString `db:"team2_logo_url"`
	StadiumID       int64          `db:"stadium_id"`
	StadiumName     string         `db:"stadium_name"`
	StadiumCity     sql.NullString `db:"stadium_city"`
	StadiumCapacity int            `db:"stadium_capacity"`
}

func (row matchRow) normalize() entity.Match {
	m := entity.Match{
		ID:       row.ID,
		StartsAt: row.StartsAt,
		Team1: entity.Team{
			ID:        row.Team1ID,
			Name:      row.Team1Name,
			ShortName: row.Team1ShortName.String,
		},
		Team2: entity.Team{
			ID:        row.Team2ID,
			Name:      row.Team2Name,
			ShortName: row.Team2ShortName.String,
		},
		Stadium: entity.Stadium{
			ID:       row.StadiumID,
			Name:     row.StadiumName,
			City:     row.StadiumCity.String,
			Capacity: row.StadiumCapacity,
		},
	}

	if row.Team1LogoURL.Valid {
		m.Team1.LogoURL = &row.Team1LogoURL.String
	}
	if row.Team2LogoURL.Valid {
		m.Team2.LogoURL = &row.Team2LogoURL.String
	}

	// a missing or unknown status is derived from the start time rather
	// than guessed per call site
	if row.Status.Valid && entity.ValidMatchStatus(row.Status.String) {
		m.Status = row.Status.String
	} else if row.StartsAt.After(time.Now()) {
		m.Status = entity.MatchStatusUpcoming
	} else {
		m.Status = entity.MatchStatusCompleted
	}

	return m
}

const matchSelect = `
	SELECT
		m.id, m.starts_at, m.status,
		t1.id AS team1_id, t1.name AS team1_name, t1.short_name AS team1_short_name, t1.logo_url AS team1_logo_url,
		t2.id AS team2_id, t2.name AS team2_name, t2.short_name AS team2_short_name, t2.logo_url AS team2_logo_url,
		s.id AS stadium_id, s.name AS stadium_name, s.city AS stadium_city, s.capacity AS stadium_capacity
	FROM match m
	JOIN team t1 ON t1.id = m.team1_id
	JOIN team t2 ON t2.id = m.team2_id
	JOIN stadium s ON s.id = m.stadium_id
`

// FindManyMatches implements Repositories. An empty status returns all
// matches ordered by start time.
func (r *repositories) FindManyMatches(ctx context.Context, status string) ([]entity.Match, error) {
	query := matchSelect + ` ORDER BY m.starts_at ASC`
	args := []interface{}{}
	if status != "" {
		query = matchSelect + ` WHERE m.status = $1 ORDER BY m.starts_at ASC`
		args = append(args, status)
	}

	var rows []matchRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find many matches: %v", err))
		return nil, errors.InternalServerError("error find many matches")
	}

	matches := make([]entity.Match, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, row.normalize())
	}
	return matches, nil
}

// FindMatchByID implements Repositories.
func (r *repositories) FindMatchByID(ctx context.Context, matchID int64) (entity.Match, error) {
	query := matchSelect + ` WHERE m.id = $1`

	var row matchRow
	err := r.db.GetContext(ctx, &row, query, matchID)
	if err == sql.ErrNoRows {
		return entity.Match{}, errors.NotFound("match not found")
	}
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find match by id: %v", err))
		return entity.Match{}, errors.InternalServerError("error find match by id")
	}

	return row.normalize(), nil
}

type teamRow struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	ShortName sql.NullString `db:"short_name"`
	LogoURL   sql.NullString `db:"logo_url"`
}

// FindManyTeams implements Repositories.
func (r *repositories) FindManyTeams(ctx context.Context) ([]entity.Team, error) {
	query := `SELECT id, name, short_name, logo_url FROM team ORDER BY name ASC`

	var rows []teamRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find many teams: %v", err))
		return nil, errors.InternalServerError("error find many teams")
	}

	teams := make([]entity.Team, 0, len(rows))
	for _, row := range rows {
		team := entity.Team{
			ID:        row.ID,
			Name:      row.Name,
			ShortName: row.ShortName.String,
		}
		if row.LogoURL.Valid {
			team.LogoURL = &row.LogoURL.String
		}
		teams = append(teams, team)
	}
	return teams, nil
}

type stadiumRow struct {
	ID       int64          `db:"id"`
	Name     string         `db:"name"`
	City     sql.NullString `db:"city"`
	Capacity int            `db:"capacity"`
}

// FindManyStadiums implements Repositories.
func (r *repositories) FindManyStadiums(ctx context.Context) ([]entity.Stadium, error) {
	query := `SELECT id, name, city, capacity FROM stadium ORDER BY name ASC`

	var rows []stadiumRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error find many stadiums: %v", err))
		return nil, errors.InternalServerError("error find many stadiums")
	}

	stadiums := make([]entity.Stadium, 0, len(rows))
	for _, row := range rows {
		stadiums = append(stadiums, entity.Stadium{
			ID:       row.ID,
			Name:     row.Name,
			City:     row.City.String,
			Capacity: row.Capacity,
		})
	}
	return stadiums, nil
}
