package entity

import "time"

const (
	MatchStatusUpcoming  = "Upcoming"
	MatchStatusLive      = "Live"
	MatchStatusCompleted = "Completed"
)

// Team is the normalized team value. Optional fields are explicit
// pointers; no runtime shape-guessing happens past the repository.
type Team struct {
	ID        int64
	Name      string
	ShortName string
	LogoURL   *string
}

type Stadium struct {
	ID       int64
	Name     string
	City     string
	Capacity int
}

// Match is produced exactly once at the data-access boundary with both
// teams and the stadium already resolved.
type Match struct {
	ID       int64
	Team1    Team
	Team2    Team
	StartsAt time.Time
	Stadium  Stadium
	Status   string
}

func ValidMatchStatus(status string) bool {
	switch status {
	case MatchStatusUpcoming, MatchStatusLive, MatchStatusCompleted:
		return true
	}
	return false
}
