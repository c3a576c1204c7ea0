package response

type Team struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	ShortName string  `json:"short_name"`
	LogoURL   *string `json:"logo_url,omitempty"`
}

type Stadium struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

type Match struct {
	ID       int64   `json:"id"`
	Team1    Team    `json:"team1"`
	Team2    Team    `json:"team2"`
	StartsAt string  `json:"starts_at"`
	Stadium  Stadium `json:"stadium"`
	Status   string  `json:"status"`
}
