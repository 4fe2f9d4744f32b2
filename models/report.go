package models

type SummaryCounts struct {
	Total    int `json:"total"`
	Past     int `json:"past"`
	Upcoming int `json:"upcoming"`
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type MatchDetail struct {
	Match Match        `json:"match"`
	Stats []StatRecord `json:"stats"`
}

type PlayerTotals struct {
	PlayerName    string  `json:"player_name"`
	Appearances   int     `json:"appearances"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Cards         int     `json:"cards"`
	AverageRating float64 `json:"average_rating"`
}

type ClubOverview struct {
	AsOf      Date            `json:"as_of" swaggertype:"string" format:"date"`
	Summary   SummaryCounts   `json:"summary"`
	Locations []LocationCount `json:"locations"`
	Players   []PlayerTotals  `json:"players"`
}
