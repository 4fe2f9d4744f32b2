package models

// Match is a fixture: scheduled or already played.
type Match struct {
	ID       int    `json:"id"`
	Result   string `json:"result"`
	Lineup   string `json:"lineup"`
	Date     Date   `json:"date" swaggertype:"string" format:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

// IsPast reports whether the match date is strictly before today.
// A match played today still counts as upcoming.
func (m Match) IsPast(today Date) bool {
	return m.Date.Before(today)
}

// MatchOption is the short form of a match used to pick one when entering stats.
type MatchOption struct {
	ID     int    `json:"id"`
	Result string `json:"result"`
	Date   Date   `json:"date" swaggertype:"string" format:"date"`
}
