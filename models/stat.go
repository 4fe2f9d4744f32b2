package models

// StatRecord is one player's contribution to one match.
// PlayerName is free text and is not checked against the player directory.
type StatRecord struct {
	ID         int     `json:"id"`
	PlayerName string  `json:"player_name"`
	Goals      int     `json:"goals"`
	Assists    int     `json:"assists"`
	Rating     float64 `json:"rating"`
	Cards      int     `json:"cards"`
	MatchID    int     `json:"match_id"`
}
