package models

type Player struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	JerseyNumber int     `json:"jersey_number"`
	Nationality  string  `json:"nationality"`
	PhotoKey     *string `json:"-"`
	PhotoURL     *string `json:"photo_url,omitempty"`
}
