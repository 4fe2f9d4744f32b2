package services

import (
	"time"

	"github.com/Dosada05/club-records/models"
)

// Clock decides what "today" is for the past/upcoming split.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func NewClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

func (c Clock) Today() models.Date {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return models.Today(now(), c.Location)
}
