package booking

import "time"

// Show books one artist at one venue. Rows are never updated; they go away only
// when either parent is deleted.
type Show struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`

	Venue  *Venue  `json:"-"`
	Artist *Artist `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// IsPast reports whether the show started strictly before now. A show that is
// not past is upcoming; there is no third state.
func (s Show) IsPast(now time.Time) bool {
	return s.StartTime.Before(now)
}

func countUpcoming(shows []Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if !s.IsPast(now) {
			n++
		}
	}
	return n
}
