package booking

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateShow books s. Whether the venue and artist exist is left to the
// store's foreign keys; overlapping bookings are allowed.
func CreateShow(db *gorm.DB, s *Show) error {
	var missing []string
	if s.VenueID == 0 {
		missing = append(missing, "venue_id")
	}
	if s.ArtistID == 0 {
		missing = append(missing, "artist_id")
	}
	if s.StartTime.IsZero() {
		missing = append(missing, "start_time")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(s).Error
	})
	return translate(err, "creating show")
}

func ListShows(db *gorm.DB) ([]ShowListing, error) {
	var shows []Show
	if err := showsByStart(db).
		Preload("Venue").
		Preload("Artist").
		Find(&shows).Error; err != nil {
		return nil, translate(err, "listing shows")
	}

	out := make([]ShowListing, 0, len(shows))
	for _, s := range shows {
		row := ShowListing{
			ID:        s.ID,
			VenueID:   s.VenueID,
			ArtistID:  s.ArtistID,
			StartTime: FormatTime(s.StartTime, FormatMedium),
		}
		if s.Venue != nil {
			row.VenueName = s.Venue.Name
		}
		if s.Artist != nil {
			row.ArtistName = s.Artist.Name
			row.ArtistImageLink = s.Artist.ImageLink
		}
		out = append(out, row)
	}
	return out, nil
}
