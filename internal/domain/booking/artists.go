package booking

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func ListArtists(db *gorm.DB) ([]ArtistListing, error) {
	var artists []Artist
	if err := db.Select("id", "name").Order("id ASC").Find(&artists).Error; err != nil {
		return nil, translate(err, "listing artists")
	}
	out := make([]ArtistListing, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistListing{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

func SearchArtists(db *gorm.DB, term string, now time.Time) (*ArtistSearchResult, error) {
	var artists []Artist
	if err := db.Select("id", "name").Order("id ASC").Find(&artists).Error; err != nil {
		return nil, translate(err, "searching artists")
	}

	matched := artists[:0]
	for _, a := range artists {
		if matchesName(a.Name, term) {
			matched = append(matched, a)
		}
	}

	ids := make([]uint, 0, len(matched))
	for _, a := range matched {
		ids = append(ids, a.ID)
	}
	counts, err := upcomingCounts(db, "artist_id", ids, now)
	if err != nil {
		return nil, translate(err, "counting upcoming shows")
	}

	res := &ArtistSearchResult{Count: len(matched), Data: make([]ArtistSummary, 0, len(matched))}
	for _, a := range matched {
		res.Data = append(res.Data, ArtistSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return res, nil
}

func GetArtist(db *gorm.DB, id uint) (*Artist, error) {
	var a Artist
	if err := db.First(&a, id).Error; err != nil {
		return nil, translate(err, "loading artist")
	}
	return &a, nil
}

// GetArtistDetail mirrors GetVenueDetail with venues as the counterpart.
func GetArtistDetail(db *gorm.DB, id uint, now time.Time) (*ArtistDetail, error) {
	var a Artist
	err := db.
		Preload("Shows", showsByStart).
		Preload("Shows.Venue").
		First(&a, id).Error
	if err != nil {
		return nil, translate(err, "loading artist")
	}

	d := &ArtistDetail{
		Artist:        a,
		PastShows:     []ArtistShow{},
		UpcomingShows: []ArtistShow{},
	}
	for _, s := range a.Shows {
		row := ArtistShow{
			VenueID:   s.VenueID,
			StartTime: FormatTime(s.StartTime, FormatMedium),
		}
		if s.Venue != nil {
			row.VenueName = s.Venue.Name
			row.VenueImageLink = s.Venue.ImageLink
		}
		if s.IsPast(now) {
			d.PastShows = append(d.PastShows, row)
		} else {
			d.UpcomingShows = append(d.UpcomingShows, row)
		}
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	d.Artist.Shows = nil
	return d, nil
}

func CreateArtist(db *gorm.DB, a *Artist) error {
	a.normalize()
	if err := a.validate(); err != nil {
		return err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(a).Error
	})
	return translate(err, "creating artist")
}

// UpdateArtist overwrites every mutable artist field. Artists have no address.
func UpdateArtist(db *gorm.DB, id uint, in Artist) (*Artist, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	var a Artist
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, id).Error; err != nil {
			return err
		}
		a.Name = in.Name
		a.City = in.City
		a.State = in.State
		a.Phone = in.Phone
		a.Genres = in.Genres
		a.ImageLink = in.ImageLink
		a.FacebookLink = in.FacebookLink
		a.Website = in.Website
		a.SeekingVenue = in.SeekingVenue
		a.SeekingDescription = in.SeekingDescription
		return tx.Omit(clause.Associations).Save(&a).Error
	})
	if err != nil {
		return nil, translate(err, "updating artist")
	}
	return &a, nil
}

func DeleteArtist(db *gorm.DB, id uint) (*Artist, error) {
	var a Artist
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, id).Error; err != nil {
			return err
		}
		if err := tx.Where("artist_id = ?", a.ID).Delete(&Show{}).Error; err != nil {
			return errors.Wrap(err, "deleting shows")
		}
		return tx.Delete(&a).Error
	})
	if err != nil {
		return nil, translate(err, "deleting artist")
	}
	return &a, nil
}
