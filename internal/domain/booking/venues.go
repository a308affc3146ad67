package booking

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListVenueAreas groups every venue by (city, state). Groups and members come
// out in id order of first appearance; callers must not depend on it.
func ListVenueAreas(db *gorm.DB, now time.Time) ([]Area, error) {
	var venues []Venue
	if err := db.Select("id", "name", "city", "state").Order("id ASC").Find(&venues).Error; err != nil {
		return nil, translate(err, "listing venues")
	}

	counts, err := upcomingCounts(db, "venue_id", venueIDs(venues), now)
	if err != nil {
		return nil, translate(err, "counting upcoming shows")
	}

	areas := []Area{}
	index := map[[2]string]int{}
	for _, v := range venues {
		key := [2]string{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return areas, nil
}

func SearchVenues(db *gorm.DB, term string, now time.Time) (*VenueSearchResult, error) {
	var venues []Venue
	if err := db.Select("id", "name").Order("id ASC").Find(&venues).Error; err != nil {
		return nil, translate(err, "searching venues")
	}

	matched := venues[:0]
	for _, v := range venues {
		if matchesName(v.Name, term) {
			matched = append(matched, v)
		}
	}

	counts, err := upcomingCounts(db, "venue_id", venueIDs(matched), now)
	if err != nil {
		return nil, translate(err, "counting upcoming shows")
	}

	res := &VenueSearchResult{Count: len(matched), Data: make([]VenueSummary, 0, len(matched))}
	for _, v := range matched {
		res.Data = append(res.Data, VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return res, nil
}

func GetVenue(db *gorm.DB, id uint) (*Venue, error) {
	var v Venue
	if err := db.First(&v, id).Error; err != nil {
		return nil, translate(err, "loading venue")
	}
	return &v, nil
}

// GetVenueDetail loads a venue with its shows split into past and upcoming
// around now. Artists are batch-loaded alongside the shows.
func GetVenueDetail(db *gorm.DB, id uint, now time.Time) (*VenueDetail, error) {
	var v Venue
	err := db.
		Preload("Shows", showsByStart).
		Preload("Shows.Artist").
		First(&v, id).Error
	if err != nil {
		return nil, translate(err, "loading venue")
	}

	d := &VenueDetail{
		Venue:         v,
		PastShows:     []VenueShow{},
		UpcomingShows: []VenueShow{},
	}
	for _, s := range v.Shows {
		row := VenueShow{
			ArtistID:  s.ArtistID,
			StartTime: FormatTime(s.StartTime, FormatMedium),
		}
		if s.Artist != nil {
			row.ArtistName = s.Artist.Name
			row.ArtistImageLink = s.Artist.ImageLink
		}
		if s.IsPast(now) {
			d.PastShows = append(d.PastShows, row)
		} else {
			d.UpcomingShows = append(d.UpcomingShows, row)
		}
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	d.Venue.Shows = nil
	return d, nil
}

// CreateVenue validates and inserts v in one transaction; v.ID is set on success.
func CreateVenue(db *gorm.DB, v *Venue) error {
	v.normalize()
	if err := v.validate(); err != nil {
		return err
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(v).Error
	})
	return translate(err, "creating venue")
}

// UpdateVenue overwrites every mutable field of venue id with the values in in.
func UpdateVenue(db *gorm.DB, id uint, in Venue) (*Venue, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	var v Venue
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, id).Error; err != nil {
			return err
		}
		v.Name = in.Name
		v.City = in.City
		v.State = in.State
		v.Address = in.Address
		v.Phone = in.Phone
		v.Genres = in.Genres
		v.ImageLink = in.ImageLink
		v.FacebookLink = in.FacebookLink
		v.Website = in.Website
		v.SeekingTalent = in.SeekingTalent
		v.SeekingDescription = in.SeekingDescription
		return tx.Omit(clause.Associations).Save(&v).Error
	})
	if err != nil {
		return nil, translate(err, "updating venue")
	}
	return &v, nil
}

// DeleteVenue removes the venue and every show booked there.
func DeleteVenue(db *gorm.DB, id uint) (*Venue, error) {
	var v Venue
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, id).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", v.ID).Delete(&Show{}).Error; err != nil {
			return errors.Wrap(err, "deleting shows")
		}
		return tx.Delete(&v).Error
	})
	if err != nil {
		return nil, translate(err, "deleting venue")
	}
	return &v, nil
}

func venueIDs(venues []Venue) []uint {
	ids := make([]uint, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}
	return ids
}
