package venues

import (
	"fyyur/internal/api/pages"
	"fyyur/internal/domain/booking"
)

type SearchRequest struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}

// VenueForm is the create and edit payload. Edits are full overwrites, so the
// required fields are required on both.
type VenueForm struct {
	Name               string   `form:"name" json:"name" binding:"required"`
	City               string   `form:"city" json:"city" binding:"required"`
	State              string   `form:"state" json:"state" binding:"required"`
	Address            string   `form:"address" json:"address" binding:"required"`
	Phone              string   `form:"phone" json:"phone" binding:"required"`
	Genres             []string `form:"genres" json:"genres"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url"`
	Website            string   `form:"website" json:"website" binding:"omitempty,url"`
	SeekingTalent      string   `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f VenueForm) toVenue() (booking.Venue, error) {
	seeking, err := pages.ParseYesNo(f.SeekingTalent)
	if err != nil {
		return booking.Venue{}, err
	}
	return booking.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             booking.Genres(f.Genres),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingTalent:      seeking,
		SeekingDescription: f.SeekingDescription,
	}, nil
}

func formFromVenue(v *booking.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             []string(v.Genres),
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      pages.YesNo(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}
