package artists

import (
	"fyyur/internal/api/pages"
	"fyyur/internal/domain/booking"
)

type SearchRequest struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}

type ArtistForm struct {
	Name               string   `form:"name" json:"name" binding:"required"`
	City               string   `form:"city" json:"city" binding:"required"`
	State              string   `form:"state" json:"state" binding:"required"`
	Phone              string   `form:"phone" json:"phone" binding:"required"`
	Genres             []string `form:"genres" json:"genres"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url"`
	Website            string   `form:"website" json:"website" binding:"omitempty,url"`
	SeekingVenue       string   `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f ArtistForm) toArtist() (booking.Artist, error) {
	seeking, err := pages.ParseYesNo(f.SeekingVenue)
	if err != nil {
		return booking.Artist{}, err
	}
	return booking.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             booking.Genres(f.Genres),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingVenue:       seeking,
		SeekingDescription: f.SeekingDescription,
	}, nil
}

func formFromArtist(a *booking.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             []string(a.Genres),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       pages.YesNo(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}
