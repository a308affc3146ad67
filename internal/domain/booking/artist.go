package booking

import "time"

type Artist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"not null;index" json:"name"`
	City   string `gorm:"size:120;not null" json:"city"`
	State  string `gorm:"size:120;not null" json:"state"`
	Phone  string `gorm:"size:120;not null" json:"phone"`
	Genres Genres `json:"genres"`

	ImageLink    string `gorm:"size:500" json:"image_link,omitempty"`
	FacebookLink string `gorm:"size:120" json:"facebook_link,omitempty"`
	Website      string `gorm:"size:120" json:"website,omitempty"`

	SeekingVenue       bool   `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string `gorm:"size:500" json:"seeking_description,omitempty"`

	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Artist) normalize() {
	a.Name = trim(a.Name)
	a.City = trim(a.City)
	a.State = trim(a.State)
	a.Phone = trim(a.Phone)
	a.Genres = a.Genres.Clean()
	if !a.SeekingVenue {
		a.SeekingDescription = ""
	}
}

func (a *Artist) validate() error {
	return required(map[string]string{
		"name":  a.Name,
		"city":  a.City,
		"state": a.State,
		"phone": a.Phone,
	})
}
