package booking

import "time"

type Venue struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"not null;index" json:"name"`
	City    string `gorm:"size:120;not null;index:idx_venues_area,priority:1" json:"city"`
	State   string `gorm:"size:120;not null;index:idx_venues_area,priority:2" json:"state"`
	Address string `gorm:"size:120;not null" json:"address"`
	Phone   string `gorm:"size:120;not null" json:"phone"`
	Genres  Genres `json:"genres"`

	ImageLink    string `gorm:"size:500" json:"image_link,omitempty"`
	FacebookLink string `gorm:"size:120" json:"facebook_link,omitempty"`
	Website      string `gorm:"size:120" json:"website,omitempty"`

	SeekingTalent      bool   `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string `gorm:"size:500" json:"seeking_description,omitempty"`

	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// normalize enforces the seeking invariant and tidies free-text fields.
func (v *Venue) normalize() {
	v.Name = trim(v.Name)
	v.City = trim(v.City)
	v.State = trim(v.State)
	v.Address = trim(v.Address)
	v.Phone = trim(v.Phone)
	v.Genres = v.Genres.Clean()
	if !v.SeekingTalent {
		v.SeekingDescription = ""
	}
}

func (v *Venue) validate() error {
	return required(map[string]string{
		"name":    v.Name,
		"city":    v.City,
		"state":   v.State,
		"address": v.Address,
		"phone":   v.Phone,
	})
}
