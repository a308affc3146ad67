package shows

type ShowForm struct {
	ArtistID  uint   `form:"artist_id" json:"artist_id" binding:"required"`
	VenueID   uint   `form:"venue_id" json:"venue_id" binding:"required"`
	StartTime string `form:"start_time" json:"start_time" binding:"required"`
}
