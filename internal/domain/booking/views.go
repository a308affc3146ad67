package booking

// Read models handed to the page layer. Field names follow the template and
// JSON keys the site has always used.

type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// ArtistListing is one row of the flat artist listing.
type ArtistListing struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ArtistSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type VenueSearchResult struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

type ArtistSearchResult struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

// VenueShow is a show seen from its venue: the counterpart is the artist.
type VenueShow struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShow is a show seen from its artist: the counterpart is the venue.
type ArtistShow struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetail struct {
	Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type ShowListing struct {
	ID              uint   `json:"id"`
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
