package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fyyur/internal/domain/booking"
	"fyyur/internal/testdb"
)

var now = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func fillmore() *booking.Venue {
	return &booking.Venue{
		Name:    "The Fillmore",
		City:    "San Francisco",
		State:   "CA",
		Address: "1805 Geary Blvd",
		Phone:   "415-555-0100",
	}
}

func newVenue(t *testing.T, db *gorm.DB, name, city, state string) *booking.Venue {
	t.Helper()
	v := &booking.Venue{Name: name, City: city, State: state, Address: "1 Main St", Phone: "555-0000"}
	require.NoError(t, booking.CreateVenue(db, v))
	return v
}

func newArtist(t *testing.T, db *gorm.DB, name string) *booking.Artist {
	t.Helper()
	a := &booking.Artist{Name: name, City: "Oakland", State: "CA", Phone: "555-0001", ImageLink: "https://img.example/" + name}
	require.NoError(t, booking.CreateArtist(db, a))
	return a
}

func newShow(t *testing.T, db *gorm.DB, venueID, artistID uint, start time.Time) *booking.Show {
	t.Helper()
	s := &booking.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}
	require.NoError(t, booking.CreateShow(db, s))
	return s
}

func TestCreateVenueFillmore(t *testing.T) {
	db := testdb.New(t)

	v := fillmore()
	require.NoError(t, booking.CreateVenue(db, v))
	assert.NotZero(t, v.ID)

	d, err := booking.GetVenueDetail(db, v.ID, now)
	require.NoError(t, err)
	assert.Equal(t, "The Fillmore", d.Name)
	assert.Equal(t, "1805 Geary Blvd", d.Address)
	assert.Equal(t, 0, d.PastShowsCount)
	assert.Equal(t, 0, d.UpcomingShowsCount)
	assert.Empty(t, d.PastShows)
	assert.Empty(t, d.UpcomingShows)
}

func TestCreateVenueRequiresFields(t *testing.T) {
	db := testdb.New(t)

	v := fillmore()
	v.Address = "  "
	v.Phone = ""
	err := booking.CreateVenue(db, v)

	var missing *booking.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"address", "phone"}, missing.Fields)

	var count int64
	require.NoError(t, db.Model(&booking.Venue{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeekingDescriptionClearedWhenNotSeeking(t *testing.T) {
	db := testdb.New(t)

	v := fillmore()
	v.SeekingTalent = false
	v.SeekingDescription = "we want jazz"
	require.NoError(t, booking.CreateVenue(db, v))

	got, err := booking.GetVenue(db, v.ID)
	require.NoError(t, err)
	assert.Empty(t, got.SeekingDescription)

	a := &booking.Artist{Name: "Jazz Band", City: "Oakland", State: "CA", Phone: "1", SeekingVenue: true, SeekingDescription: "any stage"}
	require.NoError(t, booking.CreateArtist(db, a))
	gotA, err := booking.GetArtist(db, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "any stage", gotA.SeekingDescription)

	updated, err := booking.UpdateArtist(db, a.ID, booking.Artist{
		Name: "Jazz Band", City: "Oakland", State: "CA", Phone: "1",
		SeekingVenue: false, SeekingDescription: "still here?",
	})
	require.NoError(t, err)
	assert.Empty(t, updated.SeekingDescription)
}

func TestGenresRoundTrip(t *testing.T) {
	db := testdb.New(t)

	v := fillmore()
	v.Genres = booking.Genres{"Rock", " Jazz ", "", "Rock", "Hip-Hop"}
	require.NoError(t, booking.CreateVenue(db, v))

	got, err := booking.GetVenue(db, v.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.Genres{"Rock", "Jazz", "Hip-Hop"}, got.Genres)
}

func TestListVenueAreas(t *testing.T) {
	db := testdb.New(t)

	a := newArtist(t, db, "Guns N Petals")
	sf1 := newVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	ny := newVenue(t, db, "The Dueling Pianos Bar", "New York", "NY")
	sf2 := newVenue(t, db, "Park Square Live Music & Coffee", "San Francisco", "CA")

	newShow(t, db, sf1.ID, a.ID, now.Add(48*time.Hour))
	newShow(t, db, sf1.ID, a.ID, now)
	newShow(t, db, sf1.ID, a.ID, now.Add(-time.Hour))
	newShow(t, db, ny.ID, a.ID, now.Add(-48*time.Hour))

	areas, err := booking.ListVenueAreas(db, now)
	require.NoError(t, err)
	require.Len(t, areas, 2)

	byCity := map[string]booking.Area{}
	for _, area := range areas {
		byCity[area.City+"/"+area.State] = area
	}

	sf := byCity["San Francisco/CA"]
	require.Len(t, sf.Venues, 2)
	counts := map[uint]int{}
	for _, v := range sf.Venues {
		counts[v.ID] = v.NumUpcomingShows
	}
	// a show starting exactly now counts as upcoming
	assert.Equal(t, 2, counts[sf1.ID])
	assert.Equal(t, 0, counts[sf2.ID])

	nyArea := byCity["New York/NY"]
	require.Len(t, nyArea.Venues, 1)
	assert.Equal(t, "The Dueling Pianos Bar", nyArea.Venues[0].Name)
	assert.Equal(t, 0, nyArea.Venues[0].NumUpcomingShows)
}

func TestListVenueAreasEmpty(t *testing.T) {
	db := testdb.New(t)

	areas, err := booking.ListVenueAreas(db, now)
	require.NoError(t, err)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestSearchVenues(t *testing.T) {
	db := testdb.New(t)

	a := newArtist(t, db, "The Wild Sax Band")
	hop := newVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	newVenue(t, db, "Park Square Live Music & Coffee", "San Francisco", "CA")
	newVenue(t, db, "The Dueling Pianos Bar", "New York", "NY")
	newShow(t, db, hop.ID, a.ID, now.Add(time.Hour))

	res, err := booking.SearchVenues(db, "Hop", now)
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "The Musical Hop", res.Data[0].Name)
	assert.Equal(t, 1, res.Data[0].NumUpcomingShows)

	res, err = booking.SearchVenues(db, "music", now)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Len(t, res.Data, 2)

	// city is not searched
	res, err = booking.SearchVenues(db, "York", now)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.Empty(t, res.Data)

	res, err = booking.SearchVenues(db, "", now)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
}

func TestSearchArtistsCaseInsensitive(t *testing.T) {
	db := testdb.New(t)

	newArtist(t, db, "Jazz Band")
	newArtist(t, db, "Matt Quevedo")

	for _, term := range []string{"jazz", "JAZZ", "azz", "Jazz Band"} {
		res, err := booking.SearchArtists(db, term, now)
		require.NoError(t, err, term)
		require.Equal(t, 1, res.Count, term)
		assert.Equal(t, "Jazz Band", res.Data[0].Name, term)
	}

	res, err := booking.SearchArtists(db, "", now)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	res, err = booking.SearchArtists(db, "Oakland", now)
	require.NoError(t, err)
	assert.Zero(t, res.Count)
}

func TestDetailPartitionsPastAndUpcoming(t *testing.T) {
	db := testdb.New(t)

	v := newVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	a := newArtist(t, db, "Guns N Petals")
	starts := []time.Time{
		now.Add(-72 * time.Hour),
		now.Add(-time.Second),
		now,
		now.Add(24 * time.Hour),
		time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC),
	}
	for _, s := range starts {
		newShow(t, db, v.ID, a.ID, s)
	}

	vd, err := booking.GetVenueDetail(db, v.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 2, vd.PastShowsCount)
	assert.Equal(t, 3, vd.UpcomingShowsCount)
	assert.Equal(t, len(starts), vd.PastShowsCount+vd.UpcomingShowsCount)
	for _, s := range append(vd.PastShows, vd.UpcomingShows...) {
		assert.Equal(t, a.ID, s.ArtistID)
		assert.Equal(t, "Guns N Petals", s.ArtistName)
		assert.Equal(t, a.ImageLink, s.ArtistImageLink)
	}
	assert.Equal(t, "Tue 01, 01, 2030 8:00PM", vd.UpcomingShows[2].StartTime)

	ad, err := booking.GetArtistDetail(db, a.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 2, ad.PastShowsCount)
	assert.Equal(t, 3, ad.UpcomingShowsCount)
	assert.Len(t, ad.PastShows, 2)
	assert.Len(t, ad.UpcomingShows, 3)
	for _, s := range ad.UpcomingShows {
		assert.Equal(t, v.ID, s.VenueID)
		assert.Equal(t, "The Musical Hop", s.VenueName)
	}
}

func TestDetailNotFound(t *testing.T) {
	db := testdb.New(t)

	_, err := booking.GetVenueDetail(db, 999999, now)
	assert.ErrorIs(t, err, booking.ErrNotFound)

	_, err = booking.GetArtistDetail(db, 999999, now)
	assert.ErrorIs(t, err, booking.ErrNotFound)

	_, err = booking.GetVenue(db, 999999)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestUpdateVenueOverwritesEveryField(t *testing.T) {
	db := testdb.New(t)

	v := fillmore()
	v.Website = "https://fillmore.example"
	v.Genres = booking.Genres{"Rock"}
	require.NoError(t, booking.CreateVenue(db, v))

	got, err := booking.UpdateVenue(db, v.ID, booking.Venue{
		Name:          "The Fillmore West",
		City:          "San Francisco",
		State:         "CA",
		Address:       "10 South Van Ness",
		Phone:         "415-555-0199",
		Genres:        booking.Genres{"Jazz", "Funk"},
		SeekingTalent: true,
		// website omitted: a full overwrite clears it
		SeekingDescription: "Looking for funk",
	})
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)

	stored, err := booking.GetVenue(db, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Fillmore West", stored.Name)
	assert.Equal(t, "10 South Van Ness", stored.Address)
	assert.Equal(t, booking.Genres{"Jazz", "Funk"}, stored.Genres)
	assert.Empty(t, stored.Website)
	assert.True(t, stored.SeekingTalent)
	assert.Equal(t, "Looking for funk", stored.SeekingDescription)
}

func TestUpdateMissingRecord(t *testing.T) {
	db := testdb.New(t)

	_, err := booking.UpdateVenue(db, 42, *fillmore())
	assert.ErrorIs(t, err, booking.ErrNotFound)

	_, err = booking.UpdateArtist(db, 42, booking.Artist{Name: "x", City: "y", State: "z", Phone: "1"})
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestDeleteVenueCascadesShows(t *testing.T) {
	db := testdb.New(t)

	v := newVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	other := newVenue(t, db, "The Dueling Pianos Bar", "New York", "NY")
	a := newArtist(t, db, "Guns N Petals")
	for i := 0; i < 3; i++ {
		newShow(t, db, v.ID, a.ID, now.Add(time.Duration(i-1)*24*time.Hour))
	}
	newShow(t, db, other.ID, a.ID, now.Add(time.Hour))

	deleted, err := booking.DeleteVenue(db, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", deleted.Name)

	var n int64
	require.NoError(t, db.Model(&booking.Show{}).Where("venue_id = ?", v.ID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&booking.Show{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	_, err = booking.GetVenue(db, v.ID)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestDeleteArtistCascadesShows(t *testing.T) {
	db := testdb.New(t)

	v := newVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	a := newArtist(t, db, "Guns N Petals")
	newShow(t, db, v.ID, a.ID, now.Add(time.Hour))

	_, err := booking.DeleteArtist(db, a.ID)
	require.NoError(t, err)

	d, err := booking.GetVenueDetail(db, v.ID, now)
	require.NoError(t, err)
	assert.Zero(t, d.UpcomingShowsCount)
}

func TestDeleteMissingRecord(t *testing.T) {
	db := testdb.New(t)

	_, err := booking.DeleteVenue(db, 7)
	assert.ErrorIs(t, err, booking.ErrNotFound)

	_, err = booking.DeleteArtist(db, 7)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestCreateShowRequiresFields(t *testing.T) {
	db := testdb.New(t)

	err := booking.CreateShow(db, &booking.Show{})
	var missing *booking.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"venue_id", "artist_id", "start_time"}, missing.Fields)
}

func TestListShowsJoinsNames(t *testing.T) {
	db := testdb.New(t)

	v := newVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	a := newArtist(t, db, "Guns N Petals")
	b := newArtist(t, db, "Matt Quevedo")
	newShow(t, db, v.ID, b.ID, now.Add(48*time.Hour))
	newShow(t, db, v.ID, a.ID, now.Add(-48*time.Hour))

	shows, err := booking.ListShows(db)
	require.NoError(t, err)
	require.Len(t, shows, 2)

	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.Equal(t, "Matt Quevedo", shows[1].ArtistName)
	for _, s := range shows {
		assert.Equal(t, "The Musical Hop", s.VenueName)
		assert.Equal(t, v.ID, s.VenueID)
	}

	artists, err := booking.ListArtists(db)
	require.NoError(t, err)
	assert.Equal(t, []booking.ArtistListing{{ID: a.ID, Name: a.Name}, {ID: b.ID, Name: b.Name}}, artists)
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2019, time.May, 21, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", booking.FormatTime(ts, booking.FormatMedium))
	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", booking.FormatTime(ts, booking.FormatFull))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", booking.FormatTime(ts, "unknown"))
}

func TestParseStartTime(t *testing.T) {
	want := time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2030-01-01 20:00:00",
		"2030-01-01 20:00",
		"2030-01-01T20:00",
		" 2030-01-01T20:00:00 ",
		"2030-01-01T21:00:00+01:00",
	} {
		got, err := booking.ParseStartTime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := booking.ParseStartTime("next tuesday")
	assert.Error(t, err)
	_, err = booking.ParseStartTime("")
	assert.Error(t, err)
}

func TestCreateShowWithDanglingReference(t *testing.T) {
	db := testdb.New(t)
	a := newArtist(t, db, "Matt Quevedo")

	s := &booking.Show{VenueID: 4242, ArtistID: a.ID, StartTime: now.Add(time.Hour)}
	err := booking.CreateShow(db, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, booking.ErrReferenceMissing)

	shows, err := booking.ListShows(db)
	require.NoError(t, err)
	assert.Empty(t, shows)
}
