package artists

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fyyur/internal/api/pages"
	"fyyur/internal/app/http/view"
	"fyyur/internal/domain/booking"
	"fyyur/internal/errs"
)

type Handler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewHandler(db *gorm.DB, now func() time.Time) *Handler {
	return &Handler{db: db, now: now}
}

func (h *Handler) store(c *gin.Context) *gorm.DB {
	return h.db.WithContext(c.Request.Context())
}

func badSeekingFlag(c *gin.Context, err error) {
	pages.Error(c, errs.NewBadRequestError("Validation failed", []errs.FieldError{{Field: "seeking_venue", Error: err.Error()}}))
}

// GET /artists
func (h *Handler) List(c *gin.Context) {
	list, err := booking.ListArtists(h.store(c))
	if err != nil {
		pages.Logger(c).Error().Err(err).Msg("listing artists")
		pages.Error(c, errs.NewInternalServerError())
		return
	}
	pages.Render(c, http.StatusOK, "artists.html", gin.H{"artists": list})
}

// POST /artists/search
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		pages.Error(c, errs.ValidationError(err))
		return
	}

	res, err := booking.SearchArtists(h.store(c), req.SearchTerm, h.now())
	if err != nil {
		pages.Logger(c).Error().Err(err).Msg("searching artists")
		pages.Error(c, errs.NewInternalServerError())
		return
	}
	pages.Render(c, http.StatusOK, "search_artists.html", gin.H{
		"results":     res,
		"search_term": req.SearchTerm,
	})
}

// GET /artists/:id
func (h *Handler) Show(c *gin.Context) {
	id, ok := pages.ParamID(c, "Artist")
	if !ok {
		return
	}

	d, err := booking.GetArtistDetail(h.store(c), id, h.now())
	if err != nil {
		pages.Fail(c, err, "Artist not found", "An error occurred loading the artist.")
		return
	}
	pages.Render(c, http.StatusOK, "show_artist.html", gin.H{"artist": d})
}

// GET /artists/create
func (h *Handler) CreateForm(c *gin.Context) {
	pages.Render(c, http.StatusOK, "new_artist.html", gin.H{
		"form":          ArtistForm{SeekingVenue: pages.YesNo(false)},
		"genre_choices": view.Genres,
	})
}

// POST /artists/create
func (h *Handler) Create(c *gin.Context) {
	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		pages.Error(c, errs.ValidationError(err))
		return
	}
	a, err := form.toArtist()
	if err != nil {
		badSeekingFlag(c, err)
		return
	}

	if err := booking.CreateArtist(h.store(c), &a); err != nil {
		pages.Fail(c, err, "Artist not found", "An error occurred. Artist "+form.Name+" could not be listed.")
		return
	}

	pages.Notice(c, http.StatusCreated, "Artist "+a.Name+" was successfully listed!", gin.H{"artist": a})
}

// GET /artists/:id/edit
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := pages.ParamID(c, "Artist")
	if !ok {
		return
	}

	a, err := booking.GetArtist(h.store(c), id)
	if err != nil {
		pages.Fail(c, err, "Artist not found", "An error occurred loading the artist.")
		return
	}
	pages.Render(c, http.StatusOK, "edit_artist.html", gin.H{
		"id":            a.ID,
		"form":          formFromArtist(a),
		"genre_choices": view.Genres,
	})
}

// POST /artists/:id/edit
func (h *Handler) Update(c *gin.Context) {
	id, ok := pages.ParamID(c, "Artist")
	if !ok {
		return
	}

	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		pages.Error(c, errs.ValidationError(err))
		return
	}
	in, err := form.toArtist()
	if err != nil {
		badSeekingFlag(c, err)
		return
	}

	db := h.store(c)
	a, err := booking.UpdateArtist(db, id, in)
	if err != nil {
		pages.Fail(c, err, "Artist not found", "An error occurred. Artist "+form.Name+" could not be updated.")
		return
	}

	d, err := booking.GetArtistDetail(db, a.ID, h.now())
	if err != nil {
		pages.Fail(c, err, "Artist not found", "Artist "+a.Name+" was updated but could not be reloaded.")
		return
	}
	pages.Render(c, http.StatusOK, "show_artist.html", gin.H{
		"flash":  "Artist " + a.Name + " was successfully updated!",
		"artist": d,
	})
}

// DELETE /artists/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pages.ParamID(c, "Artist")
	if !ok {
		return
	}

	a, err := booking.DeleteArtist(h.store(c), id)
	if err != nil {
		pages.Fail(c, err, "Artist not found", "An error occurred. Artist could not be deleted.")
		return
	}
	pages.Notice(c, http.StatusOK, "Artist "+a.Name+" was deleted!", nil)
}
