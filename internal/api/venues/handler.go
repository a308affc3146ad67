package venues

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

// ------------------------------
// GET /venues
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	areas, err := booking.ListVenueAreas(h.store(c), h.now())
	if err != nil {
		pages.Logger(c).Error().Err(err).Msg("listing venues")
		pages.Error(c, errs.NewInternalServerError())
		return
	}
	pages.Render(c, http.StatusOK, "venues.html", gin.H{"areas": areas})
}

// ------------------------------
// POST /venues/search
// ------------------------------
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		pages.Error(c, errs.ValidationError(err))
		return
	}

	res, err := booking.SearchVenues(h.store(c), req.SearchTerm, h.now())
	if err != nil {
		pages.Logger(c).Error().Err(err).Msg("searching venues")
		pages.Error(c, errs.NewInternalServerError())
		return
	}
	pages.Render(c, http.StatusOK, "search_venues.html", gin.H{
		"results":     res,
		"search_term": req.SearchTerm,
	})
}

// ------------------------------
// GET /venues/:id
// ------------------------------
func (h *Handler) Show(c *gin.Context) {
	id, ok := pages.ParamID(c, "Venue")
	if !ok {
		return
	}

	d, err := booking.GetVenueDetail(h.store(c), id, h.now())
	if err != nil {
		pages.Fail(c, err, "Venue not found", "An error occurred loading the venue.")
		return
	}
	pages.Render(c, http.StatusOK, "show_venue.html", gin.H{"venue": d})
}

// ------------------------------
// GET /venues/create
// ------------------------------
func (h *Handler) CreateForm(c *gin.Context) {
	pages.Render(c, http.StatusOK, "new_venue.html", gin.H{
		"form":          VenueForm{SeekingTalent: pages.YesNo(false)},
		"genre_choices": view.Genres,
	})
}

// ------------------------------
// POST /venues/create
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		pages.Error(c, errs.ValidationError(err))
		return
	}
	v, err := form.toVenue()
	if err != nil {
		pages.Error(c, errs.NewBadRequestError("Validation failed", []errs.FieldError{{Field: "seeking_talent", Error: err.Error()}}))
		return
	}

	if err := booking.CreateVenue(h.store(c), &v); err != nil {
		pages.Fail(c, err, "Venue not found", "An error occurred. Venue "+form.Name+" could not be listed.")
		return
	}

	pages.Notice(c, http.StatusCreated, "Venue "+v.Name+" was successfully listed!", gin.H{"venue": v})
}

// ------------------------------
// GET /venues/:id/edit
// ------------------------------
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := pages.ParamID(c, "Venue")
	if !ok {
		return
	}

	v, err := booking.GetVenue(h.store(c), id)
	if err != nil {
		pages.Fail(c, err, "Venue not found", "An error occurred loading the venue.")
		return
	}
	pages.Render(c, http.StatusOK, "edit_venue.html", gin.H{
		"id":            v.ID,
		"form":          formFromVenue(v),
		"genre_choices": view.Genres,
	})
}

// ------------------------------
// POST /venues/:id/edit
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, ok := pages.ParamID(c, "Venue")
	if !ok {
		return
	}

	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		pages.Error(c, errs.ValidationError(err))
		return
	}
	in, err := form.toVenue()
	if err != nil {
		pages.Error(c, errs.NewBadRequestError("Validation failed", []errs.FieldError{{Field: "seeking_talent", Error: err.Error()}}))
		return
	}

	db := h.store(c)
	v, err := booking.UpdateVenue(db, id, in)
	if err != nil {
		pages.Fail(c, err, "Venue not found", "An error occurred. Venue "+form.Name+" could not be updated.")
		return
	}

	d, err := booking.GetVenueDetail(db, v.ID, h.now())
	if err != nil {
		pages.Fail(c, err, "Venue not found", "Venue "+v.Name+" was updated but could not be reloaded.")
		return
	}
	pages.Render(c, http.StatusOK, "show_venue.html", gin.H{
		"flash": "Venue " + v.Name + " was successfully updated!",
		"venue": d,
	})
}

// ------------------------------
// DELETE /venues/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pages.ParamID(c, "Venue")
	if !ok {
		return
	}

	v, err := booking.DeleteVenue(h.store(c), id)
	if err != nil {
		pages.Fail(c, err, "Venue not found", "An error occurred. Venue could not be deleted.")
		return
	}
	pages.Notice(c, http.StatusOK, "Venue "+v.Name+" was deleted!", nil)
}
