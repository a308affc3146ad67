package shows

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fyyur/internal/api/pages"
	"fyyur/internal/domain/booking"
	"fyyur/internal/errs"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) store(c *gin.Context) *gorm.DB {
	return h.db.WithContext(c.Request.Context())
}

// GET /shows
func (h *Handler) List(c *gin.Context) {
	list, err := booking.ListShows(h.store(c))
	if err != nil {
		pages.Logger(c).Error().Err(err).Msg("listing shows")
		pages.Error(c, errs.NewInternalServerError())
		return
	}
	pages.Render(c, http.StatusOK, "shows.html", gin.H{"shows": list})
}

// GET /shows/create
func (h *Handler) CreateForm(c *gin.Context) {
	pages.Render(c, http.StatusOK, "new_show.html", gin.H{"form": ShowForm{}})
}

// POST /shows/create
//
// The venue and artist ids are not looked up first; a dangling id is rejected
// by the store's foreign keys and reported with the generic notice.
func (h *Handler) Create(c *gin.Context) {
	var form ShowForm
	if err := c.ShouldBind(&form); err != nil {
		pages.Error(c, errs.ValidationError(err))
		return
	}
	start, err := booking.ParseStartTime(form.StartTime)
	if err != nil {
		pages.Error(c, errs.NewBadRequestError("Validation failed", []errs.FieldError{{Field: "start_time", Error: err.Error()}}))
		return
	}

	s := booking.Show{VenueID: form.VenueID, ArtistID: form.ArtistID, StartTime: start}
	if err := booking.CreateShow(h.store(c), &s); err != nil {
		pages.Fail(c, err, "Show not found", "An error occurred. Show could not be listed.")
		return
	}

	pages.Notice(c, http.StatusCreated, "Show was successfully listed!", gin.H{"show": s})
}
