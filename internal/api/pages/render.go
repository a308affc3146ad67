package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"fyyur/internal/domain/booking"
	"fyyur/internal/errs"
)

// Render answers with the named template, or with data as JSON when the
// client asks for application/json.
func Render(c *gin.Context, status int, name string, data gin.H) {
	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: name,
		Data:     data,
	})
}

// Error renders the error page for e and stops the handler chain. JSON
// clients get the HTTPError itself.
func Error(c *gin.Context, e *errs.HTTPError) {
	c.Negotiate(e.Status, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: "error.html",
		HTMLData: gin.H{"error": e},
		JSONData: e,
	})
	c.Abort()
}

// Notice renders the landing page carrying a one-shot flash message.
func Notice(c *gin.Context, status int, flash string, extra gin.H) {
	data := gin.H{"flash": flash}
	for k, v := range extra {
		data[k] = v
	}
	Render(c, status, "home.html", data)
}

// Fail turns a booking error into a response. Not-found and missing-field
// errors get their status page; anything else is logged and answered with the
// generic notice, never the cause.
func Fail(c *gin.Context, err error, notFound, notice string) {
	var missing *booking.MissingFieldsError
	switch {
	case errors.Is(err, booking.ErrNotFound):
		Error(c, errs.NewNotFoundError(notFound))
	case errors.As(err, &missing):
		Error(c, errs.FieldsError("Validation failed", missing.Fields...))
	default:
		status := http.StatusInternalServerError
		if errors.Is(err, booking.ErrReferenceMissing) {
			status = http.StatusUnprocessableEntity
		}
		Logger(c).Error().Err(err).Int("status", status).Msg(notice)
		Notice(c, status, notice, nil)
	}
}

// Logger returns the request-scoped logger installed by the request logger
// middleware.
func Logger(c *gin.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request.Context())
}
