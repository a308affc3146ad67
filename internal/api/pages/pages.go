package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fyyur/internal/errs"
)

func Home(c *gin.Context) {
	Render(c, http.StatusOK, "home.html", gin.H{})
}

func NotFound(c *gin.Context) {
	Error(c, errs.NewNotFoundError("Page not found"))
}

// Health reports liveness plus a database ping.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			Logger(c).Error().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
