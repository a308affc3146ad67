package routes

import (
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"fyyur/internal/api/artists"
	"fyyur/internal/api/pages"
	"fyyur/internal/api/shows"
	"fyyur/internal/api/venues"
	"fyyur/internal/app/http/middleware"
	"fyyur/internal/app/http/view"
	"fyyur/internal/errs"
)

// Deps is everything the handlers need. The process entry point owns the
// database handle; handlers only borrow it per request.
type Deps struct {
	DB          *gorm.DB
	Log         zerolog.Logger
	CORSOrigins []string
	Now         func() time.Time
}

var tagNamesOnce sync.Once

// useTagNames makes gin's shared validator report form/json keys.
func useTagNames() {
	tagNamesOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			errs.UseTagNames(v)
		}
	})
}

// NewRouter builds the gin engine with templates, middleware and every route.
func NewRouter(d Deps) (*gin.Engine, error) {
	if d.DB == nil {
		return nil, errors.New("routes: nil database handle")
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	useTagNames()

	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.RequestLogger(d.Log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		pages.Logger(c).Error().Interface("panic", recovered).Msg("handler panicked")
		pages.Error(c, errs.NewInternalServerError())
	}))
	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.NoRoute(pages.NotFound)

	RegisterRoutes(r, d)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	venueHandler := venues.NewHandler(d.DB, d.Now)
	artistHandler := artists.NewHandler(d.DB, d.Now)
	showHandler := shows.NewHandler(d.DB)

	r.GET("/health", pages.Health(d.DB))

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.GET("/", pages.Home)

	public.GET("/venues", venueHandler.List)
	public.POST("/venues/search", venueHandler.Search)
	public.GET("/venues/create", venueHandler.CreateForm)
	public.POST("/venues/create", venueHandler.Create)
	public.GET("/venues/:id", venueHandler.Show)
	public.DELETE("/venues/:id", venueHandler.Delete)
	public.GET("/venues/:id/edit", venueHandler.EditForm)
	public.POST("/venues/:id/edit", venueHandler.Update)

	public.GET("/artists", artistHandler.List)
	public.POST("/artists/search", artistHandler.Search)
	public.GET("/artists/create", artistHandler.CreateForm)
	public.POST("/artists/create", artistHandler.Create)
	public.GET("/artists/:id", artistHandler.Show)
	public.DELETE("/artists/:id", artistHandler.Delete)
	public.GET("/artists/:id/edit", artistHandler.EditForm)
	public.POST("/artists/:id/edit", artistHandler.Update)

	public.GET("/shows", showHandler.List)
	public.GET("/shows/create", showHandler.CreateForm)
	public.POST("/shows/create", showHandler.Create)
}
