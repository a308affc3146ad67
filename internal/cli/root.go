// Package cli wires configuration, logging and the database into the fyyur
// commands.
package cli

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"fyyur/config"
	"fyyur/database"
	"fyyur/internal/logger"
)

// app is what every command gets after the shared setup.
type app struct {
	cfg *config.Config
	log zerolog.Logger
	db  *gorm.DB
}

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "fyyur",
		Short:         "Venue, artist and show listings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := newServeCommand()
	root.AddCommand(serve, newMigrateCommand())
	// bare `fyyur` serves
	root.RunE = serve.RunE
	return root
}

func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup loads config, builds the logger and opens the database. The caller
// closes the database.
func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, db: db}, nil
}

func (a *app) close() {
	if err := database.Close(a.db); err != nil {
		a.log.Warn().Err(err).Msg("closing database")
	}
}
