package database

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fyyur/config"
	"fyyur/internal/domain/booking"
)

// Open connects to postgres and tunes the pool. The returned handle is owned by
// the caller, which closes it through Close.
func Open(cfg config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, errors.New("database url not set")
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), GormConfig(log, cfg.SlowThreshold))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "unwrapping sql.DB")
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// GormConfig is shared by the postgres connection and the sqlite-backed tests.
func GormConfig(log zerolog.Logger, slow time.Duration) *gorm.Config {
	w := gormWriter{log: log.With().Str("component", "gorm").Logger()}
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(w, gormlogger.Config{
			SlowThreshold:             slow,
			LogLevel:                  gormLevel(log.GetLevel()),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}
}

// gormWriter forwards gorm's already-filtered messages. zerolog's own Printf
// logs at debug, which would drop gorm errors under an info-level logger.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	level := w.log.GetLevel()
	if level < zerolog.InfoLevel {
		level = zerolog.InfoLevel
	}
	w.log.WithLevel(level).Msgf(format, args...)
}

func gormLevel(l zerolog.Level) gormlogger.LogLevel {
	switch {
	case l <= zerolog.DebugLevel:
		return gormlogger.Info
	case l <= zerolog.WarnLevel:
		return gormlogger.Warn
	case l == zerolog.Disabled:
		return gormlogger.Silent
	default:
		return gormlogger.Error
	}
}

// Migrate creates or updates the venue, artist and show tables.
// Order matters: shows reference both parents.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&booking.Venue{},
		&booking.Artist{},
		&booking.Show{},
	); err != nil {
		return errors.Wrap(err, "auto-migrate")
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
