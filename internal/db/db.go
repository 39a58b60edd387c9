package db

import (
	"fmt"
	"log"
	"os"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nuradoo/go-oferta/internal/config"
	"github.com/nuradoo/go-oferta/internal/models"
)

// Connect opens the configured database. SQLite is the default;
// Postgres is selected with DB_DRIVER=postgres and a DATABASE_DSN.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	switch cfg.Driver {
	case "", "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	case "postgres":
		dsn := NormalizeDSN(cfg.DSN)
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_DSN is empty for driver postgres")
		}
		return gorm.Open(postgres.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// Migrate brings the schema up to date with gorm's AutoMigrate.
func Migrate(db *gorm.DB) error {
	for _, m := range []any{&models.Offer{}, &models.Product{}} {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

// RunSQLMigrations executes the SQL files in ./migrations with
// golang-migrate. Only meaningful for the postgres driver; AutoMigrate
// covers sqlite for local development.
func RunSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", NormalizeDSN(dsn))
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	log.Println("SQL migrations applied")
	return nil
}
