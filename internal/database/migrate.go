package database

import (
	"embed"
	"errors"
	"fmt"

	"ychet/internal/config"
	"ychet/internal/models"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate создаёт таблицы, если их нет. Вызывается один раз до старта HTTP-сервера.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if cfg.SQLMigrations && cfg.Driver == config.DriverPostgres {
		if err := runSQLMigrations(cfg.PostgresURL()); err != nil {
			return fmt.Errorf("sql migrations: %w", err)
		}
	} else {
		if err := db.AutoMigrate(&models.Client{}, &models.Order{}); err != nil {
			return fmt.Errorf("automigrate: %w", err)
		}
	}

	for _, table := range []string{"clients", "orders"} {
		if !db.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

func runSQLMigrations(dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
