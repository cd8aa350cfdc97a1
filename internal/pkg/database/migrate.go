package database

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/gradsite/modteam/migrations"
)

// MigrationURL is the golang-migrate address of the configured MySQL database.
func MigrationURL() string {
	return "mysql://" + DSN() + "&multiStatements=true"
}

// NewMigrator opens golang-migrate on the SQL files in source. The production
// schema is owned by these files; AutoMigrate only builds SQLite test databases.
func NewMigrator(source fs.FS, databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(source, ".")
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending embedded migration to the configured database.
func MigrateUp() error {
	m, err := NewMigrator(migrations.FS, MigrationURL())
	if err != nil {
		return err
	}
	defer closeMigrator(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func closeMigrator(m *migrate.Migrate) {
	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		log.Printf("Failed to close migration resources: %v, %v", sourceErr, dbErr)
	}
}
