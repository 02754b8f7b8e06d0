package database

import (
	"log"
	"strings"

	"castboard/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

// Connect opens PostgreSQL for postgres:// DSNs and falls back to a
// modernc-backed SQLite file for everything else (local dev and tests).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Staff{},
		&domain.Studio{},
		&domain.Room{},
		&domain.VoiceActor{},
		&domain.Director{},
		&domain.DirectorWeeklyAvailability{},
		&domain.DirectorDateOverride{},
		&domain.Booking{},
		&domain.SavedSchedule{},
		&domain.EmailLog{},
	)
}
