// Package roster persists characters rolled up from the decoded game data
// (race, class, synthesized name) in a local SQLite database.
package roster

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Initialize opens (or creates) the character database at path and migrates
// the schema.
func Initialize(path string, debug bool) error {
	var err error
	// By default only log errors but enable full SQL query prints-to-console with debug mode
	log := logger.Default.LogMode(logger.Error)
	if debug {
		log = logger.Default.LogMode(logger.Info)
	}
	db, err = gorm.Open(sqlite.Open(path), &gorm.Config{Logger: log})

	if err != nil {
		return fmt.Errorf("error connecting to database: %s", err)
	}

	err = db.AutoMigrate(&Character{})
	if err != nil {
		return fmt.Errorf("error auto migrating db: %s", err)
	}

	return nil
}

func Shutdown() error {
	database, err := db.DB()
	if err != nil {
		return fmt.Errorf("error while getting current connection: %w", err)
	}
	if err := database.Close(); err != nil {
		return fmt.Errorf("error while closing database connection: %w", err)
	}
	return nil
}
