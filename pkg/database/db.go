package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table: per key, per day counters of
// generation requests and the sizes of the rosters produced.
type APIUsage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	KeyID        uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date         string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount int    `gorm:"default:0" json:"request_count"`
	TotalPeople  int    `gorm:"default:0" json:"total_people"`
	TotalDays    int    `gorm:"default:0" json:"total_days"`
}

// RosterRun represents the roster_runs table: one record per successful
// generation, for audit and history endpoints.
type RosterRun struct {
	ID           string    `gorm:"primaryKey" json:"id"` // uuid
	KeyID        uint      `gorm:"index;not null" json:"key_id"`
	Mode         string    `gorm:"not null" json:"mode"`
	StartDate    string    `gorm:"not null" json:"start_date"`
	EndDate      string    `gorm:"not null" json:"end_date"`
	PeopleCount  int       `json:"people_count"`
	WarningCount int       `json:"warning_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema.
// DATABASE_URL selects Postgres; otherwise a local SQLite file is used.
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "roster_api.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(&APIKey{}, &APIUsage{}, &RosterRun{}, &MasterUser{})

	return db
}
