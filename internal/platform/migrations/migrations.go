package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&userRecord{},
		&sessionRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID          int64          `gorm:"primaryKey;column:id"`
	Title       string         `gorm:"column:title"`
	Price       float64        `gorm:"column:price"`
	Description string         `gorm:"column:description"`
	Category    string         `gorm:"column:category;index"`
	Image       string         `gorm:"column:image"`
	RatingRate  float64        `gorm:"column:rating_rate"`
	RatingCount int64          `gorm:"column:rating_count"`
	Keywords    pq.StringArray `gorm:"column:keywords;type:text[]"`
	Position    int            `gorm:"column:position;index"`
	FetchedAt   time.Time      `gorm:"column:fetched_at"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "catalog_products" }

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

// Session schema mirrors the session store.
type sessionRecord struct {
	Token     string    `gorm:"primaryKey;column:token;size:64"`
	Username  string    `gorm:"column:username;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "user_sessions" }
