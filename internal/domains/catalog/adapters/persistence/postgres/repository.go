package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/shopilens/storefront-api/internal/domains/catalog/domain"
	"github.com/shopilens/storefront-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository caches the product catalog in PostgreSQL using GORM. The table
// is replaced wholesale on every refresh, mirroring the in-memory cache.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed catalog cache. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&productRecord{})
	}
	return repo
}

// productRecord maps a cached product to a relational row. Keywords back the
// free-text search via a text[] overlap match.
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

func (r *Repository) ReplaceAll(ctx context.Context, products []domain.Product, fetchedAt time.Time) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	records := make([]productRecord, 0, len(products))
	for i, p := range products {
		records = append(records, toRecord(p, i, fetchedAt))
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&productRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

func (r *Repository) List(ctx context.Context) ([]domain.Product, time.Time, error) {
	if err := r.ensureDB(); err != nil {
		return nil, time.Time{}, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("position asc").Find(&records).Error; err != nil {
		return nil, time.Time{}, err
	}
	products := make([]domain.Product, 0, len(records))
	var fetchedAt time.Time
	for _, record := range records {
		products = append(products, toDomain(record))
		if record.FetchedAt.After(fetchedAt) {
			fetchedAt = record.FetchedAt
		}
	}
	return products, fetchedAt, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return domain.Product{}, err
	}
	var record productRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, ports.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return toDomain(record), nil
}

func (r *Repository) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	terms := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(terms) == 0 {
		products, _, err := r.List(ctx)
		return products, err
	}
	var records []productRecord
	err := r.db.WithContext(ctx).
		Where("keywords && ?", pq.Array(terms)).
		Order("position asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(records))
	for _, record := range records {
		products = append(products, toDomain(record))
	}
	return products, nil
}

func (r *Repository) ensureDB() error {
	if r.db == nil {
		return errors.New("postgres repository not configured")
	}
	return nil
}

func toRecord(p domain.Product, position int, fetchedAt time.Time) productRecord {
	return productRecord{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		RatingRate:  p.Rating.Rate,
		RatingCount: p.Rating.Count,
		Keywords:    pq.StringArray(p.Keywords()),
		Position:    position,
		FetchedAt:   fetchedAt,
	}
}

func toDomain(record productRecord) domain.Product {
	return domain.Product{
		ID:          record.ID,
		Title:       record.Title,
		Price:       record.Price,
		Description: record.Description,
		Category:    record.Category,
		Image:       record.Image,
		Rating:      domain.Rating{Rate: record.RatingRate, Count: record.RatingCount},
	}
}
