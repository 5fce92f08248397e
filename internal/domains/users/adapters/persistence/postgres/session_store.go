package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userports "github.com/shopilens/storefront-api/internal/domains/users/ports"
)

// DefaultSessionTTL provides the fallback TTL when none is configured.
const DefaultSessionTTL = 24 * time.Hour

var _ userports.SessionStore = (*SessionStore)(nil)

// SessionStore persists session tokens in PostgreSQL.
type SessionStore struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewSessionStore wires a PostgreSQL-backed session store. Caller owns DB lifecycle.
func NewSessionStore(db *gorm.DB, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	store := &SessionStore{db: db, ttl: ttl}
	if db != nil {
		_ = db.AutoMigrate(&sessionRecord{})
	}
	return store
}

type sessionRecord struct {
	Token     string    `gorm:"primaryKey;column:token;size:64"`
	Username  string    `gorm:"column:username;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "user_sessions" }

// Create issues a fresh token for the username with the configured TTL.
func (s *SessionStore) Create(ctx context.Context, username string) (string, error) {
	if err := s.ensureDB(); err != nil {
		return "", err
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errors.New("username is required")
	}
	record := sessionRecord{
		Token:     uuid.NewString(),
		Username:  username,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", err
	}
	return record.Token, nil
}

// Resolve returns the username owning an unexpired token.
func (s *SessionStore) Resolve(ctx context.Context, token string) (string, error) {
	if err := s.ensureDB(); err != nil {
		return "", err
	}
	var record sessionRecord
	err := s.db.WithContext(ctx).First(&record, "token = ?", strings.TrimSpace(token)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", userports.ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	if time.Now().After(record.ExpiresAt) {
		_ = s.db.WithContext(ctx).Delete(&sessionRecord{}, "token = ?", record.Token).Error
		return "", userports.ErrSessionNotFound
	}
	return record.Username, nil
}

// Delete removes a session by token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&sessionRecord{}, "token = ?", token).Error
}

// PurgeExpired removes all expired sessions. Use for housekeeping or cron.
func (s *SessionStore) PurgeExpired(ctx context.Context) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("expires_at <= ?", time.Now()).Delete(&sessionRecord{}).Error
}

func (s *SessionStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres session store not configured")
	}
	return nil
}
