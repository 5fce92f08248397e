package domain

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrWeakPassword  = errors.New("password must be at least 8 characters")
	ErrInvalidEmail  = errors.New("email must contain '@'")
)

// User represents a storefront shopper account.
type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

// NewUser builds a user with a bcrypt-hashed password.
func NewUser(id int64, username, password string) (*User, error) {
	user := &User{ID: id}
	if err := user.SetUsername(username); err != nil {
		return nil, err
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetUsername trims and validates the username.
func (u *User) SetUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	u.Username = username
	return nil
}

// SetPassword validates basic password strength and stores a bcrypt hash.
func (u *User) SetPassword(password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < 8 {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// UpdateProfile applies optional profile fields and validates email if present.
func (u *User) UpdateProfile(firstName, lastName, email string) error {
	u.FirstName = strings.TrimSpace(firstName)
	u.LastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	u.Email = email
	return nil
}

// CheckPassword compares the stored hash with the supplied credentials.
func (u *User) CheckPassword(password string) bool {
	if strings.TrimSpace(password) == "" || u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Validate re-applies core invariants for persistence.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if u.PasswordHash == "" {
		return ErrEmptyPassword
	}
	if u.Email != "" && !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}
