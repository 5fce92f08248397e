package mapper

import (
	"github.com/shopilens/storefront-api/internal/domains/users/domain"
)

// RegisterRequest captures the sign-up payload.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// LoginRequest captures the credential payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the HTTP representation of a shopper account. The password hash
// never leaves the service.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ToDomainUser maps a register payload into the domain aggregate.
func ToDomainUser(req RegisterRequest) (*domain.User, error) {
	user, err := domain.NewUser(0, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(req.FirstName, req.LastName, req.Email); err != nil {
		return nil, err
	}
	return user, nil
}

// FromDomainUser maps a domain aggregate into its transport representation.
func FromDomainUser(user *domain.User) User {
	if user == nil {
		return User{}
	}
	return User{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}
