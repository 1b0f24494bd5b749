package services

import (
	"errors"

	"github.com/vitrinehq/vitrine/app/repositories"
	"github.com/vitrinehq/vitrine/pkg/auth"
)

// ErrInvalidCredentials is returned on a failed login; it deliberately does
// not distinguish unknown emails from wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Login verifies the credentials and returns a signed token.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID, user.Role)
}
