package service

import (
	"log"

	errorvalues "github.com/nmehta/activityclock/internal/error_values"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies the single owner password against its bcrypt hash.
// There are no accounts; whoever knows the password is the owner.
type AuthService struct {
	passwordHash []byte
}

func NewAuthService(passwordHash string) *AuthService {
	if passwordHash == "" {
		log.Fatal("provided empty password hash to auth service")
	}
	return &AuthService{
		passwordHash: []byte(passwordHash),
	}
}

func (as *AuthService) Login(password string) error {
	if err := bcrypt.CompareHashAndPassword(as.passwordHash, []byte(password)); err != nil {
		return errorvalues.ErrWrongPassword
	}
	return nil
}
