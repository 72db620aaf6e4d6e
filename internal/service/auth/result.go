package auth

import (
	"time"

	"github.com/heartmarshall/emotion-diary/internal/domain"
)

// AuthResult is returned by Register, Login, Refresh and ChangePassword.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresAt    time.Time
	User         *domain.User
}
