package ports

import (
	"time"

	"github.com/mtendere/backoffice/internal/core/domain"
)

// TokenClaims is the verified claim set embedded in a session token.
// Claims are trusted for the token's lifetime; the credential store is not
// re-checked on verification.
type TokenClaims struct {
	UserID    string
	Email     string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, expiring session tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify fails with domain.ErrTokenExpired when the expiry has passed and
	// domain.ErrTokenInvalid for any signature or structure problem.
	Verify(token string) (*TokenClaims, error)
}
