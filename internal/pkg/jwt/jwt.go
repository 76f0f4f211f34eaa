package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jonboulle/clockwork"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	ErrInvalidToken           = errors.New("invalid or missing access token")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Service verifies the HS256 access tokens issued by the identity service. GenerateAccessToken
// mints tokens with the same claims for operators and tests.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	GenerateAccessToken(subject string, role string, ttl time.Duration) (token string, expiresAt int64, err error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
	clock     clockwork.Clock
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, clock clockwork.Clock) Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		clock:     clock,
	}
}

func (j *JWTService) GenerateAccessToken(subject string, role string, ttl time.Duration) (token string, expiresAt int64, err error) {
	if ttl <= 0 {
		ttl = time.Hour
	}
	expiresAt = j.clock.Now().Add(ttl).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":      subject,
		"role":     role,
		"is_admin": role == RoleAdmin,
		"type":     "access",
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}
