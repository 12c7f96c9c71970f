package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/roamly/trip-go/internal/domain"
)

const defaultAvatar = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face"

type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// Service issues and verifies the session tokens the reservation surface is
// gated on. There is no user store: a session is whatever a valid token
// says it is. The engine downstream only cares that some identity is
// present.
type Service struct {
	cfg Config
}

func New(cfg Config) *Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}

	return &Service{cfg: cfg}
}

// Login starts a session for an email. The display name is derived from the
// local part of the address.
//
// Parameters:
//   - ctx: request-scoped context.
//   - email: account email.
//   - password: account password, must be non-empty.
//
// Returns:
//   - domain.User: the session user.
//   - string: the signed session token.
//   - error: identity.ErrInvalidCredentials on empty email or password.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	const op = "service.identity.Login"

	if email == "" || password == "" {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	name, _, _ := strings.Cut(email, "@")

	return s.startSession(op, name, email)
}

// Register starts a session for a new account. No account record is kept;
// registration differs from login only in taking an explicit name.
//
// Parameters:
//   - ctx: request-scoped context.
//   - name: display name.
//   - email: account email.
//   - password: account password, must be non-empty.
//
// Returns:
//   - domain.User: the session user.
//   - string: the signed session token.
//   - error: identity.ErrInvalidCredentials on empty name, email or password.
func (s *Service) Register(ctx context.Context, name, email, password string) (domain.User, string, error) {
	const op = "service.identity.Register"

	if name == "" || email == "" || password == "" {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	return s.startSession(op, name, email)
}

// Verify parses a session token and returns the user it names.
//
// Parameters:
//   - ctx: request-scoped context.
//   - token: the signed session token.
//
// Returns:
//   - domain.User: the session user.
//   - error: identity.ErrInvalidToken if the token is malformed, expired or
//     signed with the wrong key.
func (s *Service) Verify(ctx context.Context, token string) (domain.User, error) {
	const op = "service.identity.Verify"

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return domain.User{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	user := domain.User{Avatar: defaultAvatar}
	if v, ok := claims["sub"].(string); ok {
		user.ID = v
	}
	if v, ok := claims["name"].(string); ok {
		user.Name = v
	}
	if v, ok := claims["email"].(string); ok {
		user.Email = v
	}

	if user.ID == "" {
		return domain.User{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return user, nil
}

func (s *Service) startSession(op, name, email string) (domain.User, string, error) {
	user := domain.User{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Avatar: defaultAvatar,
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return domain.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	return user, signed, nil
}
