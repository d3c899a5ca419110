// Package auth issues and verifies the service tokens bots present to
// the HTTP API.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/noctale/noctale/internal/errors"
	"github.com/noctale/noctale/internal/pkg/clock"
)

// Claims carries the bot identity inside a signed token.
type Claims struct {
	jwt.RegisteredClaims

	// BotID identifies the calling bot deployment.
	BotID string `json:"botId"`
}

// Config holds the token service settings
type Config struct {
	// Secret is the HS256 signing key. The server refuses to start
	// with auth enabled and no secret.
	Secret string
	// Issuer is stamped into and required of every token.
	Issuer string
	// TTL is the token lifetime, defaulting to 24h.
	TTL   time.Duration
	Clock clock.Clock
}

// Validate checks required fields and fills defaults
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Secret == "" {
		vb.RequiredField("Secret")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	return vb.Build()
}

// TokenService signs and verifies HS256 service tokens.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clock.Clock
}

// NewTokenService creates a token service from the provided config
func NewTokenService(cfg *Config) (*TokenService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &TokenService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		clock:  cfg.Clock,
	}, nil
}

// Sign issues a token for the given bot id.
func (s *TokenService) Sign(botID string) (string, error) {
	now := s.clock.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		BotID: botID,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Parse verifies a token string and returns its claims. Any failure,
// expiry and bad signatures included, comes back as Unauthenticated.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, parserOpts...)
	if err != nil {
		return nil, errors.Unauthenticated("invalid token")
	}

	return claims, nil
}
