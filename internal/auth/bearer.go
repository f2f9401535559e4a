// Package auth authenticates callers of the HTTP transport.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken is returned when no bearer token was presented
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken is returned when the token matches neither the static
	// token nor a valid JWT
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Method identifies how a principal was authenticated
type Method string

const (
	MethodNone   Method = "none"
	MethodStatic Method = "static"
	MethodJWT    Method = "jwt"
)

// Principal is the authenticated caller of a request
type Principal struct {
	Subject   string
	Method    Method
	ExpiresAt time.Time // zero for static tokens
}

// Key identifies the principal for per-caller accounting such as rate limits
func (p *Principal) Key() string {
	if p == nil {
		return "anonymous"
	}
	return string(p.Method) + ":" + p.Subject
}

// BearerConfig lists the accepted credentials. A zero config accepts every
// request as an anonymous principal.
type BearerConfig struct {
	StaticToken string
	JWTSecret   string
	JWTAudience string // checked only when set
}

// Enabled reports whether any credential is configured
func (c BearerConfig) Enabled() bool {
	return c.StaticToken != "" || c.JWTSecret != ""
}

// ExtractBearer pulls the token out of an Authorization header value
func ExtractBearer(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// VerifyBearer authenticates a bearer token. The static token is compared in
// constant time; anything that looks like a JWT is checked against the HS256
// secret, expiry and audience.
func VerifyBearer(token string, cfg BearerConfig) (*Principal, error) {
	if !cfg.Enabled() {
		return &Principal{Subject: "anonymous", Method: MethodNone}, nil
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	if cfg.StaticToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(cfg.StaticToken)) == 1 {
		return &Principal{Subject: "static", Method: MethodStatic}, nil
	}

	if cfg.JWTSecret == "" || !IsJWTFormat(token) {
		return nil, ErrInvalidToken
	}

	claims, err := parseJWT(token, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	subject := claims.Subject
	if subject == "" {
		subject = "jwt"
	}
	p := &Principal{Subject: subject, Method: MethodJWT}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}

func parseJWT(token string, cfg BearerConfig) (*jwt.RegisteredClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.JWTAudience != "" {
		opts = append(opts, jwt.WithAudience(cfg.JWTAudience))
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

// IsJWTFormat checks if a token string looks like a JWT (3 parts separated by dots)
func IsJWTFormat(token string) bool {
	if token == "" {
		return false
	}
	return strings.Count(token, ".") == 2
}
