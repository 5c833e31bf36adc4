// Package auth issues and validates the editor tokens that protect the
// meta description endpoints.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing editor JWT tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given editor.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid, ErrWrongTokenType or
	// ErrInvalidToken when validation fails.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated content of an editor token.
type Claims struct {
	// Subject identifies the editor the token was issued for.
	Subject string `json:"sub,omitempty"`

	// TokenType is always "access" for tokens accepted by the API.
	TokenType string `json:"type,omitempty"`

	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
