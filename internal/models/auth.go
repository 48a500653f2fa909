package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims carries the authenticated identity inside access tokens.
type JWTClaims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the credential payload for /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and the authenticated user.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	User        User      `json:"user"`
}
