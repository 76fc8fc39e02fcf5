package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims are the claims read from bearer tokens. The subject holds the user ID.
type CustomClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type,omitempty"`
}
