package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims are the claims carried by gateway-issued access tokens
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
}
