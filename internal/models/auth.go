package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest carries the credentials submitted to the login endpoint.
type LoginRequest struct {
	Username string `json:"user" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	User        UserInfo  `json:"user"`
}

// UserInfo is the public projection of an account.
type UserInfo struct {
	Username string `json:"user"`
	Role     string `json:"role"`
}

// ChangePasswordRequest carries a password rotation request.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

// JWTClaims embeds the registered claims plus account identity.
type JWTClaims struct {
	Username string `json:"user"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
