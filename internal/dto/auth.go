package dto

import (
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for password authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse returns the signed token plus the authenticated user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ExchangeCodeRequest carries the Google authorization code from the frontend.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ToAuthResponse builds an AuthResponse from a domain user and token.
func ToAuthResponse(token string, user *domain.User) AuthResponse {
	return AuthResponse{Token: token, User: ToUserResponse(user)}
}
