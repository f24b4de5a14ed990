// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/member-portal/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
// Field presence is checked by the use case so every gap maps to one error code.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse represents the response for a successful registration.
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	User      UserResponse `json:"user"`
	LoginTime time.Time    `json:"login_time"`
}

// SessionResponse describes the session attached to the request.
type SessionResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	LoginTime time.Time `json:"login_time"`
}

// PasswordRequirementsResponse carries the password policy text.
type PasswordRequirementsResponse struct {
	Requirements string `json:"requirements"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts an authenticated identity to a UserResponse DTO.
func ToUserResponse(identity entity.Identity) UserResponse {
	return UserResponse{
		ID:        identity.UserID.String(),
		Username:  identity.Username,
		Email:     identity.Email,
		FullName:  identity.FullName,
		CreatedAt: identity.CreatedAt,
	}
}
