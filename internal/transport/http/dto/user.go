package dto

import (
	"time"

	"github.com/OneGuyCory/LPPhotography-Final/internal/domain/models"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ClientLoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	AccessCode string `json:"accessCode" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

type RegisterUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"required,oneof=Admin Client"`
	DisplayName string `json:"displayName"`
}

type RegisterClientRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	AccessCode  string `json:"accessCode" validate:"required"`
	DisplayName string `json:"displayName"`
}

// UserResponse exposes directory fields only. Password hashes and
// access codes never leave the service.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Role:        string(u.Role),
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func ToUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
