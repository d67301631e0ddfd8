package dto

type ContactMessageRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message" validate:"required"`
}
