package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminSignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminData struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type AdminAuthResponse struct {
	Admin *AdminData `json:"admin"`
	Token string     `json:"token"`
}

type UpdateAdminRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type ResetAdminPasswordRequest struct {
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type ListUsersRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

type ListUsersResponse struct {
	Users       []*UserProfileData `json:"users"`
	TotalUsers  int64              `json:"totalUsers"`
	TotalPages  int64              `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
}

type AgentVerdictRequest struct {
	AgentId uuid.UUID `json:"agentId" validate:"required"`
	Verdict string    `json:"verdict" validate:"required,oneof=approved rejected"`
}

type AdminListAgentsResponse struct {
	Agents []*AgentProfileData `json:"agents"`
}

type ListContactMessagesResponse struct {
	Id        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
