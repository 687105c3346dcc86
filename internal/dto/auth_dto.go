package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateOtpRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type GenerateOtpResponse struct {
	Otp string `json:"otp"`
}

type VerifyOtpRequest struct {
	Phone         string `json:"phone" validate:"required"`
	Otp           string `json:"otp" validate:"required"`
	FirebaseToken string `json:"firebaseToken,omitempty"`
}

type VerifyOtpResponse struct {
	Token string           `json:"token"`
	User  *UserProfileData `json:"user"`
}

// Agent OTP variants: exactly one of agentEmail / phone identifies the agent.

type AgentGenerateOtpRequest struct {
	AgentEmail string `json:"agentEmail,omitempty" validate:"required_without=Phone,omitempty,email"`
	Phone      string `json:"phone,omitempty" validate:"required_without=AgentEmail"`
}

type AgentGenerateOtpResponse struct {
	Otp  string `json:"otp"`
	Type string `json:"type"` // "email" | "phone"
}

type AgentVerifyOtpRequest struct {
	AgentEmail    string `json:"agentEmail,omitempty" validate:"required_without=Phone,omitempty,email"`
	Phone         string `json:"phone,omitempty" validate:"required_without=AgentEmail"`
	Otp           string `json:"otp" validate:"required"`
	FirebaseToken string `json:"firebaseToken,omitempty"`
}

type AgentVerifyOtpResponse struct {
	Token string            `json:"token"`
	Agent *AgentProfileData `json:"agent"`
}

type UserProfileData struct {
	Id           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	UserEmail    string    `json:"userEmail"`
	Dob          string    `json:"dob"`
	Gender       string    `json:"gender"`
	Phone        string    `json:"phone"`
	ProfileImage string    `json:"profileImage"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AgentProfileData struct {
	Id            uuid.UUID `json:"id"`
	FullName      string    `json:"fullName"`
	AgentEmail    string    `json:"agentEmail"`
	Phone         string    `json:"phone"`
	Sector        string    `json:"sector"`
	ProfileImage  string    `json:"profileImage"`
	AdminVerified string    `json:"adminVerified"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}
