package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertPolicyRequest struct {
	Type    string `json:"type" form:"type" validate:"required"`
	Content string `json:"content" form:"content" validate:"required"`
}

type PolicyResponse struct {
	Id        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AddFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type UpdateFAQRequest struct {
	Id       uuid.UUID `json:"id" validate:"required"`
	Question string    `json:"question" validate:"required"`
	Answer   string    `json:"answer" validate:"required"`
	IsActive *bool     `json:"isActive,omitempty"`
}

type FAQResponse struct {
	Id        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpsertContactInfoRequest struct {
	Id             *uuid.UUID `json:"id,omitempty"`
	OfficeLocation string     `json:"officeLocation" validate:"required"`
	Email          string     `json:"email" validate:"required,email"`
	Phone          string     `json:"phone" validate:"required"`
}

type ContactInfoResponse struct {
	Id             uuid.UUID `json:"id"`
	OfficeLocation string    `json:"officeLocation"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
}

type CreateContactMessageRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Message   string `json:"message" validate:"required"`
}
