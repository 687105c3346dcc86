package entity

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type User struct {
	Id            uuid.UUID
	FullName      string
	UserEmail     string
	Dob           string
	Gender        Gender
	Phone         string
	ProfileImage  string
	Otp           *string
	OtpExpiresAt  *time.Time
	IsVerified    bool
	FirebaseToken string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
