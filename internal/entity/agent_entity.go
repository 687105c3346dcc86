package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminVerification string

const (
	AdminVerificationPending  AdminVerification = "pending"
	AdminVerificationApproved AdminVerification = "approved"
	AdminVerificationRejected AdminVerification = "rejected"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Agent carries two OTP channels. Email and phone codes live in separate
// fields so an in-flight email login does not clobber a phone login.
type Agent struct {
	Id                uuid.UUID
	FullName          string
	AgentEmail        string
	Gender            Gender
	Phone             string
	Sector            string
	AadharNumber      string
	AadharFrontImage  string
	AadharBackImage   string
	ProfileImage      string
	EmailOtp          *string
	EmailOtpExpiresAt *time.Time
	EmailVerified     bool
	PhoneOtp          *string
	PhoneOtpExpiresAt *time.Time
	PhoneVerified     bool
	FirebaseToken     string
	Wallet            float64
	AdminVerified     AdminVerification
	PaymentId         string
	PaymentStatus     PaymentStatus
	PaymentDate       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
