package model

import (
	"time"

	"github.com/google/uuid"
)

type Agent struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName          string    `gorm:"type:varchar(255)"`
	AgentEmail        string    `gorm:"type:varchar(255);uniqueIndex"`
	Gender            string    `gorm:"type:varchar(10)"`
	Phone             string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Sector            string    `gorm:"type:varchar(100)"`
	AadharNumber      string    `gorm:"type:varchar(20)"`
	AadharFrontImage  string    `gorm:"type:text;not null;default:''"`
	AadharBackImage   string    `gorm:"type:text;not null;default:''"`
	ProfileImage      string    `gorm:"type:text;not null;default:''"`
	EmailOtp          *string   `gorm:"type:varchar(10)"`
	EmailOtpExpiresAt *time.Time
	EmailVerified     bool    `gorm:"default:false"`
	PhoneOtp          *string `gorm:"type:varchar(10)"`
	PhoneOtpExpiresAt *time.Time
	PhoneVerified     bool    `gorm:"default:false"`
	FirebaseToken     string  `gorm:"type:text"`
	Wallet            float64 `gorm:"type:numeric(12,2);default:0"`
	AdminVerified     string  `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentId         string  `gorm:"type:varchar(100)"`
	PaymentStatus     string  `gorm:"type:varchar(20)"`
	PaymentDate       *time.Time
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Agent) TableName() string {
	return "agents"
}
