package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName      string    `gorm:"type:varchar(255);not null;default:'Dummy'"`
	UserEmail     string    `gorm:"type:varchar(255)"`
	Dob           string    `gorm:"type:varchar(50)"`
	Gender        string    `gorm:"type:varchar(10);not null;default:'Male'"`
	Phone         string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	ProfileImage  string    `gorm:"type:text;not null;default:''"`
	Otp           *string   `gorm:"type:varchar(10)"`
	OtpExpiresAt  *time.Time
	IsVerified    bool      `gorm:"default:false"`
	FirebaseToken string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
