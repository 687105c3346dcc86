package entity

import (
	"time"

	"github.com/google/uuid"
)

// Policy is keyed by type ("privacy", "terms", ...), one document per type.
type Policy struct {
	Id        uuid.UUID
	Type      string
	Content   string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FAQ struct {
	Id        uuid.UUID
	Question  string
	Answer    string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactInfo is a singleton document: the office details shown on the
// contact page.
type ContactInfo struct {
	Id             uuid.UUID
	OfficeLocation string
	Email          string
	Phone          string
	UpdatedAt      time.Time
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	Id        uuid.UUID
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Message   string
	CreatedAt time.Time
}
