package specification

import "gorm.io/gorm"

type ByPhone struct {
	Phone string
}

func (s ByPhone) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phone = ?", s.Phone)
}

type ByEmail struct {
	Field string
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(s.Field+" = ?", s.Email)
}

// SearchByNameOrPhone matches admin dashboard search input against
// the display name and phone columns.
type SearchByNameOrPhone struct {
	NameField string
	Term      string
}

func (s SearchByNameOrPhone) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where(s.NameField+" ILIKE ? OR phone ILIKE ?", pattern, pattern)
}
