package model

import (
	"time"
)

// Company is the tenant root. Every user, campaign and brand profile
// belongs to exactly one company; the company itself is never deleted.
type Company struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	CompanyNameMinLen = 2
	CompanyNameMaxLen = 100
)

// ValidCompanyName reports whether a trimmed company name is within range
func ValidCompanyName(name string) bool {
	return len(name) >= CompanyNameMinLen && len(name) <= CompanyNameMaxLen
}
