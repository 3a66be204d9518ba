package model

import (
	"regexp"
	"time"
)

// Roles. "admin" is platform-wide; within a company it carries the same
// powers as company_admin and no cross-tenant reach.
const (
	RoleUser         = "user"
	RoleCompanyAdmin = "company_admin"
	RoleAdmin        = "admin"
)

// User represents an account. CompanyID is nullable: an account may exist
// without a company, but every tenant-scoped operation requires one.
// Email uniqueness is global, not per-company.
type User struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name" gorm:"type:varchar(50);not null"`
	Email      string     `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Password   string     `json:"-" gorm:"type:varchar(255);not null"`
	Role       string     `json:"role" gorm:"type:varchar(20);default:'user'"`
	IsVerified bool       `json:"isVerified" gorm:"default:false"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	CompanyID  *uint      `json:"companyId,omitempty" gorm:"index"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

const (
	UserNameMinLen = 2
	UserNameMaxLen = 50
	PasswordMinLen = 6
	PasswordMaxLen = 100
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidUserName reports whether a user name is within range
func ValidUserName(name string) bool {
	return len(name) >= UserNameMinLen && len(name) <= UserNameMaxLen
}

// ValidEmail reports whether the string is a plausible email address
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword reports whether a plaintext password meets the policy
func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLen && len(password) <= PasswordMaxLen
}

// CanManageCompany reports whether the user may perform company-admin
// operations: invite, promote, list users.
func (u *User) CanManageCompany() bool {
	return u.Role == RoleCompanyAdmin || u.Role == RoleAdmin
}

// CompanyRef implements Owned for the promote target lookup. Users
// without a company resolve to 0, which never matches a real company id.
func (u User) CompanyRef() uint {
	if u.CompanyID == nil {
		return 0
	}
	return *u.CompanyID
}
