package model

import (
	"time"

	"gorm.io/datatypes"
)

// Template is a global, tenant-independent ad layout from the seeded
// catalog. Templates are read-only to the API; retiring one means
// flipping IsActive, never deleting the row.
type Template struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Category    string         `json:"category" gorm:"type:varchar(20);not null;index"`
	Description string         `json:"description" gorm:"type:text"`
	Thumbnail   string         `json:"thumbnail"`
	Layout      datatypes.JSON `json:"layout"`
	StyleGuide  datatypes.JSON `json:"styleGuide"`
	IsPremium   bool           `json:"isPremium" gorm:"default:false"`
	IsActive    bool           `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TemplateCategories are the accepted values for Template.Category
var TemplateCategories = []string{"social", "email", "display", "video", "print"}

// ValidTemplateCategory reports whether the category is one of the accepted values
func ValidTemplateCategory(category string) bool {
	for _, c := range TemplateCategories {
		if category == c {
			return true
		}
	}
	return false
}
