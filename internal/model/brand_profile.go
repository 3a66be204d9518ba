package model

import (
	"regexp"
	"time"

	"gorm.io/datatypes"
)

// BrandProfile holds a company's brand assets and guidelines. At most one
// profile exists per company (unique companyId); writes go through a
// find-or-create-then-partial-merge upsert.
type BrandProfile struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	CompanyID       uint           `json:"companyId" gorm:"uniqueIndex;not null"`
	BrandName       string         `json:"brandName"`
	LogoURL         string         `json:"logoUrl"`
	PrimaryColor    string         `json:"primaryColor"`
	SecondaryColor  string         `json:"secondaryColor"`
	AccentColor     string         `json:"accentColor"`
	FontFamily      string         `json:"fontFamily" gorm:"default:'Arial, sans-serif'"`
	BrandVoice      string         `json:"brandVoice"`
	Tagline         string         `json:"tagline"`
	BrandGuidelines string         `json:"brandGuidelines" gorm:"type:text"`
	CustomData      datatypes.JSON `json:"customData"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// BrandVoices are the accepted values for BrandProfile.BrandVoice
var BrandVoices = []string{"professional", "casual", "friendly", "authoritative", "playful", "luxury"}

// ValidHexColor reports whether the string is a #RRGGBB color
func ValidHexColor(color string) bool {
	return hexColorPattern.MatchString(color)
}

// ValidBrandVoice reports whether the voice is one of the accepted values
func ValidBrandVoice(voice string) bool {
	for _, v := range BrandVoices {
		if voice == v {
			return true
		}
	}
	return false
}

// CompanyRef implements Owned
func (b BrandProfile) CompanyRef() uint {
	return b.CompanyID
}
