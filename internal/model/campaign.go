package model

import (
	"time"
)

// Campaign is a company-scoped resource. CompanyID is set at creation and
// never changes; every single-campaign operation verifies it against the
// requester's company before touching the row.
type Campaign struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(150);not null"`
	Objective *string   `json:"objective" gorm:"type:text"`
	Budget    *float64  `json:"budget" gorm:"type:decimal(12,2)"`
	CompanyID uint      `json:"companyId" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	CampaignNameMinLen = 2
	CampaignNameMaxLen = 150
)

// ValidCampaignName reports whether a campaign name is within range
func ValidCampaignName(name string) bool {
	return len(name) >= CampaignNameMinLen && len(name) <= CampaignNameMaxLen
}

// CompanyRef implements Owned
func (c Campaign) CompanyRef() uint {
	return c.CompanyID
}
