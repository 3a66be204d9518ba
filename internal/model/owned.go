package model

import (
	"gorm.io/gorm"
)

// Owned is implemented by models that carry an owning company id.
type Owned interface {
	CompanyRef() uint
}

// FindOwned loads a record by primary key and verifies it belongs to the
// given company. A missing row and a row owned by another company are
// indistinguishable to the caller, so cross-tenant requests cannot probe
// for existence through status codes.
func FindOwned[T Owned](db *gorm.DB, id uint, companyID uint) (T, bool) {
	var record T
	if err := db.First(&record, id).Error; err != nil {
		var zero T
		return zero, false
	}
	if record.CompanyRef() != companyID {
		var zero T
		return zero, false
	}
	return record, true
}
