package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Company{}, &User{}, &Campaign{}))
	return db
}

func TestFindOwned(t *testing.T) {
	db := openTestDB(t)

	campaign := Campaign{Name: "Launch", CompanyID: 1}
	require.NoError(t, db.Create(&campaign).Error)

	got, found := FindOwned[Campaign](db, campaign.ID, 1)
	require.True(t, found)
	assert.Equal(t, "Launch", got.Name)
}

func TestFindOwnedWrongCompany(t *testing.T) {
	db := openTestDB(t)

	campaign := Campaign{Name: "Launch", CompanyID: 1}
	require.NoError(t, db.Create(&campaign).Error)

	// A foreign row and a missing row both come back not-found.
	_, foreignFound := FindOwned[Campaign](db, campaign.ID, 2)
	_, missingFound := FindOwned[Campaign](db, 999999, 2)
	assert.False(t, foreignFound)
	assert.False(t, missingFound)
}

func TestFindOwnedUserWithoutCompany(t *testing.T) {
	db := openTestDB(t)

	user := User{Name: "Solo", Email: "solo@example.com", Password: "x", Role: RoleUser}
	require.NoError(t, db.Create(&user).Error)

	// CompanyRef of a companyless user is 0, which never matches.
	_, found := FindOwned[User](db, user.ID, 1)
	assert.False(t, found)
}

func TestCanManageCompany(t *testing.T) {
	assert.False(t, (&User{Role: RoleUser}).CanManageCompany())
	assert.True(t, (&User{Role: RoleCompanyAdmin}).CanManageCompany())
	assert.True(t, (&User{Role: RoleAdmin}).CanManageCompany())
}
