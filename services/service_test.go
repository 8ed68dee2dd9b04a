package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hotel-booking/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserPhone{},
		&models.RoomType{},
		&models.RoomUnit{},
		&models.Booking{},
		&models.BelongTo{},
		&models.Employee{},
		&models.HiredAs{},
		&models.Service{},
		&models.Invoice{},
		&models.Guest{},
	)
	assert.NoError(t, err)
	return db
}

func seedRoomType(t *testing.T, db *gorm.DB, name string, price float64) models.RoomType {
	rt := models.RoomType{Name: name, Price: price}
	assert.NoError(t, db.Create(&rt).Error)
	return rt
}
