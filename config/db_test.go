package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hotel-booking/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	assert.NoError(t, err)
	return db
}

func TestMigrateLegacyBookings(t *testing.T) {
	db := openTestDB(t)

	err := db.Exec(`CREATE TABLE bookings (
		id INTEGER PRIMARY KEY,
		check_in TEXT,
		check_out TEXT,
		room_id INTEGER,
		created_at DATETIME
	)`).Error
	assert.NoError(t, err)
	err = db.Exec(`INSERT INTO bookings (id, check_in, check_out, room_id, created_at)
		VALUES (7, '2026-05-01', '2026-05-04', 2, '2026-04-20 10:00:00')`).Error
	assert.NoError(t, err)

	migrateLegacyBookings(db)

	var booking models.Booking
	err = db.First(&booking, "booking_id = ?", 7).Error
	assert.NoError(t, err)
	assert.Equal(t, "2026-05-01", booking.CheckinDate)
	assert.Equal(t, "2026-05-04", booking.CheckoutDate)
	assert.Equal(t, uint(2), booking.RoomID)

	assert.False(t, db.Migrator().HasTable("bookings_old"))
}

func TestMigrateLegacyBookingsSkipsCurrentLayout(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.AutoMigrate(&models.Booking{}))

	row := models.Booking{CheckinDate: "2026-06-01", CheckoutDate: "2026-06-02", RoomID: 1, Reserved: true}
	assert.NoError(t, db.Create(&row).Error)

	migrateLegacyBookings(db)

	var count int64
	assert.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedDatabaseIdempotent(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, AutoMigrateAll(db))

	SeedDatabase(db)
	SeedDatabase(db)

	var userCount, roomCount int64
	assert.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.NoError(t, db.Model(&models.RoomType{}).Count(&roomCount).Error)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(3), roomCount)

	var admin models.User
	assert.NoError(t, db.First(&admin, "username = ?", "admin").Error)
	assert.True(t, admin.IsAdmin)
}
