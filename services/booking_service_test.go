package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-booking/models"
)

func TestCreateBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, "Deluxe", 120)

	booking, err := svc.CreateBooking("2026-09-01", "2026-09-05", rt.ID, nil, nil)
	assert.NoError(t, err)
	assert.NotZero(t, booking.ID)
	assert.True(t, booking.Reserved)
	assert.False(t, booking.CheckedIn)
	assert.False(t, booking.CheckedOut)
	assert.False(t, booking.Cancelled)
	assert.Contains(t, booking.ReferenceCode, "BK-")
	assert.Equal(t, models.StatusReserved, booking.Status())
}

func TestCreateBookingMissingDates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, "Deluxe", 120)

	_, err := svc.CreateBooking("", "2026-09-05", rt.ID, nil, nil)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.CreateBooking("2026-09-01", "  ", rt.ID, nil, nil)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestCreateBookingAllowsOverlap(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, "Deluxe", 120)

	first, err := svc.CreateBooking("2026-09-01", "2026-09-05", rt.ID, nil, nil)
	assert.NoError(t, err)
	second, err := svc.CreateBooking("2026-09-01", "2026-09-05", rt.ID, nil, nil)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	bookings, err := svc.ListBookings()
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, "Standard", 80)

	booking, err := svc.CreateBooking("2026-09-01", "2026-09-03", rt.ID, nil, nil)
	assert.NoError(t, err)

	assert.NoError(t, svc.MarkCheckedOut(booking.ID))

	got, err := svc.GetBooking(booking.ID)
	assert.NoError(t, err)
	assert.False(t, got.CheckedIn)
	assert.True(t, got.CheckedOut)
	assert.Equal(t, models.StatusCheckedOut, got.Status())
}

func TestCancelAfterCheckIn(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, "Standard", 80)

	booking, err := svc.CreateBooking("2026-09-01", "2026-09-03", rt.ID, nil, nil)
	assert.NoError(t, err)

	assert.NoError(t, svc.MarkCheckedIn(booking.ID))
	assert.NoError(t, svc.CancelBooking(booking.ID))

	got, err := svc.GetBooking(booking.ID)
	assert.NoError(t, err)
	assert.True(t, got.Cancelled)
	assert.True(t, got.CheckedIn)
	assert.False(t, got.Reserved)
	assert.Equal(t, models.StatusCancelled, got.Status())
}

func TestLifecycleMissingBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)

	assert.ErrorIs(t, svc.MarkCheckedIn(999), ErrNotFound)
	assert.ErrorIs(t, svc.MarkCheckedOut(999), ErrNotFound)
	assert.ErrorIs(t, svc.CancelBooking(999), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteBooking(999), ErrNotFound)

	_, err := svc.GetBooking(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBookingReplacesFlags(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, "Suite", 240)

	booking, err := svc.CreateBooking("2026-09-01", "2026-09-03", rt.ID, nil, nil)
	assert.NoError(t, err)

	err = svc.UpdateBooking(booking.ID, models.Booking{
		CheckinDate:  "2026-10-01",
		CheckoutDate: "2026-10-04",
		RoomID:       rt.ID,
		CheckedIn:    true,
		Reserved:     false,
	})
	assert.NoError(t, err)

	got, err := svc.GetBooking(booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, "2026-10-01", got.CheckinDate)
	assert.True(t, got.CheckedIn)
	assert.False(t, got.Reserved)
}

func TestAssignUnitIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	rt := seedRoomType(t, db, "Deluxe", 120)

	unit := models.RoomUnit{TypeID: &rt.ID, RoomNo: "101"}
	assert.NoError(t, db.Create(&unit).Error)

	booking, err := svc.CreateBooking("2026-09-01", "2026-09-03", rt.ID, nil, nil)
	assert.NoError(t, err)

	assert.NoError(t, svc.AssignUnit(booking.ID, unit.ID))
	assert.NoError(t, svc.AssignUnit(booking.ID, unit.ID))

	rows, err := svc.ListAssignments()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	assert.NoError(t, svc.UnassignUnit(booking.ID, unit.ID))
	rows, err = svc.ListAssignments()
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAssignUnitMissingIDs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)

	assert.ErrorIs(t, svc.AssignUnit(0, 1), ErrMissingField)
	assert.ErrorIs(t, svc.AssignUnit(1, 0), ErrMissingField)
}
