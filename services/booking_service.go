package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-booking/models"
)

// BookingService owns the booking ledger: booking rows, their lifecycle
// flags, and the belong_to unit assignments.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateBooking inserts a reservation with reserved=true and every other
// flag false. No overlap check: the same room and date range can be booked
// any number of times.
func (s *BookingService) CreateBooking(checkin, checkout string, roomID uint, userID, guestID *uint) (models.Booking, error) {
	checkin = strings.TrimSpace(checkin)
	checkout = strings.TrimSpace(checkout)
	if checkin == "" || checkout == "" {
		return models.Booking{}, ErrMissingField
	}

	booking := models.Booking{
		CheckinDate:   checkin,
		CheckoutDate:  checkout,
		RoomID:        roomID,
		UserID:        userID,
		GuestID:       guestID,
		Reserved:      true,
		ReferenceCode: newReferenceCode(),
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) ListBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Room").Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetBooking(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Room").First(&booking, "booking_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking, ErrNotFound
	}
	return booking, err
}

// UpdateBooking is a full-row replace of the editable columns.
func (s *BookingService) UpdateBooking(id uint, booking models.Booking) error {
	res := s.DB.Model(&models.Booking{}).Where("booking_id = ?", id).
		Updates(map[string]interface{}{
			"checkin_date":  booking.CheckinDate,
			"checkout_date": booking.CheckoutDate,
			"room_id":       booking.RoomID,
			"user_id":       booking.UserID,
			"guest_id":      booking.GuestID,
			"checked_in":    booking.CheckedIn,
			"checked_out":   booking.CheckedOut,
			"reserved":      booking.Reserved,
			"cancelled":     booking.Cancelled,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BookingService) DeleteBooking(id uint) error {
	res := s.DB.Where("booking_id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkCheckedIn sets checked_in unconditionally: no guard that the booking
// was reserved or that the check-in date has arrived.
func (s *BookingService) MarkCheckedIn(id uint) error {
	return s.setFlags(id, map[string]interface{}{"checked_in": true})
}

// MarkCheckedOut sets checked_out unconditionally, even when checked_in is
// still false.
func (s *BookingService) MarkCheckedOut(id uint) error {
	return s.setFlags(id, map[string]interface{}{"checked_out": true})
}

// CancelBooking sets cancelled and clears reserved. It does not touch
// checked_in/checked_out, so a checked-in stay can still end up cancelled.
func (s *BookingService) CancelBooking(id uint) error {
	return s.setFlags(id, map[string]interface{}{"cancelled": true, "reserved": false})
}

func (s *BookingService) setFlags(id uint, flags map[string]interface{}) error {
	res := s.DB.Model(&models.Booking{}).Where("booking_id = ?", id).Updates(flags)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Unit assignments (belong_to). Informational only; Booking.RoomID stays the
// authoritative room reference.

func (s *BookingService) ListAssignments() ([]models.BelongTo, error) {
	var rows []models.BelongTo
	err := s.DB.Preload("Unit").Preload("Unit.RoomType").
		Order("booking_id DESC").Find(&rows).Error
	return rows, err
}

// AssignUnit links a room unit to a booking; an existing link is left alone,
// mirroring INSERT OR IGNORE.
func (s *BookingService) AssignUnit(bookingID, unitID uint) error {
	if bookingID == 0 || unitID == 0 {
		return ErrMissingField
	}
	row := models.BelongTo{BookingID: bookingID, RoomID: unitID}
	err := s.DB.FirstOrCreate(&row, models.BelongTo{BookingID: bookingID, RoomID: unitID}).Error
	if isDuplicateErr(err) {
		return nil
	}
	return err
}

func (s *BookingService) UnassignUnit(bookingID, unitID uint) error {
	return s.DB.Where("booking_id = ? AND room_id = ?", bookingID, unitID).
		Delete(&models.BelongTo{}).Error
}
