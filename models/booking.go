package models

import "time"

// Booking status labels derived from the lifecycle flags.
const (
	StatusCancelled  = "Cancelled"
	StatusCheckedOut = "Checked-Out"
	StatusCheckedIn  = "Checked-In"
	StatusReserved   = "Reserved"
	StatusNone       = "None"
)

// Booking is a reservation over a date range. RoomID points at the RoomType
// catalog entry, not at a physical unit; unit assignments live in belong_to.
// The four lifecycle flags are independently settable, so contradictory
// combinations are representable — Status() only picks a display label.
type Booking struct {
	ID           uint   `gorm:"primaryKey;column:booking_id" json:"booking_id"`
	CheckinDate  string `gorm:"column:checkin_date;size:32;not null" json:"checkin_date"`
	CheckoutDate string `gorm:"column:checkout_date;size:32;not null" json:"checkout_date"`
	RoomID       uint   `gorm:"column:room_id;index;not null" json:"room_id"`
	UserID       *uint  `gorm:"column:user_id;index" json:"user_id,omitempty"`
	GuestID      *uint  `gorm:"column:guest_id;index" json:"guest_id,omitempty"`

	CheckedIn  bool `gorm:"column:checked_in;default:false" json:"checked_in"`
	CheckedOut bool `gorm:"column:checked_out;default:false" json:"checked_out"`
	Reserved   bool `gorm:"default:true" json:"reserved"`
	Cancelled  bool `gorm:"default:false" json:"cancelled"`

	ReferenceCode string    `gorm:"column:reference_code;size:64" json:"reference_code,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`

	Room  RoomType   `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Units []BelongTo `gorm:"foreignKey:BookingID" json:"units,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

// Status derives a single label from the flags for list views. Precedence
// follows the lifecycle end-state: cancelled wins, then checked-out, then
// checked-in, then reserved.
func (b Booking) Status() string {
	switch {
	case b.Cancelled:
		return StatusCancelled
	case b.CheckedOut:
		return StatusCheckedOut
	case b.CheckedIn:
		return StatusCheckedIn
	case b.Reserved:
		return StatusReserved
	}
	return StatusNone
}
