package models

// BelongTo assigns a physical room unit to a booking. It is informational:
// nothing reconciles it with Booking.RoomID, which stays authoritative.
type BelongTo struct {
	BookingID uint `gorm:"primaryKey;column:booking_id" json:"booking_id"`
	RoomID    uint `gorm:"primaryKey;column:room_id" json:"room_id"`

	Booking Booking  `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
	Unit    RoomUnit `gorm:"foreignKey:RoomID;references:ID" json:"unit,omitempty"`
}

func (BelongTo) TableName() string { return "belong_to" }
