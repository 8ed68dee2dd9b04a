package models

// RoomType is a catalog entry describing a class of room, not a physical
// room. The table keeps the legacy name "rooms"; room units and bookings
// reference it by id.
type RoomType struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `gorm:"size:512" json:"image"`
}

func (RoomType) TableName() string { return "rooms" }
