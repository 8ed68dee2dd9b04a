package models

// Service is a billable extra optionally attached to a booking.
type Service struct {
	ID          uint     `gorm:"primaryKey;column:service_id" json:"service_id"`
	ServiceName string   `gorm:"column:service_name;size:255;not null" json:"service_name"`
	Description string   `gorm:"type:text" json:"description"`
	UnitPrice   *float64 `gorm:"column:unit_price" json:"unit_price,omitempty"`
	BookingID   *uint    `gorm:"column:booking_id;index" json:"booking_id,omitempty"`
}

func (Service) TableName() string { return "services" }
