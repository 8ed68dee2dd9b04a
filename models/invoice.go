package models

// Invoice is a standalone billing record; no code path computes its totals
// from booking data.
type Invoice struct {
	ID            uint     `gorm:"primaryKey;column:invoice_no" json:"invoice_no"`
	RoomCharge    *float64 `gorm:"column:room_charge" json:"room_charge,omitempty"`
	TotalAmount   *float64 `gorm:"column:total_amount" json:"total_amount,omitempty"`
	Tax           *float64 `gorm:"column:tax" json:"tax,omitempty"`
	ServiceCharge *float64 `gorm:"column:service_charge" json:"service_charge,omitempty"`
	IssueDate     string   `gorm:"column:issue_date;size:32" json:"issue_date"`
	BookingID     *uint    `gorm:"column:booking_id;index" json:"booking_id,omitempty"`
}

func (Invoice) TableName() string { return "invoices" }
