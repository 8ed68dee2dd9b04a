package models

// Guest is a billing-adjacent person record, optionally tied to an invoice.
type Guest struct {
	ID        uint   `gorm:"primaryKey;column:guest_id" json:"guest_id"`
	InvoiceNo *uint  `gorm:"column:invoice_no;index" json:"invoice_no,omitempty"`
	Name      string `gorm:"size:255" json:"name"`
	Address   string `gorm:"type:text" json:"address"`
	Email     string `gorm:"size:150" json:"email"`
	NID       string `gorm:"column:nid;size:64" json:"nid"`
	Phone     string `gorm:"size:50" json:"phone"`
}

func (Guest) TableName() string { return "guests" }
