package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotel-booking/models"
)

// BillingService manages services, invoices and guests. These are standalone
// CRUD tables: nothing computes invoice totals from bookings or validates
// that sums reconcile.
type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

func (s *BillingService) ListServices() ([]models.Service, error) {
	var rows []models.Service
	err := s.DB.Find(&rows).Error
	return rows, err
}

func (s *BillingService) GetService(id uint) (models.Service, error) {
	var svc models.Service
	err := s.DB.First(&svc, "service_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return svc, ErrNotFound
	}
	return svc, err
}

func (s *BillingService) CreateService(svc models.Service) (models.Service, error) {
	if strings.TrimSpace(svc.ServiceName) == "" {
		return models.Service{}, ErrMissingField
	}
	if err := s.DB.Create(&svc).Error; err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

func (s *BillingService) UpdateService(id uint, svc models.Service) error {
	res := s.DB.Model(&models.Service{}).Where("service_id = ?", id).
		Updates(map[string]interface{}{
			"service_name": svc.ServiceName,
			"description":  svc.Description,
			"unit_price":   svc.UnitPrice,
			"booking_id":   svc.BookingID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BillingService) DeleteService(id uint) error {
	res := s.DB.Where("service_id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BillingService) ListInvoices() ([]models.Invoice, error) {
	var rows []models.Invoice
	err := s.DB.Order("issue_date DESC").Find(&rows).Error
	return rows, err
}

func (s *BillingService) GetInvoice(id uint) (models.Invoice, error) {
	var inv models.Invoice
	err := s.DB.First(&inv, "invoice_no = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return inv, ErrNotFound
	}
	return inv, err
}

func (s *BillingService) CreateInvoice(inv models.Invoice) (models.Invoice, error) {
	if err := s.DB.Create(&inv).Error; err != nil {
		return models.Invoice{}, err
	}
	return inv, nil
}

func (s *BillingService) UpdateInvoice(id uint, inv models.Invoice) error {
	res := s.DB.Model(&models.Invoice{}).Where("invoice_no = ?", id).
		Updates(map[string]interface{}{
			"room_charge":    inv.RoomCharge,
			"total_amount":   inv.TotalAmount,
			"tax":            inv.Tax,
			"service_charge": inv.ServiceCharge,
			"issue_date":     inv.IssueDate,
			"booking_id":     inv.BookingID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BillingService) DeleteInvoice(id uint) error {
	res := s.DB.Where("invoice_no = ?", id).Delete(&models.Invoice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BillingService) ListGuests() ([]models.Guest, error) {
	var rows []models.Guest
	err := s.DB.Order("guest_id DESC").Find(&rows).Error
	return rows, err
}

func (s *BillingService) GetGuest(id uint) (models.Guest, error) {
	var guest models.Guest
	err := s.DB.First(&guest, "guest_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return guest, ErrNotFound
	}
	return guest, err
}

func (s *BillingService) CreateGuest(guest models.Guest) (models.Guest, error) {
	if err := s.DB.Create(&guest).Error; err != nil {
		return models.Guest{}, err
	}
	return guest, nil
}

func (s *BillingService) UpdateGuest(id uint, guest models.Guest) error {
	res := s.DB.Model(&models.Guest{}).Where("guest_id = ?", id).
		Updates(map[string]interface{}{
			"invoice_no": guest.InvoiceNo,
			"name":       guest.Name,
			"address":    guest.Address,
			"email":      guest.Email,
			"nid":        guest.NID,
			"phone":      guest.Phone,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BillingService) DeleteGuest(id uint) error {
	res := s.DB.Where("guest_id = ?", id).Delete(&models.Guest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
