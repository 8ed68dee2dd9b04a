package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-booking/models"
)

func TestServiceCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillingService(db)

	price := 25.0
	row, err := svc.CreateService(models.Service{ServiceName: "Laundry", UnitPrice: &price})
	assert.NoError(t, err)
	assert.NotZero(t, row.ID)

	_, err = svc.CreateService(models.Service{ServiceName: " "})
	assert.ErrorIs(t, err, ErrMissingField)

	err = svc.UpdateService(row.ID, models.Service{ServiceName: "Dry Cleaning", UnitPrice: &price})
	assert.NoError(t, err)

	got, err := svc.GetService(row.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Dry Cleaning", got.ServiceName)

	assert.NoError(t, svc.DeleteService(row.ID))
	assert.ErrorIs(t, svc.DeleteService(row.ID), ErrNotFound)
}

func TestInvoiceCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillingService(db)

	total := 320.0
	inv, err := svc.CreateInvoice(models.Invoice{TotalAmount: &total, IssueDate: "2026-08-01"})
	assert.NoError(t, err)
	assert.NotZero(t, inv.ID)

	err = svc.UpdateInvoice(inv.ID, models.Invoice{TotalAmount: &total, IssueDate: "2026-08-02"})
	assert.NoError(t, err)

	got, err := svc.GetInvoice(inv.ID)
	assert.NoError(t, err)
	assert.Equal(t, "2026-08-02", got.IssueDate)

	assert.ErrorIs(t, svc.UpdateInvoice(999, models.Invoice{}), ErrNotFound)

	assert.NoError(t, svc.DeleteInvoice(inv.ID))
	_, err = svc.GetInvoice(inv.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGuestCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillingService(db)

	guest, err := svc.CreateGuest(models.Guest{Name: "Heidi", Email: "heidi@example.com"})
	assert.NoError(t, err)
	assert.NotZero(t, guest.ID)

	inv, err := svc.CreateInvoice(models.Invoice{IssueDate: "2026-08-10"})
	assert.NoError(t, err)

	err = svc.UpdateGuest(guest.ID, models.Guest{Name: "Heidi", Email: "heidi@example.com", InvoiceNo: &inv.ID})
	assert.NoError(t, err)

	got, err := svc.GetGuest(guest.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got.InvoiceNo)
	assert.Equal(t, inv.ID, *got.InvoiceNo)

	assert.NoError(t, svc.DeleteGuest(guest.ID))
	assert.ErrorIs(t, svc.DeleteGuest(guest.ID), ErrNotFound)

	// Deleting the guest leaves the invoice in place.
	_, err = svc.GetInvoice(inv.ID)
	assert.NoError(t, err)
}
