package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

// BillingController manages services, invoices and guests.
type BillingController struct {
	Billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{Billing: billing}
}

// Services

func (bc *BillingController) ServiceList(c *gin.Context) {
	rows, err := bc.Billing.ListServices()
	if err != nil {
		log.Error().Err(err).Msg("failed to list services")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "admin_services.html", gin.H{"Title": "Services", "Services": rows})
}

func (bc *BillingController) ServiceCreateForm(c *gin.Context) {
	render(c, "edit_service.html", gin.H{"Title": "Create Service"})
}

func serviceFromForm(c *gin.Context) models.Service {
	return models.Service{
		ServiceName: strings.TrimSpace(c.PostForm("service_name")),
		Description: c.PostForm("description"),
		UnitPrice:   utils.FormFloat(c, "unit_price"),
		BookingID:   utils.FormUint(c, "booking_id"),
	}
}

func (bc *BillingController) ServiceCreate(c *gin.Context) {
	svc := serviceFromForm(c)
	if _, err := bc.Billing.CreateService(svc); err != nil {
		if errors.Is(err, services.ErrMissingField) {
			utils.Flash(c, "danger", "Service name is required")
			render(c, "edit_service.html", gin.H{"Title": "Create Service", "Service": svc})
			return
		}
		log.Error().Err(err).Msg("failed to create service")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Service created")
	c.Redirect(http.StatusFound, "/admin/services")
}

func (bc *BillingController) ServiceEditForm(c *gin.Context) {
	svc, err := bc.Billing.GetService(utils.ParamUint(c, "id"))
	if err != nil {
		utils.Flash(c, "danger", "Service not found")
		c.Redirect(http.StatusFound, "/admin/services")
		return
	}
	render(c, "edit_service.html", gin.H{"Title": "Edit Service", "Service": svc})
}

func (bc *BillingController) ServiceEdit(c *gin.Context) {
	err := bc.Billing.UpdateService(utils.ParamUint(c, "id"), serviceFromForm(c))
	bc.redirectResult(c, err, "Service updated", "Service not found", "/admin/services")
}

func (bc *BillingController) ServiceDelete(c *gin.Context) {
	err := bc.Billing.DeleteService(utils.ParamUint(c, "id"))
	bc.redirectResult(c, err, "Service deleted", "Service not found", "/admin/services")
}

// Invoices

func (bc *BillingController) InvoiceList(c *gin.Context) {
	rows, err := bc.Billing.ListInvoices()
	if err != nil {
		log.Error().Err(err).Msg("failed to list invoices")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "admin_invoices.html", gin.H{"Title": "Invoices", "Invoices": rows})
}

func (bc *BillingController) InvoiceCreateForm(c *gin.Context) {
	render(c, "edit_invoice.html", gin.H{"Title": "Create Invoice"})
}

func invoiceFromForm(c *gin.Context) models.Invoice {
	return models.Invoice{
		RoomCharge:    utils.FormFloat(c, "room_charge"),
		TotalAmount:   utils.FormFloat(c, "total_amount"),
		Tax:           utils.FormFloat(c, "tax"),
		ServiceCharge: utils.FormFloat(c, "service_charge"),
		IssueDate:     strings.TrimSpace(c.PostForm("issue_date")),
		BookingID:     utils.FormUint(c, "booking_id"),
	}
}

func (bc *BillingController) InvoiceCreate(c *gin.Context) {
	if _, err := bc.Billing.CreateInvoice(invoiceFromForm(c)); err != nil {
		log.Error().Err(err).Msg("failed to create invoice")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Invoice created")
	c.Redirect(http.StatusFound, "/admin/invoices")
}

func (bc *BillingController) InvoiceEditForm(c *gin.Context) {
	inv, err := bc.Billing.GetInvoice(utils.ParamUint(c, "id"))
	if err != nil {
		utils.Flash(c, "danger", "Invoice not found")
		c.Redirect(http.StatusFound, "/admin/invoices")
		return
	}
	render(c, "edit_invoice.html", gin.H{"Title": "Edit Invoice", "Invoice": inv})
}

func (bc *BillingController) InvoiceEdit(c *gin.Context) {
	err := bc.Billing.UpdateInvoice(utils.ParamUint(c, "id"), invoiceFromForm(c))
	bc.redirectResult(c, err, "Invoice updated", "Invoice not found", "/admin/invoices")
}

func (bc *BillingController) InvoiceDelete(c *gin.Context) {
	err := bc.Billing.DeleteInvoice(utils.ParamUint(c, "id"))
	bc.redirectResult(c, err, "Invoice deleted", "Invoice not found", "/admin/invoices")
}

// Guests

func (bc *BillingController) GuestList(c *gin.Context) {
	rows, err := bc.Billing.ListGuests()
	if err != nil {
		log.Error().Err(err).Msg("failed to list guests")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "admin_guests.html", gin.H{"Title": "Guests", "Guests": rows})
}

func (bc *BillingController) GuestCreateForm(c *gin.Context) {
	invoices, err := bc.Billing.ListInvoices()
	if err != nil {
		log.Error().Err(err).Msg("failed to list invoices")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "edit_guest.html", gin.H{"Title": "Create Guest", "Invoices": invoices})
}

func guestFromForm(c *gin.Context) models.Guest {
	return models.Guest{
		InvoiceNo: utils.FormUint(c, "invoice_no"),
		Name:      strings.TrimSpace(c.PostForm("name")),
		Address:   c.PostForm("address"),
		Email:     strings.TrimSpace(c.PostForm("email")),
		NID:       strings.TrimSpace(c.PostForm("nid")),
		Phone:     strings.TrimSpace(c.PostForm("phone")),
	}
}

func (bc *BillingController) GuestCreate(c *gin.Context) {
	if _, err := bc.Billing.CreateGuest(guestFromForm(c)); err != nil {
		log.Error().Err(err).Msg("failed to create guest")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Guest created")
	c.Redirect(http.StatusFound, "/admin/guests")
}

func (bc *BillingController) GuestEditForm(c *gin.Context) {
	guest, err := bc.Billing.GetGuest(utils.ParamUint(c, "id"))
	if err != nil {
		utils.Flash(c, "danger", "Guest not found")
		c.Redirect(http.StatusFound, "/admin/guests")
		return
	}
	invoices, err := bc.Billing.ListInvoices()
	if err != nil {
		log.Error().Err(err).Msg("failed to list invoices")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "edit_guest.html", gin.H{"Title": "Edit Guest", "Guest": guest, "Invoices": invoices})
}

func (bc *BillingController) GuestEdit(c *gin.Context) {
	err := bc.Billing.UpdateGuest(utils.ParamUint(c, "id"), guestFromForm(c))
	bc.redirectResult(c, err, "Guest updated", "Guest not found", "/admin/guests")
}

func (bc *BillingController) GuestDelete(c *gin.Context) {
	err := bc.Billing.DeleteGuest(utils.ParamUint(c, "id"))
	bc.redirectResult(c, err, "Guest deleted", "Guest not found", "/admin/guests")
}

func (bc *BillingController) redirectResult(c *gin.Context, err error, success, missing, target string) {
	switch {
	case err == nil:
		utils.Flash(c, "success", success)
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", missing)
	default:
		log.Error().Err(err).Msg("billing operation failed")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, target)
}
