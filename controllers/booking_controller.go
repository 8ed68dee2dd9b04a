package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

// BookingController is the admin side of the booking ledger: list, CRUD,
// the three lifecycle actions, and the belong_to assignment pages.
type BookingController struct {
	Bookings *services.BookingService
	Rooms    *services.RoomService
}

func NewBookingController(bookings *services.BookingService, rooms *services.RoomService) *BookingController {
	return &BookingController{Bookings: bookings, Rooms: rooms}
}

func (bc *BookingController) List(c *gin.Context) {
	bookings, err := bc.Bookings.ListBookings()
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "admin_bookings.html", gin.H{"Title": "Bookings", "Bookings": bookings})
}

func (bc *BookingController) CreateForm(c *gin.Context) {
	rooms, err := bc.Rooms.ListRoomTypes()
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "edit_booking.html", gin.H{"Title": "Create Booking", "Rooms": rooms})
}

func (bc *BookingController) Create(c *gin.Context) {
	roomID := utils.FormUint(c, "room_id")
	if roomID == nil {
		utils.Flash(c, "danger", "Room is required")
		c.Redirect(http.StatusFound, "/admin/bookings/create")
		return
	}
	_, err := bc.Bookings.CreateBooking(
		c.PostForm("checkin_date"),
		c.PostForm("checkout_date"),
		*roomID,
		utils.FormUint(c, "user_id"),
		utils.FormUint(c, "guest_id"),
	)
	if err != nil {
		if errors.Is(err, services.ErrMissingField) {
			utils.Flash(c, "danger", "Check-in and check-out dates are required")
			c.Redirect(http.StatusFound, "/admin/bookings/create")
			return
		}
		log.Error().Err(err).Msg("failed to create booking")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Booking created")
	c.Redirect(http.StatusFound, "/admin/bookings")
}

func (bc *BookingController) EditForm(c *gin.Context) {
	booking, err := bc.Bookings.GetBooking(utils.ParamUint(c, "id"))
	if err != nil {
		utils.Flash(c, "danger", "Booking not found")
		c.Redirect(http.StatusFound, "/admin/bookings")
		return
	}
	rooms, err := bc.Rooms.ListRoomTypes()
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "edit_booking.html", gin.H{"Title": "Edit Booking", "Booking": booking, "Rooms": rooms})
}

func (bc *BookingController) Edit(c *gin.Context) {
	roomID := utils.FormUint(c, "room_id")
	if roomID == nil {
		utils.Flash(c, "danger", "Room is required")
		c.Redirect(http.StatusFound, "/admin/bookings")
		return
	}
	booking := models.Booking{
		CheckinDate:  c.PostForm("checkin_date"),
		CheckoutDate: c.PostForm("checkout_date"),
		RoomID:       *roomID,
		UserID:       utils.FormUint(c, "user_id"),
		GuestID:      utils.FormUint(c, "guest_id"),
		CheckedIn:    utils.FormBool(c, "checked_in"),
		CheckedOut:   utils.FormBool(c, "checked_out"),
		Reserved:     utils.FormBool(c, "reserved"),
		Cancelled:    utils.FormBool(c, "cancelled"),
	}
	bc.flashResult(c, bc.Bookings.UpdateBooking(utils.ParamUint(c, "id"), booking), "Booking updated")
}

func (bc *BookingController) Delete(c *gin.Context) {
	bc.flashResult(c, bc.Bookings.DeleteBooking(utils.ParamUint(c, "id")), "Booking deleted")
}

func (bc *BookingController) CheckIn(c *gin.Context) {
	bc.flashResult(c, bc.Bookings.MarkCheckedIn(utils.ParamUint(c, "id")), "Booking marked as checked in")
}

func (bc *BookingController) CheckOut(c *gin.Context) {
	bc.flashResult(c, bc.Bookings.MarkCheckedOut(utils.ParamUint(c, "id")), "Booking marked as checked out")
}

func (bc *BookingController) Cancel(c *gin.Context) {
	err := bc.Bookings.CancelBooking(utils.ParamUint(c, "id"))
	switch {
	case err == nil:
		utils.Flash(c, "warning", "Booking cancelled")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "Booking not found")
	default:
		log.Error().Err(err).Msg("booking cancel failed")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/bookings")
}

func (bc *BookingController) flashResult(c *gin.Context, err error, success string) {
	switch {
	case err == nil:
		utils.Flash(c, "success", success)
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "Booking not found")
	default:
		log.Error().Err(err).Msg("booking operation failed")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/bookings")
}

func (bc *BookingController) AssignmentList(c *gin.Context) {
	rows, err := bc.Bookings.ListAssignments()
	if err != nil {
		log.Error().Err(err).Msg("failed to list assignments")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "admin_belong_to.html", gin.H{"Title": "Belong To", "Rows": rows})
}

func (bc *BookingController) AssignmentCreateForm(c *gin.Context) {
	bookings, err := bc.Bookings.ListBookings()
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	units, err := bc.Rooms.ListRoomUnits()
	if err != nil {
		log.Error().Err(err).Msg("failed to list room units")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "edit_belong_to.html", gin.H{
		"Title":    "Assign Room to Booking",
		"Bookings": bookings,
		"Units":    units,
	})
}

func (bc *BookingController) AssignmentCreate(c *gin.Context) {
	bookingID := utils.FormUint(c, "booking_id")
	unitID := utils.FormUint(c, "room_id")
	if bookingID == nil || unitID == nil {
		utils.Flash(c, "danger", "Booking and room are required")
		c.Redirect(http.StatusFound, "/admin/belong_to/create")
		return
	}
	if err := bc.Bookings.AssignUnit(*bookingID, *unitID); err != nil {
		log.Error().Err(err).Msg("failed to assign unit")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Assigned room to booking")
	c.Redirect(http.StatusFound, "/admin/belong_to")
}

func (bc *BookingController) AssignmentDelete(c *gin.Context) {
	bookingID := utils.FormUint(c, "booking_id")
	unitID := utils.FormUint(c, "room_id")
	if bookingID == nil || unitID == nil {
		utils.Flash(c, "danger", "Missing parameters")
		c.Redirect(http.StatusFound, "/admin/belong_to")
		return
	}
	if err := bc.Bookings.UnassignUnit(*bookingID, *unitID); err != nil {
		log.Error().Err(err).Msg("failed to remove assignment")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Assignment removed")
	c.Redirect(http.StatusFound, "/admin/belong_to")
}
