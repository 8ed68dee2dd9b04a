package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"hotel-booking/services"
	"hotel-booking/utils"
)

// PublicController serves the unauthenticated pages: home, about, contact,
// the room catalog and the booking form.
type PublicController struct {
	Rooms    *services.RoomService
	Bookings *services.BookingService
}

func NewPublicController(rooms *services.RoomService, bookings *services.BookingService) *PublicController {
	return &PublicController{Rooms: rooms, Bookings: bookings}
}

func (pc *PublicController) Home(c *gin.Context) {
	render(c, "index.html", gin.H{"Title": "Home"})
}

func (pc *PublicController) About(c *gin.Context) {
	render(c, "about.html", gin.H{"Title": "About"})
}

func (pc *PublicController) ContactForm(c *gin.Context) {
	render(c, "contact.html", gin.H{"Title": "Contact"})
}

// Contact acknowledges the message with a flash; nothing is stored or sent.
func (pc *PublicController) Contact(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	utils.Flash(c, "success", fmt.Sprintf("Thank you %s, your message has been received!", name))
	c.Redirect(http.StatusFound, "/")
}

func (pc *PublicController) RoomList(c *gin.Context) {
	rooms, err := pc.Rooms.ListRoomTypes()
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "rooms.html", gin.H{"Title": "Our Rooms", "Rooms": rooms})
}

func (pc *PublicController) BookingForm(c *gin.Context) {
	room, err := pc.Rooms.GetRoomType(utils.ParamUint(c, "room_id"))
	if err != nil {
		utils.Flash(c, "danger", "Room not found")
		c.Redirect(http.StatusFound, "/rooms")
		return
	}
	render(c, "booking.html", gin.H{"Title": "Book a Room", "Room": room})
}

// CreateBooking handles the public booking form. A logged-in user id is
// taken from the session when present; guest_id is never set here.
func (pc *PublicController) CreateBooking(c *gin.Context) {
	room, err := pc.Rooms.GetRoomType(utils.ParamUint(c, "room_id"))
	if err != nil {
		utils.Flash(c, "danger", "Room not found")
		c.Redirect(http.StatusFound, "/rooms")
		return
	}

	var userID *uint
	if id, ok := sessions.Default(c).Get("user_id").(uint); ok && id != 0 {
		userID = &id
	}

	_, err = pc.Bookings.CreateBooking(
		c.PostForm("check_in_date"),
		c.PostForm("check_out_date"),
		room.ID,
		userID,
		nil,
	)
	if err != nil {
		if errors.Is(err, services.ErrMissingField) {
			utils.Flash(c, "danger", "Check-in and check-out dates are required")
			c.Redirect(http.StatusFound, fmt.Sprintf("/booking/%d", room.ID))
			return
		}
		log.Error().Err(err).Msg("failed to create booking")
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	utils.Flash(c, "success", fmt.Sprintf("Your booking for %s has been received!", room.Name))
	c.Redirect(http.StatusFound, "/")
}
