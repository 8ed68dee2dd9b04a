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

// RoomController manages the room-type catalog and room-unit inventory
// admin pages.
type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

func (rc *RoomController) TypeList(c *gin.Context) {
	types, err := rc.Rooms.ListRoomTypes()
	if err != nil {
		log.Error().Err(err).Msg("failed to list room types")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "admin_room_types.html", gin.H{"Title": "Room Types", "Types": types})
}

func (rc *RoomController) TypeCreateForm(c *gin.Context) {
	render(c, "edit_room_type.html", gin.H{"Title": "Create Room Type"})
}

func roomTypeFromForm(c *gin.Context) models.RoomType {
	rt := models.RoomType{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: c.PostForm("description"),
		Image:       strings.TrimSpace(c.PostForm("image")),
	}
	if price := utils.FormFloat(c, "price"); price != nil {
		rt.Price = *price
	}
	return rt
}

func (rc *RoomController) TypeCreate(c *gin.Context) {
	rt := roomTypeFromForm(c)
	if _, err := rc.Rooms.CreateRoomType(rt); err != nil {
		if errors.Is(err, services.ErrMissingField) {
			utils.Flash(c, "danger", "Name is required")
			render(c, "edit_room_type.html", gin.H{"Title": "Create Room Type", "Type": rt})
			return
		}
		log.Error().Err(err).Msg("failed to create room type")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Room type created")
	c.Redirect(http.StatusFound, "/admin/room_types")
}

func (rc *RoomController) TypeEditForm(c *gin.Context) {
	rt, err := rc.Rooms.GetRoomType(utils.ParamUint(c, "id"))
	if err != nil {
		utils.Flash(c, "danger", "Room type not found")
		c.Redirect(http.StatusFound, "/admin/room_types")
		return
	}
	render(c, "edit_room_type.html", gin.H{"Title": "Edit Room Type", "Type": rt})
}

func (rc *RoomController) TypeEdit(c *gin.Context) {
	err := rc.Rooms.UpdateRoomType(utils.ParamUint(c, "id"), roomTypeFromForm(c))
	switch {
	case err == nil:
		utils.Flash(c, "success", "Room type updated")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "Room type not found")
	default:
		log.Error().Err(err).Msg("failed to update room type")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/room_types")
}

// TypeDelete hard-deletes the catalog entry. Units and bookings that
// reference it keep their now-dangling ids.
func (rc *RoomController) TypeDelete(c *gin.Context) {
	err := rc.Rooms.DeleteRoomType(utils.ParamUint(c, "id"))
	switch {
	case err == nil:
		utils.Flash(c, "success", "Room type deleted")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "Room type not found")
	default:
		log.Error().Err(err).Msg("failed to delete room type")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/room_types")
}

func (rc *RoomController) UnitList(c *gin.Context) {
	units, err := rc.Rooms.ListRoomUnits()
	if err != nil {
		log.Error().Err(err).Msg("failed to list room units")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "admin_room_units.html", gin.H{"Title": "Rooms", "Units": units})
}

func (rc *RoomController) UnitCreateForm(c *gin.Context) {
	types, err := rc.Rooms.ListRoomTypes()
	if err != nil {
		log.Error().Err(err).Msg("failed to list room types")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "edit_room_unit.html", gin.H{"Title": "Create Room", "Types": types})
}

func roomUnitFromForm(c *gin.Context) models.RoomUnit {
	return models.RoomUnit{
		TypeID:      utils.FormUint(c, "type_id"),
		RoomNo:      strings.TrimSpace(c.PostForm("room_no")),
		Floor:       utils.FormInt(c, "floor"),
		Occupied:    utils.FormBool(c, "occupied"),
		Available:   utils.FormBool(c, "available"),
		Maintenance: utils.FormBool(c, "maintenance"),
	}
}

func (rc *RoomController) UnitCreate(c *gin.Context) {
	if _, err := rc.Rooms.CreateRoomUnit(roomUnitFromForm(c)); err != nil {
		log.Error().Err(err).Msg("failed to create room unit")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	utils.Flash(c, "success", "Room unit created")
	c.Redirect(http.StatusFound, "/admin/room_units")
}

func (rc *RoomController) UnitEditForm(c *gin.Context) {
	unit, err := rc.Rooms.GetRoomUnit(utils.ParamUint(c, "id"))
	if err != nil {
		utils.Flash(c, "danger", "Room not found")
		c.Redirect(http.StatusFound, "/admin/room_units")
		return
	}
	types, err := rc.Rooms.ListRoomTypes()
	if err != nil {
		log.Error().Err(err).Msg("failed to list room types")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	render(c, "edit_room_unit.html", gin.H{"Title": "Edit Room", "Unit": unit, "Types": types})
}

func (rc *RoomController) UnitEdit(c *gin.Context) {
	err := rc.Rooms.UpdateRoomUnit(utils.ParamUint(c, "id"), roomUnitFromForm(c))
	switch {
	case err == nil:
		utils.Flash(c, "success", "Room unit updated")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "Room not found")
	default:
		log.Error().Err(err).Msg("failed to update room unit")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/room_units")
}

func (rc *RoomController) UnitDelete(c *gin.Context) {
	err := rc.Rooms.DeleteRoomUnit(utils.ParamUint(c, "id"))
	switch {
	case err == nil:
		utils.Flash(c, "success", "Room unit deleted")
	case errors.Is(err, services.ErrNotFound):
		utils.Flash(c, "danger", "Room not found")
	default:
		log.Error().Err(err).Msg("failed to delete room unit")
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin/room_units")
}
