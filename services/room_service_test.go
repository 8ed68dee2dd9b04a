package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-booking/models"
)

func TestRoomTypeCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)

	rt, err := svc.CreateRoomType(models.RoomType{Name: "Deluxe", Description: "Big room", Price: 150})
	assert.NoError(t, err)
	assert.NotZero(t, rt.ID)

	err = svc.UpdateRoomType(rt.ID, models.RoomType{Name: "Deluxe Plus", Price: 175})
	assert.NoError(t, err)

	got, err := svc.GetRoomType(rt.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Deluxe Plus", got.Name)
	assert.Equal(t, 175.0, got.Price)

	assert.NoError(t, svc.DeleteRoomType(rt.ID))
	_, err = svc.GetRoomType(rt.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRoomTypeRequiresName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)

	_, err := svc.CreateRoomType(models.RoomType{Name: "   ", Price: 99})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestRoomTypeUpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)

	assert.ErrorIs(t, svc.UpdateRoomType(42, models.RoomType{Name: "Ghost"}), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteRoomType(42), ErrNotFound)
}

func TestDeleteRoomTypeLeavesUnits(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)

	rt, err := svc.CreateRoomType(models.RoomType{Name: "Standard", Price: 80})
	assert.NoError(t, err)

	unit, err := svc.CreateRoomUnit(models.RoomUnit{TypeID: &rt.ID, RoomNo: "305"})
	assert.NoError(t, err)

	// No cascade: the unit survives with a dangling type reference.
	assert.NoError(t, svc.DeleteRoomType(rt.ID))

	got, err := svc.GetRoomUnit(unit.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got.TypeID)
	assert.Equal(t, rt.ID, *got.TypeID)
}

func TestRoomUnitCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db)

	rt, err := svc.CreateRoomType(models.RoomType{Name: "Suite", Price: 200})
	assert.NoError(t, err)

	floor := 3
	unit, err := svc.CreateRoomUnit(models.RoomUnit{TypeID: &rt.ID, RoomNo: "301", Floor: &floor, Available: true})
	assert.NoError(t, err)
	assert.NotZero(t, unit.ID)

	err = svc.UpdateRoomUnit(unit.ID, models.RoomUnit{TypeID: &rt.ID, RoomNo: "301", Floor: &floor, Occupied: true})
	assert.NoError(t, err)

	got, err := svc.GetRoomUnit(unit.ID)
	assert.NoError(t, err)
	assert.True(t, got.Occupied)
	assert.False(t, got.Available)

	assert.NoError(t, svc.DeleteRoomUnit(unit.ID))
	assert.ErrorIs(t, svc.UpdateRoomUnit(unit.ID, models.RoomUnit{RoomNo: "301"}), ErrNotFound)
}
