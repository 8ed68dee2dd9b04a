package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotel-booking/models"
)

// RoomService manages the room-type catalog and the physical room-unit
// inventory. Deletes are hard and never cascade: removing a room type leaves
// its units (and any bookings pointing at it) with dangling references.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) ListRoomTypes() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Find(&types).Error
	return types, err
}

func (s *RoomService) GetRoomType(id uint) (models.RoomType, error) {
	var rt models.RoomType
	err := s.DB.First(&rt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rt, ErrNotFound
	}
	return rt, err
}

func (s *RoomService) CreateRoomType(rt models.RoomType) (models.RoomType, error) {
	if strings.TrimSpace(rt.Name) == "" {
		return models.RoomType{}, ErrMissingField
	}
	if err := s.DB.Create(&rt).Error; err != nil {
		return models.RoomType{}, err
	}
	return rt, nil
}

func (s *RoomService) UpdateRoomType(id uint, rt models.RoomType) error {
	res := s.DB.Model(&models.RoomType{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        rt.Name,
			"description": rt.Description,
			"price":       rt.Price,
			"image":       rt.Image,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RoomService) DeleteRoomType(id uint) error {
	res := s.DB.Delete(&models.RoomType{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RoomService) ListRoomUnits() ([]models.RoomUnit, error) {
	var units []models.RoomUnit
	err := s.DB.Preload("RoomType").Find(&units).Error
	return units, err
}

func (s *RoomService) GetRoomUnit(id uint) (models.RoomUnit, error) {
	var unit models.RoomUnit
	err := s.DB.First(&unit, "room_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return unit, ErrNotFound
	}
	return unit, err
}

func (s *RoomService) CreateRoomUnit(unit models.RoomUnit) (models.RoomUnit, error) {
	if err := s.DB.Create(&unit).Error; err != nil {
		return models.RoomUnit{}, err
	}
	return unit, nil
}

func (s *RoomService) UpdateRoomUnit(id uint, unit models.RoomUnit) error {
	res := s.DB.Model(&models.RoomUnit{}).Where("room_id = ?", id).
		Updates(map[string]interface{}{
			"type_id":     unit.TypeID,
			"room_no":     unit.RoomNo,
			"floor":       unit.Floor,
			"occupied":    unit.Occupied,
			"available":   unit.Available,
			"maintenance": unit.Maintenance,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RoomService) DeleteRoomUnit(id uint) error {
	res := s.DB.Where("room_id = ?", id).Delete(&models.RoomUnit{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
