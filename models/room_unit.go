package models

// RoomUnit is one physical room instance belonging to a RoomType. The three
// status booleans are independent: a unit can be marked occupied and
// available at the same time.
type RoomUnit struct {
	ID          uint   `gorm:"primaryKey;column:room_id" json:"room_id"`
	TypeID      *uint  `gorm:"column:type_id;index" json:"type_id,omitempty"`
	RoomNo      string `gorm:"column:room_no;size:50" json:"room_no"`
	Floor       *int   `gorm:"column:floor" json:"floor,omitempty"`
	Occupied    bool   `gorm:"default:false" json:"occupied"`
	Available   bool   `gorm:"default:true" json:"available"`
	Maintenance bool   `gorm:"default:false" json:"maintenance"`

	RoomType RoomType `gorm:"foreignKey:TypeID;references:ID" json:"room_type,omitempty"`
}

func (RoomUnit) TableName() string { return "room_units" }
