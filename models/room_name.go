package models

// RoomName Struct (single definition in the project)
// Reusable display name for a physical room; referenced by many Room rows.
type RoomName struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name" gorm:"uniqueIndex;not null;type:varchar(255)"`
}

func (RoomName) TableName() string {
	return "room_names"
}
