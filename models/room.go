package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexID accepts a numeric id sent either as a JSON number or as a
// numeric string — the frontend select submits "3", API clients send 3.
type FlexID uint

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	*f = FlexID(n)
	return nil
}

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNameID uint   `json:"room_name_id" gorm:"column:room_name_id;not null"`
	Days       string `json:"days" gorm:"not null;type:varchar(100)"`
	Shift      string `json:"shift" gorm:"not null;type:varchar(20)"`
	Status     string `json:"status" gorm:"not null;default:closed;type:varchar(10)"`

	// Optional schedule metadata, all nullable free text.
	Unidade    *string `json:"unidade" gorm:"type:varchar(255)"`
	Curso      *string `json:"curso" gorm:"type:varchar(255)"`
	Periodo    *string `json:"periodo" gorm:"type:varchar(255)"`
	Disciplina *string `json:"disciplina" gorm:"type:varchar(255)"`
	Docente    *string `json:"docente" gorm:"type:varchar(255)"`

	RoomName RoomName `gorm:"foreignKey:RoomNameID" json:"-"`
}

func (Room) TableName() string {
	return "rooms"
}

// RoomDetail is the joined row every read-facing endpoint returns:
// the room merged with its room_names.name for display.
type RoomDetail struct {
	ID         uint    `json:"id"`
	RoomNameID uint    `json:"room_name_id"`
	Name       string  `json:"name"`
	Days       string  `json:"days"`
	Shift      string  `json:"shift"`
	Status     string  `json:"status"`
	Unidade    *string `json:"unidade"`
	Curso      *string `json:"curso"`
	Periodo    *string `json:"periodo"`
	Disciplina *string `json:"disciplina"`
	Docente    *string `json:"docente"`
}

// Shift and status values accepted by the API.
const (
	ShiftMatutino   = "matutino"
	ShiftVespertino = "vespertino"
	ShiftNoturno    = "noturno"

	StatusOpen   = "open"
	StatusClosed = "closed"
)
