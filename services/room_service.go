package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"salas-backend/models"
)

type RoomService struct {
	DB *gorm.DB
}

// NewRoomService Constructor for Dependency Injection
func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// Every read-facing operation returns the joined row (room + display
// name), so the select list is shared.
const detailColumns = "rooms.id, rooms.room_name_id, room_names.name AS name, " +
	"rooms.days, rooms.shift, rooms.status, " +
	"rooms.unidade, rooms.curso, rooms.periodo, rooms.disciplina, rooms.docente"

func detailQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.Room{}).
		Select(detailColumns).
		Joins("JOIN room_names ON room_names.id = rooms.room_name_id")
}

func getDetail(tx *gorm.DB, id uint) (*models.RoomDetail, error) {
	var detail models.RoomDetail
	err := detailQuery(tx).Where("rooms.id = ?", id).Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &detail, nil
}

// ----------------------------------------------------
// GET ALL — joined rows, ordered for the schedule board
// ----------------------------------------------------
func (s *RoomService) GetAll() ([]models.RoomDetail, error) {
	rooms := []models.RoomDetail{}
	err := detailQuery(s.DB).
		Order("room_names.name, rooms.days, rooms.shift").
		Scan(&rooms).Error
	if err != nil {
		log.Printf("⬅️ RoomService.GetAll error: %v", err)
		return nil, err
	}
	return rooms, nil
}

// ----------------------------------------------------
// GET BY ID
// ----------------------------------------------------
func (s *RoomService) GetByID(id uint) (*models.RoomDetail, error) {
	return getDetail(s.DB, id)
}

// ----------------------------------------------------
// CREATE — referential check, then insert + joined read-back
// in one transaction so the caller sees exactly its write
// ----------------------------------------------------
func (s *RoomService) Create(room *models.Room) (*models.RoomDetail, error) {
	// New rooms always start closed, whatever the caller sent.
	room.Status = models.StatusClosed

	var detail *models.RoomDetail
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var rn models.RoomName
		if err := tx.First(&rn, room.RoomNameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNameNotFound
			}
			return err
		}

		if err := tx.Create(room).Error; err != nil {
			return err
		}

		var err error
		detail, err = getDetail(tx, room.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// ----------------------------------------------------
// UPDATE — full replace of everything except id and status
// ----------------------------------------------------
func (s *RoomService) Update(id uint, room *models.Room) (*models.RoomDetail, error) {
	var detail *models.RoomDetail
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Room
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		var rn models.RoomName
		if err := tx.First(&rn, room.RoomNameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNameNotFound
			}
			return err
		}

		// Map update so absent metadata overwrites to NULL; status is
		// deliberately not in the list.
		updates := map[string]interface{}{
			"room_name_id": room.RoomNameID,
			"days":         room.Days,
			"shift":        room.Shift,
			"unidade":      room.Unidade,
			"curso":        room.Curso,
			"periodo":      room.Periodo,
			"disciplina":   room.Disciplina,
			"docente":      room.Docente,
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		var err error
		detail, err = getDetail(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// ----------------------------------------------------
// UPDATE STATUS — single-column transition, open <-> closed
// ----------------------------------------------------
func (s *RoomService) UpdateStatus(id uint, status string) (*models.RoomDetail, error) {
	var detail *models.RoomDetail
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Room
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return err
		}

		var err error
		detail, err = getDetail(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// ----------------------------------------------------
// DELETE — hard delete, 404 when nothing matched
// ----------------------------------------------------
func (s *RoomService) Delete(id uint) error {
	result := s.DB.Where("id = ?", id).Delete(&models.Room{})
	if result.Error != nil {
		log.Printf("❌ RoomService.Delete id=%d error: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
