package services

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"salas-backend/models"
)

type RoomNameService struct {
	DB *gorm.DB
}

// NewRoomNameService Constructor for Dependency Injection
func NewRoomNameService(db *gorm.DB) *RoomNameService {
	return &RoomNameService{DB: db}
}

// ----------------------------------------------------
// GET ALL — ordered by name for the admin select
// ----------------------------------------------------
func (s *RoomNameService) GetAll() ([]models.RoomName, error) {
	var names []models.RoomName
	err := s.DB.Order("name ASC").Find(&names).Error
	if err != nil {
		log.Printf("⬅️ RoomNameService.GetAll error: %v", err)
		return nil, err
	}
	return names, nil
}

// ----------------------------------------------------
// GET BY ID — existence check for room creation
// ----------------------------------------------------
func (s *RoomNameService) GetByID(id uint) (*models.RoomName, error) {
	var rn models.RoomName
	if err := s.DB.First(&rn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNameNotFound
		}
		return nil, err
	}
	return &rn, nil
}

// ----------------------------------------------------
// CREATE — trims before storing; name is globally unique
// ----------------------------------------------------
func (s *RoomNameService) Create(name string) (*models.RoomName, error) {
	rn := models.RoomName{Name: strings.TrimSpace(name)}

	if err := s.DB.Create(&rn).Error; err != nil {
		if isDuplicateErr(err) {
			log.Printf("❌ Duplicate room name: %s", rn.Name)
			return nil, ErrRoomNameTaken
		}
		return nil, err
	}
	return &rn, nil
}

// isDuplicateErr matches unique-constraint violations from either
// backend (SQLite and MySQL word the error differently).
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}
