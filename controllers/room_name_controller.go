package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"salas-backend/services"
	"salas-backend/utils"
)

// --- Controller ---
type RoomNameController struct {
	RoomNameSvc *services.RoomNameService
}

// NewRoomNameController Constructor
func NewRoomNameController(svc *services.RoomNameService) *RoomNameController {
	return &RoomNameController{RoomNameSvc: svc}
}

type roomNamePayload struct {
	Name string `json:"name"`
}

// ----------------------------------------------------
// 1. Get Room Names (GET /rooms/room-names)
// ----------------------------------------------------
func (ctl *RoomNameController) GetRoomNames(c *gin.Context) {
	names, err := ctl.RoomNameSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Erro ao buscar nomes das salas: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, names)
}

// ----------------------------------------------------
// 2. Create Room Name (POST /rooms/room-names)
// ----------------------------------------------------
func (ctl *RoomNameController) CreateRoomName(c *gin.Context) {
	var payload roomNamePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Nome da sala é obrigatório")
		return
	}

	if strings.TrimSpace(payload.Name) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Nome da sala é obrigatório")
		return
	}

	rn, err := ctl.RoomNameSvc.Create(payload.Name)
	if err != nil {
		if errors.Is(err, services.ErrRoomNameTaken) {
			utils.JSONError(c, http.StatusBadRequest, "Nome de sala já existe")
			return
		}
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Erro ao criar nome da sala: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, rn)
}
