package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salas-backend/models"
	"salas-backend/services"
	"salas-backend/utils"
)

// --- Controller ---
type RoomController struct {
	RoomSvc *services.RoomService
}

// NewRoomController Constructor
func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// roomPayload is the create/update body. The required triple is enforced
// by binding; the metadata fields stay nil when absent and are stored as
// NULL.
type roomPayload struct {
	RoomNameID models.FlexID `json:"room_name_id" binding:"required"`
	Days       string        `json:"days" binding:"required"`
	Shift      string        `json:"shift" binding:"required,oneof=matutino vespertino noturno"`
	Unidade    *string       `json:"unidade"`
	Curso      *string       `json:"curso"`
	Periodo    *string       `json:"periodo"`
	Disciplina *string       `json:"disciplina"`
	Docente    *string       `json:"docente"`
}

func (p *roomPayload) toRoom() *models.Room {
	return &models.Room{
		RoomNameID: uint(p.RoomNameID),
		Days:       p.Days,
		Shift:      p.Shift,
		Unidade:    p.Unidade,
		Curso:      p.Curso,
		Periodo:    p.Periodo,
		Disciplina: p.Disciplina,
		Docente:    p.Docente,
	}
}

type statusPayload struct {
	Status string `json:"status" binding:"required,oneof=open closed"`
}

// paramID parses the :id path segment. A non-numeric id can never match
// a row, so it reports not-found rather than bad-request.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// ----------------------------------------------------
// 1. Get Rooms (GET /rooms)
// ----------------------------------------------------
func (ctl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctl.RoomSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Erro ao buscar dados: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Get Room (GET /rooms/:id)
// ----------------------------------------------------
func (ctl *RoomController) GetRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Sala não encontrada")
		return
	}

	room, err := ctl.RoomSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Sala não encontrada")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Erro ao buscar sala: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 3. Create Room (POST /rooms)
// ----------------------------------------------------
func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Todos os campos são obrigatórios")
		return
	}

	room, err := ctl.RoomSvc.Create(payload.toRoom())
	if err != nil {
		if errors.Is(err, services.ErrRoomNameNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Nome de sala não encontrado")
			return
		}
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Erro ao criar dados: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 4. Update Room (PUT /rooms/:id)
// ----------------------------------------------------
func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Sala não encontrada")
		return
	}

	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Todos os campos são obrigatórios")
		return
	}

	room, err := ctl.RoomSvc.Update(id, payload.toRoom())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "Sala não encontrada")
		case errors.Is(err, services.ErrRoomNameNotFound):
			utils.JSONError(c, http.StatusNotFound, "Nome de sala não encontrado")
		default:
			log.Printf("❌ Update Error for Room %d: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "Erro ao atualizar sala: "+err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 5. Update Room Status (PATCH /rooms/:id/status)
// ----------------------------------------------------
func (ctl *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Sala não encontrada")
		return
	}

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Status inválido")
		return
	}

	room, err := ctl.RoomSvc.UpdateStatus(id, payload.Status)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Sala não encontrada")
			return
		}
		log.Printf("❌ Status Update Error for Room %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Erro ao atualizar status: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 6. Delete Room (DELETE /rooms/:id)
// ----------------------------------------------------
func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Sala não encontrada")
		return
	}

	if err := ctl.RoomSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Sala não encontrada")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Erro ao excluir sala: "+err.Error())
		return
	}

	log.Printf("✅ Room ID %d deleted.", id)
	utils.JSONMessage(c, http.StatusOK, "Sala excluída com sucesso")
}
