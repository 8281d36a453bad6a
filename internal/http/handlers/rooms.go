package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solusi-cipta-media/taraje-hotel/internal/services"
)

// GET /api/rooms
func (a *API) GetRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": a.rooms(c).List()})
}

// GET /api/rooms/:id
func (a *API) GetRoomByID(c *gin.Context) {
	room, err := a.rooms(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": room})
}

// POST /api/rooms
func (a *API) CreateRoom(c *gin.Context) {
	var req services.RoomInput
	if !BindJSONOrError(c, &req) {
		return
	}
	room, err := a.rooms(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": room})
}

// PUT /api/rooms/:id
func (a *API) UpdateRoom(c *gin.Context) {
	var req services.RoomInput
	if !BindJSONOrError(c, &req) {
		return
	}
	room, err := a.rooms(c).Update(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": room})
}

type roomStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/rooms/:id/status
func (a *API) UpdateRoomStatus(c *gin.Context) {
	var req roomStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	room, err := a.rooms(c).UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": room})
}

// GET /api/rooms/:id/status-options
func (a *API) GetRoomStatusOptions(c *gin.Context) {
	svc := a.rooms(c)
	room, err := svc.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"can_update": svc.CanUpdateStatus(room.ID),
		"options":    svc.AvailableStatusOptions(room.Status),
	})
}
