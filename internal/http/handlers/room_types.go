package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solusi-cipta-media/taraje-hotel/internal/services"
)

// GET /api/room-types
func (a *API) GetRoomTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": a.roomTypes(c).List()})
}

// GET /api/room-types/:id
func (a *API) GetRoomTypeByID(c *gin.Context) {
	rt, err := a.roomTypes(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rt})
}

// POST /api/room-types
func (a *API) CreateRoomType(c *gin.Context) {
	var req services.RoomTypeInput
	if !BindJSONOrError(c, &req) {
		return
	}
	rt, err := a.roomTypes(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": rt})
}

// PUT /api/room-types/:id
func (a *API) UpdateRoomType(c *gin.Context) {
	var req services.RoomTypeInput
	if !BindJSONOrError(c, &req) {
		return
	}
	rt, err := a.roomTypes(c).Update(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rt})
}

// DELETE /api/room-types/:id
func (a *API) DeleteRoomType(c *gin.Context) {
	if err := a.roomTypes(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tipe kamar berhasil dihapus"})
}

// GET /api/room-types/:id/can-delete
func (a *API) CanDeleteRoomType(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"can_delete": a.roomTypes(c).CanDelete(c.Param("id"))})
}
