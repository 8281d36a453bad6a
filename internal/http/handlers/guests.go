package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solusi-cipta-media/taraje-hotel/internal/services"
)

// GET /api/guests
func (a *API) GetGuests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": a.guests(c).List()})
}

// GET /api/guests/:id
func (a *API) GetGuestByID(c *gin.Context) {
	g, err := a.guests(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": g})
}

// POST /api/guests
func (a *API) CreateGuest(c *gin.Context) {
	var req services.GuestInput
	if !BindJSONOrError(c, &req) {
		return
	}
	g, err := a.guests(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": g})
}

// PUT /api/guests/:id
func (a *API) UpdateGuest(c *gin.Context) {
	var req services.GuestInput
	if !BindJSONOrError(c, &req) {
		return
	}
	g, err := a.guests(c).Update(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": g})
}

// DELETE /api/guests/:id
func (a *API) DeleteGuest(c *gin.Context) {
	if err := a.guests(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tamu berhasil dihapus"})
}

// GET /api/guests/:id/can-delete
func (a *API) CanDeleteGuest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"can_delete": a.guests(c).CanDelete(c.Param("id"))})
}
