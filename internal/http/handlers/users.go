package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/services"
)

// GET /api/users
func (a *API) GetStaffUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": a.staff(c).ListStaff()})
}

// GET /api/users/:id
func (a *API) GetUserByID(c *gin.Context) {
	user, err := a.staff(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// POST /api/users
func (a *API) CreateStaffUser(c *gin.Context) {
	var req services.CreateStaffInput
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := a.staff(c).CreateStaff(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": user})
}

// PUT /api/users/:id
func (a *API) UpdateStaffUser(c *gin.Context) {
	var req models.UserUpdate
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := a.staff(c).UpdateStaff(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// PUT /api/users/:id/toggle-status
func (a *API) ToggleStaffStatus(c *gin.Context) {
	user, err := a.staff(c).ToggleStatus(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// PUT /api/users/:id/reset-password
func (a *API) ResetStaffPassword(c *gin.Context) {
	newPassword, err := a.staff(c).ResetPassword(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "password berhasil direset",
		"new_password": newPassword,
	})
}

// DELETE /api/users/:id
func (a *API) DeleteStaffUser(c *gin.Context) {
	if err := a.staff(c).DeleteStaff(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pengguna berhasil dihapus"})
}

// GET /api/users/next-code
func (a *API) NextStaffCode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": a.staff(c).GenerateCode()})
}
