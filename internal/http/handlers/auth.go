package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, user, err := a.auth(c).Login(req.Email, req.Password)
	if err != nil {
		// kredensial salah selalu 401, bukan 400; error lain (misal gagal
		// menandatangani token) tetap lewat pemetaan domain.
		if domain.IsValidation(err) {
			RespondError(c, http.StatusUnauthorized, "email atau password salah", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// POST /api/auth/register
func (a *API) Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}

	token, user, err := a.auth(c).Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registrasi berhasil",
		"token":   token,
		"user":    user,
	})
}
