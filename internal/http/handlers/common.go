package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solusi-cipta-media/taraje-hotel/internal/config"
	"github.com/solusi-cipta-media/taraje-hotel/internal/http/middleware"
	"github.com/solusi-cipta-media/taraje-hotel/internal/services"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
)

// API membungkus store dan konfigurasi untuk semua handler. Store dipegang
// eksplisit (bukan global) supaya test bisa membuat instance terisolasi.
type API struct {
	Store *store.Store
	Env   config.Env
}

func NewAPI(st *store.Store, env config.Env) *API {
	return &API{Store: st, Env: env}
}

func (a *API) auth(c *gin.Context) services.AuthService {
	return services.AuthService{Store: a.Store, Secret: []byte(a.Env.JWTSecret), RequestID: middleware.GetRequestID(c)}
}

func (a *API) staff(c *gin.Context) services.StaffService {
	return services.StaffService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a *API) roomTypes(c *gin.Context) services.RoomTypeService {
	return services.RoomTypeService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a *API) guests(c *gin.Context) services.GuestService {
	return services.GuestService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a *API) rooms(c *gin.Context) services.RoomService {
	return services.RoomService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a *API) bookings(c *gin.Context) services.BookingService {
	return services.BookingService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a *API) payments(c *gin.Context) services.PaymentService {
	return services.PaymentService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a *API) layouts(c *gin.Context) services.LayoutService {
	return services.LayoutService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a *API) reports(c *gin.Context) services.ReportService {
	return services.ReportService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a *API) docs(c *gin.Context) services.DocsService {
	return services.DocsService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}
