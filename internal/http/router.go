package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/solusi-cipta-media/taraje-hotel/internal/config"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	h "github.com/solusi-cipta-media/taraje-hotel/internal/http/handlers"
	"github.com/solusi-cipta-media/taraje-hotel/internal/http/middleware"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
)

func NewRouter(env config.Env, st *store.Store) *gin.Engine {
	a := h.NewAPI(st, env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", a.Health)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", a.Login)
		auth.POST("/register", a.Register)

		// Endpoint publik untuk calon tamu: katalog tipe kamar,
		// cek ketersediaan, dan hitung estimasi biaya.
		api.GET("/room-types", a.GetRoomTypes)
		api.GET("/room-types/:id", a.GetRoomTypeByID)
		api.GET("/availability", a.CheckAvailability)
		api.POST("/bookings/quote", a.QuoteBooking)

		// Operasional hotel: admin dan resepsionis.
		ops := api.Group("")
		ops.Use(middleware.Auth([]byte(env.JWTSecret)), middleware.RequireRoles(models.RoleAdmin, models.RoleResepsionis))
		{
			roomTypes := ops.Group("/room-types")
			roomTypes.POST("", a.CreateRoomType)
			roomTypes.PUT("/:id", a.UpdateRoomType)
			roomTypes.DELETE("/:id", a.DeleteRoomType)
			roomTypes.GET("/:id/can-delete", a.CanDeleteRoomType)

			guests := ops.Group("/guests")
			guests.GET("", a.GetGuests)
			guests.GET("/:id", a.GetGuestByID)
			guests.POST("", a.CreateGuest)
			guests.PUT("/:id", a.UpdateGuest)
			guests.DELETE("/:id", a.DeleteGuest)
			guests.GET("/:id/can-delete", a.CanDeleteGuest)

			rooms := ops.Group("/rooms")
			rooms.GET("", a.GetRooms)
			rooms.GET("/:id", a.GetRoomByID)
			rooms.POST("", a.CreateRoom)
			rooms.PUT("/:id", a.UpdateRoom)
			rooms.PUT("/:id/status", a.UpdateRoomStatus)
			rooms.GET("/:id/status-options", a.GetRoomStatusOptions)

			bookings := ops.Group("/bookings")
			bookings.GET("", a.GetBookings)
			bookings.GET("/:id", a.GetBookingByID)
			bookings.POST("", a.CreateBooking)
			bookings.PUT("/:id", a.UpdateBooking)
			bookings.PUT("/:id/cancel", a.CancelBooking)
			bookings.GET("/:id/invoice", a.GetBookingInvoicePDF)
			bookings.GET("/:id/payments", a.GetBookingPayments)
			bookings.POST("/:id/payments", a.AddBookingPayment)
			bookings.POST("/:id/refunds", a.AddBookingRefund)

			ops.GET("/layouts", a.GetFloorLayouts)
			ops.GET("/layouts/:floor", a.GetFloorView)

			ops.GET("/reports/occupancy", a.GetOccupancyReport)
		}

		// Khusus admin: manajemen pengguna staf dan perubahan denah.
		admin := api.Group("")
		admin.Use(middleware.Auth([]byte(env.JWTSecret)), middleware.RequireRoles(models.RoleAdmin))
		{
			users := admin.Group("/users")
			users.GET("", a.GetStaffUsers)
			users.GET("/next-code", a.NextStaffCode)
			users.GET("/:id", a.GetUserByID)
			users.POST("", a.CreateStaffUser)
			users.PUT("/:id", a.UpdateStaffUser)
			users.PUT("/:id/toggle-status", a.ToggleStaffStatus)
			users.PUT("/:id/reset-password", a.ResetStaffPassword)
			users.DELETE("/:id", a.DeleteStaffUser)

			admin.PUT("/layouts/:floor", a.UpdateFloorLayout)
			admin.PUT("/layouts/rooms/:id/position", a.UpdateRoomPosition)
		}
	}

	return r
}
