package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/services"
)

// GET /api/bookings
func (a *API) GetBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": a.bookings(c).List()})
}

// GET /api/bookings/:id
func (a *API) GetBookingByID(c *gin.Context) {
	b, err := a.bookings(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": b})
}

// POST /api/bookings
func (a *API) CreateBooking(c *gin.Context) {
	var req services.CreateBookingInput
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := a.bookings(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": b})
}

// PUT /api/bookings/:id
func (a *API) UpdateBooking(c *gin.Context) {
	var req models.BookingUpdate
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := a.bookings(c).Update(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": b})
}

// PUT /api/bookings/:id/cancel
func (a *API) CancelBooking(c *gin.Context) {
	b, err := a.bookings(c).Cancel(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": b, "message": "pemesanan berhasil dibatalkan"})
}

// GET /api/availability?check_in=...&check_out=...&room_type_id=...&room_id=...
// Tanpa room_id: daftar kamar yang tersedia. Dengan room_id: cek satu kamar.
func (a *API) CheckAvailability(c *gin.Context) {
	checkIn := c.Query("check_in")
	checkOut := c.Query("check_out")
	svc := a.bookings(c)

	if roomID := c.Query("room_id"); roomID != "" {
		available, err := svc.IsRoomAvailable(roomID, checkIn, checkOut, c.Query("exclude_booking_id"))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"available": available})
		return
	}

	rooms, err := svc.AvailableRooms(checkIn, checkOut, c.Query("room_type_id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rooms})
}

// POST /api/bookings/quote — hitung malam dan total biaya tanpa membuat booking.
func (a *API) QuoteBooking(c *gin.Context) {
	var req struct {
		RoomID   string `json:"room_id"`
		CheckIn  string `json:"check_in"`
		CheckOut string `json:"check_out"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := a.bookings(c)
	nights, err := svc.Nights(req.CheckIn, req.CheckOut)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"nights":     nights,
		"total_cost": svc.TotalCost(req.RoomID, nights),
	})
}

// GET /api/bookings/:id/invoice
func (a *API) GetBookingInvoicePDF(c *gin.Context) {
	pdf, filename, err := a.docs(c).GenerateInvoice(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
