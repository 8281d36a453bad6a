package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solusi-cipta-media/taraje-hotel/internal/services"
)

// GET /api/bookings/:id/payments
func (a *API) GetBookingPayments(c *gin.Context) {
	trx, err := a.payments(c).ListByBooking(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trx})
}

// POST /api/bookings/:id/payments
func (a *API) AddBookingPayment(c *gin.Context) {
	var req services.AddPaymentInput
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := a.payments(c).AddPayment(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": b, "message": "pembayaran berhasil ditambahkan"})
}

type refundRequest struct {
	Amount int64  `json:"amount"`
	Method string `json:"method"`
}

// POST /api/bookings/:id/refunds
func (a *API) AddBookingRefund(c *gin.Context) {
	var req refundRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	trx, err := a.payments(c).RecordRefund(c.Param("id"), req.Amount, req.Method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": trx, "message": "refund berhasil dicatat"})
}
