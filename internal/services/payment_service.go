package services

import (
	"strings"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
	"github.com/solusi-cipta-media/taraje-hotel/internal/utils"
)

// PaymentService mencatat transaksi pembayaran dan menjaga invarian
// TotalPaid + Remaining == TotalCost pada booking terkait.
type PaymentService struct {
	Store     *store.Store
	RequestID string
}

// AddPaymentInput adalah payload penambahan pembayaran.
type AddPaymentInput struct {
	Amount int64  `json:"amount"`
	Method string `json:"method"`
	Kind   string `json:"kind"`
}

// AddPayment menambahkan pembayaran ke booking: transaksi baru dicatat,
// lalu total terbayar, sisa, dan status pembayaran dihitung ulang.
// Precondition: 0 < amount <= sisa pembayaran booking.
func (s PaymentService) AddPayment(bookingID string, in AddPaymentInput) (models.Booking, error) {
	var (
		booking models.Booking
		opErr   error
	)
	s.Store.Update(func(st *store.State) {
		b, ok := st.BookingByID(bookingID)
		if !ok {
			opErr = domain.NotFoundError{Resource: "booking"}
			return
		}
		if in.Amount <= 0 || in.Amount > b.Remaining {
			opErr = domain.ValidationError{Field: "amount", Msg: "jumlah pembayaran tidak valid"}
			return
		}

		kind := strings.TrimSpace(in.Kind)
		if kind == "" {
			kind = models.TransaksiParsial
		}
		switch kind {
		case models.TransaksiUangMuka, models.TransaksiPelunasan, models.TransaksiParsial:
		default:
			// Refund punya jalur sendiri (RecordRefund) dan tidak boleh
			// menaikkan total terbayar.
			opErr = domain.ValidationError{Field: "kind", Msg: "jenis transaksi tidak dikenal"}
			return
		}
		method := strings.TrimSpace(in.Method)
		if method == "" {
			method = models.MetodeTransferBank
		}

		st.Transactions = append(st.Transactions, models.Transaction{
			ID:        store.NewID(),
			BookingID: b.ID,
			Date:      s.Store.Today(),
			Kind:      kind,
			Amount:    in.Amount,
			Method:    method,
		})

		b.TotalPaid += in.Amount
		b.Remaining -= in.Amount
		if b.Remaining == 0 {
			b.PaymentStatus = models.PaymentLunas
		} else {
			b.PaymentStatus = models.PaymentDP
		}
		replaceBooking(st, b)
		booking = b
	})
	if opErr != nil {
		return models.Booking{}, opErr
	}

	utils.LogEvent(s.RequestID, "payment", "add", "kode="+booking.Code+" status="+booking.PaymentStatus)
	return booking, nil
}

// RecordRefund mencatat transaksi Refund tanpa mengubah total terbayar:
// riwayat finansial dipertahankan, pembalikan status diserahkan ke operator.
func (s PaymentService) RecordRefund(bookingID string, amount int64, method string) (models.Transaction, error) {
	if amount <= 0 {
		return models.Transaction{}, domain.ValidationError{Field: "amount", Msg: "jumlah refund harus lebih dari 0"}
	}

	var (
		trx   models.Transaction
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		b, ok := st.BookingByID(bookingID)
		if !ok {
			opErr = domain.NotFoundError{Resource: "booking"}
			return
		}
		if amount > b.TotalPaid {
			opErr = domain.ValidationError{Field: "amount", Msg: "refund melebihi total terbayar"}
			return
		}
		if strings.TrimSpace(method) == "" {
			method = models.MetodeTransferBank
		}
		trx = models.Transaction{
			ID:        store.NewID(),
			BookingID: b.ID,
			Date:      s.Store.Today(),
			Kind:      models.TransaksiRefund,
			Amount:    amount,
			Method:    method,
		}
		st.Transactions = append(st.Transactions, trx)
	})
	if opErr != nil {
		return models.Transaction{}, opErr
	}

	utils.LogEvent(s.RequestID, "payment", "refund", "booking_id="+bookingID)
	return trx, nil
}

// ListByBooking mengembalikan riwayat transaksi satu booking.
func (s PaymentService) ListByBooking(bookingID string) ([]models.Transaction, error) {
	var (
		out   []models.Transaction
		found bool
	)
	s.Store.View(func(st store.State) {
		_, found = st.BookingByID(bookingID)
		if found {
			out = st.TransactionsByBooking(bookingID)
		}
	})
	if !found {
		return nil, domain.NotFoundError{Resource: "booking"}
	}
	return out, nil
}
