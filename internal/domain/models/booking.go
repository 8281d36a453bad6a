package models

// Status pemesanan (sumbu lifecycle). Cancelled dan Checked-out terminal.
const (
	BookingConfirmed  = "Confirmed"
	BookingCheckedIn  = "Checked-in"
	BookingCheckedOut = "Checked-out"
	BookingCancelled  = "Cancelled"
)

// Status pembayaran (sumbu terpisah dari lifecycle, monoton naik).
const (
	PaymentBelumBayar = "Belum Bayar"
	PaymentDP         = "DP"
	PaymentLunas      = "Lunas"
)

// Booking memesan satu kamar untuk satu tamu pada interval tanggal
// setengah-terbuka [CheckIn, CheckOut). Invarian finansial:
// TotalPaid + Remaining == TotalCost setelah setiap mutasi pembayaran.
type Booking struct {
	ID            string `json:"id"`
	Code          string `json:"code"` // BOOK-YYYYMMDD-001
	GuestID       string `json:"guest_id"`
	RoomID        string `json:"room_id"`
	CheckIn       string `json:"check_in"`  // YYYY-MM-DD, inklusif
	CheckOut      string `json:"check_out"` // YYYY-MM-DD, eksklusif
	Nights        int    `json:"nights"`
	TotalCost     int64  `json:"total_cost"`
	TotalPaid     int64  `json:"total_paid"`
	Remaining     int64  `json:"remaining"`
	PaymentStatus string `json:"payment_status"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"` // permintaan khusus tamu
}

// BookingUpdate mendukung update parsial via pointer presence.
type BookingUpdate struct {
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

// Active menandakan booking masih memblokir ketersediaan kamar.
func (b Booking) Active() bool {
	return b.Status != BookingCancelled
}
