package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
	"github.com/solusi-cipta-media/taraje-hotel/internal/utils"
)

// Opsi pembayaran saat membuat booking.
const (
	BayarNanti = "Bayar Nanti"
	BayarDP    = "Bayar DP"
	BayarLunas = "Bayar Lunas"
)

// BookingService menangani ketersediaan kamar, perhitungan biaya, dan
// lifecycle pemesanan.
type BookingService struct {
	Store     *store.Store
	RequestID string
}

// CreateBookingInput adalah payload pembuatan booking baru.
type CreateBookingInput struct {
	GuestID       string `json:"guest_id"`
	RoomID        string `json:"room_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Notes         string `json:"notes"`
	PaymentOption string `json:"payment_option"` // Bayar Nanti | Bayar DP | Bayar Lunas
	PaymentAmount int64  `json:"payment_amount"`
	PaymentMethod string `json:"payment_method"`
}

// Nights menghitung jumlah malam dari dua tanggal YYYY-MM-DD.
func (s BookingService) Nights(checkIn, checkOut string) (int, error) {
	in, out, err := parseStayDates(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return utils.NightsBetween(in, out), nil
}

// TotalCost mengalikan harga per malam tipe kamar dengan jumlah malam.
// Referensi kamar/tipe yang putus dianggap biaya nol, bukan error.
func (s BookingService) TotalCost(roomID string, nights int) int64 {
	var total int64
	s.Store.View(func(st store.State) {
		room, ok := st.RoomByID(roomID)
		if !ok {
			return
		}
		rt, ok := st.RoomTypeByID(room.RoomTypeID)
		if !ok {
			return
		}
		total = rt.BasePrice * int64(nights)
	})
	return total
}

// IsRoomAvailable memeriksa apakah kamar bebas pada interval setengah-terbuka
// [checkIn, checkOut). Booking Cancelled dan booking dengan id
// excludeBookingID (saat re-validasi edit) tidak dihitung. Interval yang
// bersinggungan di ujung (checkout == check-in berikutnya) bukan konflik.
func (s BookingService) IsRoomAvailable(roomID, checkIn, checkOut, excludeBookingID string) (bool, error) {
	in, out, err := parseStayDates(checkIn, checkOut)
	if err != nil {
		return false, err
	}
	available := true
	s.Store.View(func(st store.State) {
		available = roomAvailable(st, roomID, in, out, excludeBookingID)
	})
	return available, nil
}

// AvailableRooms mengembalikan kamar yang bebas pada interval, opsional
// difilter per tipe kamar. Urutan mengikuti urutan koleksi kamar.
func (s BookingService) AvailableRooms(checkIn, checkOut, roomTypeID string) ([]models.Room, error) {
	in, out, err := parseStayDates(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	rooms := []models.Room{}
	s.Store.View(func(st store.State) {
		for _, room := range st.Rooms {
			if roomTypeID != "" && room.RoomTypeID != roomTypeID {
				continue
			}
			if roomAvailable(st, room.ID, in, out, "") {
				rooms = append(rooms, room)
			}
		}
	})
	return rooms, nil
}

// List mengembalikan seluruh booking sesuai urutan pembuatan.
func (s BookingService) List() []models.Booking {
	out := []models.Booking{}
	s.Store.View(func(st store.State) {
		out = append(out, st.Bookings...)
	})
	return out
}

// Get mencari satu booking berdasarkan id.
func (s BookingService) Get(id string) (models.Booking, error) {
	var (
		booking models.Booking
		found   bool
	)
	s.Store.View(func(st store.State) {
		booking, found = st.BookingByID(id)
	})
	if !found {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return booking, nil
}

// Create membuat booking baru setelah memvalidasi tanggal, ketersediaan
// kamar, dan opsi pembayaran. Seluruh efek (booking baru, status kamar,
// transaksi awal) diterapkan atomik dalam satu Update.
func (s BookingService) Create(in CreateBookingInput) (models.Booking, error) {
	start, end, err := parseStayDates(in.CheckIn, in.CheckOut)
	if err != nil {
		return models.Booking{}, err
	}
	if !start.Before(end) {
		return models.Booking{}, domain.ValidationError{Field: "check_out", Msg: "tanggal check-out harus setelah check-in"}
	}

	option := strings.TrimSpace(in.PaymentOption)
	if option == "" {
		option = BayarNanti
	}
	switch option {
	case BayarNanti, BayarDP, BayarLunas:
	default:
		return models.Booking{}, domain.ValidationError{Field: "payment_option", Msg: "opsi pembayaran tidak dikenal"}
	}

	var (
		booking models.Booking
		opErr   error
	)
	s.Store.Update(func(st *store.State) {
		if _, ok := st.GuestByID(in.GuestID); !ok {
			opErr = domain.NotFoundError{Resource: "tamu"}
			return
		}
		room, ok := st.RoomByID(in.RoomID)
		if !ok {
			opErr = domain.NotFoundError{Resource: "kamar"}
			return
		}
		if !roomAvailable(*st, room.ID, start, end, "") {
			opErr = domain.ConflictError{Resource: "kamar", Msg: "tidak tersedia pada tanggal tersebut"}
			return
		}

		nights := utils.NightsBetween(start, end)
		var totalCost int64
		if rt, ok := st.RoomTypeByID(room.RoomTypeID); ok {
			totalCost = rt.BasePrice * int64(nights)
		}

		paid := int64(0)
		if option != BayarNanti {
			paid = in.PaymentAmount
			if paid <= 0 {
				opErr = domain.ValidationError{Field: "payment_amount", Msg: "jumlah pembayaran harus lebih dari 0"}
				return
			}
			if paid > totalCost {
				opErr = domain.ValidationError{Field: "payment_amount", Msg: "jumlah pembayaran melebihi total biaya"}
				return
			}
			if option == BayarLunas && paid != totalCost {
				opErr = domain.ValidationError{Field: "payment_amount", Msg: "pembayaran lunas harus sama dengan total biaya"}
				return
			}
		}

		paymentStatus := models.PaymentBelumBayar
		switch {
		case paid == 0:
		case paid == totalCost:
			paymentStatus = models.PaymentLunas
		default:
			paymentStatus = models.PaymentDP
		}

		booking = models.Booking{
			ID:            store.NewID(),
			Code:          nextBookingCode(st.Bookings, s.Store.Now()),
			GuestID:       in.GuestID,
			RoomID:        in.RoomID,
			CheckIn:       utils.FormatDate(start),
			CheckOut:      utils.FormatDate(end),
			Nights:        nights,
			TotalCost:     totalCost,
			TotalPaid:     paid,
			Remaining:     totalCost - paid,
			PaymentStatus: paymentStatus,
			Status:        models.BookingConfirmed,
			Notes:         strings.TrimSpace(in.Notes),
		}
		st.Bookings = append(st.Bookings, booking)

		if paid > 0 {
			kind := models.TransaksiUangMuka
			if paid == totalCost {
				kind = models.TransaksiPelunasan
			}
			method := strings.TrimSpace(in.PaymentMethod)
			if method == "" {
				method = models.MetodeTransferBank
			}
			st.Transactions = append(st.Transactions, models.Transaction{
				ID:        store.NewID(),
				BookingID: booking.ID,
				Date:      s.Store.Today(),
				Kind:      kind,
				Amount:    paid,
				Method:    method,
			})
		}

		setRoomStatus(st, room.ID, models.RoomDipesan)
	})
	if opErr != nil {
		return models.Booking{}, opErr
	}

	utils.LogEvent(s.RequestID, "booking", "create", "kode="+booking.Code)
	return booking, nil
}

// Cancel membatalkan booking: status menjadi Cancelled dan kamar kembali
// Tersedia. Membatalkan booking yang sudah Cancelled hanya menerapkan ulang
// state yang sama. Transaksi yang sudah tercatat tidak disentuh; refund
// dicatat terpisah lewat PaymentService.RecordRefund.
func (s BookingService) Cancel(id string) (models.Booking, error) {
	var (
		booking models.Booking
		opErr   error
	)
	s.Store.Update(func(st *store.State) {
		b, ok := st.BookingByID(id)
		if !ok {
			opErr = domain.NotFoundError{Resource: "booking"}
			return
		}
		b.Status = models.BookingCancelled
		replaceBooking(st, b)
		setRoomStatus(st, b.RoomID, models.RoomTersedia)
		booking = b
	})
	if opErr != nil {
		return models.Booking{}, opErr
	}

	utils.LogEvent(s.RequestID, "booking", "cancel", "kode="+booking.Code)
	return booking, nil
}

// Update mengubah catatan, tanggal menginap, atau status lifecycle booking.
// Perubahan tanggal divalidasi ulang terhadap ketersediaan (booking ini
// sendiri dikecualikan) lalu memicu perhitungan ulang malam, total biaya,
// dan sisa pembayaran. Perpindahan status mengikuti mesin state
// Confirmed -> Checked-in -> Checked-out, dengan Cancelled dari Confirmed
// atau Checked-in.
func (s BookingService) Update(id string, upd models.BookingUpdate) (models.Booking, error) {
	var (
		booking models.Booking
		opErr   error
	)
	s.Store.Update(func(st *store.State) {
		b, ok := st.BookingByID(id)
		if !ok {
			opErr = domain.NotFoundError{Resource: "booking"}
			return
		}

		if upd.CheckIn != nil || upd.CheckOut != nil {
			checkIn := b.CheckIn
			checkOut := b.CheckOut
			if upd.CheckIn != nil {
				checkIn = *upd.CheckIn
			}
			if upd.CheckOut != nil {
				checkOut = *upd.CheckOut
			}
			start, end, err := parseStayDates(checkIn, checkOut)
			if err != nil {
				opErr = err
				return
			}
			if !start.Before(end) {
				opErr = domain.ValidationError{Field: "check_out", Msg: "tanggal check-out harus setelah check-in"}
				return
			}
			if !roomAvailable(*st, b.RoomID, start, end, b.ID) {
				opErr = domain.ConflictError{Resource: "kamar", Msg: "tidak tersedia pada tanggal tersebut"}
				return
			}
			b.CheckIn = utils.FormatDate(start)
			b.CheckOut = utils.FormatDate(end)
			b.Nights = utils.NightsBetween(start, end)
			if room, ok := st.RoomByID(b.RoomID); ok {
				if rt, ok := st.RoomTypeByID(room.RoomTypeID); ok {
					b.TotalCost = rt.BasePrice * int64(b.Nights)
				}
			}
			b.Remaining = b.TotalCost - b.TotalPaid
		}

		if upd.Status != nil && *upd.Status != b.Status {
			next := *upd.Status
			if !lifecycleAllowed(b.Status, next) {
				opErr = domain.ValidationError{
					Field: "status",
					Msg:   fmt.Sprintf("transisi %s ke %s tidak diizinkan", b.Status, next),
				}
				return
			}
			b.Status = next
			if next == models.BookingCancelled {
				setRoomStatus(st, b.RoomID, models.RoomTersedia)
			}
		}

		if upd.Notes != nil {
			b.Notes = strings.TrimSpace(*upd.Notes)
		}

		replaceBooking(st, b)
		booking = b
	})
	if opErr != nil {
		return models.Booking{}, opErr
	}

	utils.LogEvent(s.RequestID, "booking", "update", "kode="+booking.Code)
	return booking, nil
}

// GenerateCode mengembalikan kode booking berikutnya untuk hari ini tanpa
// memesannya. Penomoran dimulai ulang setiap hari kalender.
func (s BookingService) GenerateCode() string {
	var code string
	s.Store.View(func(st store.State) {
		code = nextBookingCode(st.Bookings, s.Store.Now())
	})
	return code
}

func lifecycleAllowed(current, next string) bool {
	switch current {
	case models.BookingConfirmed:
		return next == models.BookingCheckedIn || next == models.BookingCancelled
	case models.BookingCheckedIn:
		return next == models.BookingCheckedOut || next == models.BookingCancelled
	default:
		// Checked-out dan Cancelled terminal.
		return false
	}
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "check_in", Msg: "format tanggal harus YYYY-MM-DD", Err: err}
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "check_out", Msg: "format tanggal harus YYYY-MM-DD", Err: err}
	}
	return in, out, nil
}

// roomAvailable menjalankan scan konflik interval setengah-terbuka:
// overlap jika newStart < existingEnd dan newEnd > existingStart.
func roomAvailable(st store.State, roomID string, newStart, newEnd time.Time, excludeBookingID string) bool {
	for _, b := range st.Bookings {
		if b.ID == excludeBookingID || b.RoomID != roomID || !b.Active() {
			continue
		}
		existingStart, err := utils.ParseDate(b.CheckIn)
		if err != nil {
			continue
		}
		existingEnd, err := utils.ParseDate(b.CheckOut)
		if err != nil {
			continue
		}
		if newStart.Before(existingEnd) && newEnd.After(existingStart) {
			return false
		}
	}
	return true
}

func nextBookingCode(bookings []models.Booking, now time.Time) string {
	stamp := utils.DateStamp(now)
	max := 0
	for _, b := range bookings {
		if !strings.Contains(b.Code, stamp) {
			continue
		}
		if n := utils.CodeSuffix(b.Code); n > max {
			max = n
		}
	}
	return fmt.Sprintf("BOOK-%s-%03d", stamp, max+1)
}

func replaceBooking(st *store.State, b models.Booking) {
	next := make([]models.Booking, len(st.Bookings))
	for i, cur := range st.Bookings {
		if cur.ID == b.ID {
			next[i] = b
		} else {
			next[i] = cur
		}
	}
	st.Bookings = next
}

func setRoomStatus(st *store.State, roomID, status string) {
	next := make([]models.Room, len(st.Rooms))
	for i, r := range st.Rooms {
		if r.ID == roomID {
			r.Status = status
		}
		next[i] = r
	}
	st.Rooms = next
}
