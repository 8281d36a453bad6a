package services

import (
	"testing"
	"time"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
)

// testStore membangun store ter-seed dengan tanggal berjalan terkunci supaya
// kode booking dan transaksi deterministik.
func testStore() *store.Store {
	st := store.New()
	st.Now = func() time.Time { return time.Date(2025, 9, 12, 10, 0, 0, 0, time.Local) }
	store.Seed(st)
	return st
}

func roomByNumber(t *testing.T, st *store.Store, number string) models.Room {
	t.Helper()
	var (
		room  models.Room
		found bool
	)
	st.View(func(s store.State) {
		room, found = s.RoomByNumber(number)
	})
	if !found {
		t.Fatalf("kamar %s tidak ada di seed", number)
	}
	return room
}

func firstGuest(t *testing.T, st *store.Store) models.Guest {
	t.Helper()
	var guest models.Guest
	st.View(func(s store.State) {
		if len(s.Guests) > 0 {
			guest = s.Guests[0]
		}
	})
	if guest.ID == "" {
		t.Fatalf("seed tidak punya tamu")
	}
	return guest
}

func seededBooking(t *testing.T, st *store.Store) models.Booking {
	t.Helper()
	var booking models.Booking
	st.View(func(s store.State) {
		if len(s.Bookings) > 0 {
			booking = s.Bookings[0]
		}
	})
	if booking.ID == "" {
		t.Fatalf("seed tidak punya booking")
	}
	return booking
}

func TestNightsAndTotalCost(t *testing.T) {
	st := testStore()
	svc := BookingService{Store: st}

	nights, err := svc.Nights("2025-01-20", "2025-01-23")
	if err != nil {
		t.Fatalf("Nights error: %v", err)
	}
	if nights != 3 {
		t.Fatalf("nights = %d, harusnya 3", nights)
	}

	room := roomByNumber(t, st, "101") // Standard 500.000/malam
	if total := svc.TotalCost(room.ID, nights); total != 1_500_000 {
		t.Fatalf("total = %d, harusnya 1500000", total)
	}

	if _, err := svc.Nights("20-01-2025", "2025-01-23"); !domain.IsValidation(err) {
		t.Fatalf("format tanggal salah harusnya ValidationError, dapat %v", err)
	}
}

func TestCreateBookingFullPayment(t *testing.T) {
	st := testStore()
	svc := BookingService{Store: st}
	guest := firstGuest(t, st)
	room := roomByNumber(t, st, "101")

	booking, err := svc.Create(CreateBookingInput{
		GuestID:       guest.ID,
		RoomID:        room.ID,
		CheckIn:       "2025-10-01",
		CheckOut:      "2025-10-04",
		PaymentOption: BayarLunas,
		PaymentAmount: 1_500_000,
		PaymentMethod: models.MetodeTunai,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if booking.Nights != 3 || booking.TotalCost != 1_500_000 {
		t.Fatalf("perhitungan salah: nights=%d total=%d", booking.Nights, booking.TotalCost)
	}
	if booking.TotalPaid != 1_500_000 || booking.Remaining != 0 {
		t.Fatalf("pembayaran salah: paid=%d remaining=%d", booking.TotalPaid, booking.Remaining)
	}
	if booking.PaymentStatus != models.PaymentLunas {
		t.Fatalf("status pembayaran = %s, harusnya Lunas", booking.PaymentStatus)
	}
	if booking.Status != models.BookingConfirmed {
		t.Fatalf("status booking = %s, harusnya Confirmed", booking.Status)
	}

	if got := roomByNumber(t, st, "101").Status; got != models.RoomDipesan {
		t.Fatalf("status kamar = %s, harusnya Dipesan", got)
	}

	st.View(func(s store.State) {
		trx := s.TransactionsByBooking(booking.ID)
		if len(trx) != 1 {
			t.Fatalf("jumlah transaksi = %d, harusnya 1", len(trx))
		}
		if trx[0].Kind != models.TransaksiPelunasan || trx[0].Amount != 1_500_000 {
			t.Fatalf("transaksi awal salah: %+v", trx[0])
		}
	})
}

func TestCreateBookingDownPayment(t *testing.T) {
	st := testStore()
	svc := BookingService{Store: st}
	guest := firstGuest(t, st)
	room := roomByNumber(t, st, "202") // Deluxe 750.000/malam

	booking, err := svc.Create(CreateBookingInput{
		GuestID:       guest.ID,
		RoomID:        room.ID,
		CheckIn:       "2025-10-01",
		CheckOut:      "2025-10-03",
		PaymentOption: BayarDP,
		PaymentAmount: 500_000,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if booking.PaymentStatus != models.PaymentDP {
		t.Fatalf("status pembayaran = %s, harusnya DP", booking.PaymentStatus)
	}
	if booking.Remaining != 1_000_000 {
		t.Fatalf("sisa = %d, harusnya 1000000", booking.Remaining)
	}

	st.View(func(s store.State) {
		trx := s.TransactionsByBooking(booking.ID)
		if len(trx) != 1 || trx[0].Kind != models.TransaksiUangMuka {
			t.Fatalf("transaksi DP salah: %+v", trx)
		}
	})
}

func TestCreateBookingPaymentValidation(t *testing.T) {
	st := testStore()
	svc := BookingService{Store: st}
	guest := firstGuest(t, st)
	room := roomByNumber(t, st, "101")

	cases := []CreateBookingInput{
		// DP tanpa jumlah
		{GuestID: guest.ID, RoomID: room.ID, CheckIn: "2025-10-01", CheckOut: "2025-10-04", PaymentOption: BayarDP},
		// DP melebihi total
		{GuestID: guest.ID, RoomID: room.ID, CheckIn: "2025-10-01", CheckOut: "2025-10-04", PaymentOption: BayarDP, PaymentAmount: 2_000_000},
		// Lunas tidak pas dengan total
		{GuestID: guest.ID, RoomID: room.ID, CheckIn: "2025-10-01", CheckOut: "2025-10-04", PaymentOption: BayarLunas, PaymentAmount: 1_000_000},
		// Opsi tidak dikenal
		{GuestID: guest.ID, RoomID: room.ID, CheckIn: "2025-10-01", CheckOut: "2025-10-04", PaymentOption: "Cicilan"},
		// Check-out sebelum check-in
		{GuestID: guest.ID, RoomID: room.ID, CheckIn: "2025-10-04", CheckOut: "2025-10-01"},
	}
	for i, in := range cases {
		if _, err := svc.Create(in); !domain.IsValidation(err) {
			t.Fatalf("case %d: harusnya ValidationError, dapat %v", i, err)
		}
	}

	// Tidak ada booking atau transaksi baru yang bocor dari percobaan gagal.
	st.View(func(s store.State) {
		if len(s.Bookings) != 1 || len(s.Transactions) != 1 {
			t.Fatalf("state berubah setelah create gagal: bookings=%d trx=%d", len(s.Bookings), len(s.Transactions))
		}
	})
}

func TestCreateBookingOverlapConflict(t *testing.T) {
	st := testStore()
	svc := BookingService{Store: st}
	guest := firstGuest(t, st)
	room := roomByNumber(t, st, "201") // sudah dipesan 2025-01-20 s/d 2025-01-23

	_, err := svc.Create(CreateBookingInput{
		GuestID:  guest.ID,
		RoomID:   room.ID,
		CheckIn:  "2025-01-22",
		CheckOut: "2025-01-25",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("tanggal bertabrakan harusnya ConflictError, dapat %v", err)
	}

	// Interval setengah-terbuka: check-in tepat di hari check-out booking
	// lama bukan konflik.
	if _, err := svc.Create(CreateBookingInput{
		GuestID:  guest.ID,
		RoomID:   room.ID,
		CheckIn:  "2025-01-23",
		CheckOut: "2025-01-25",
	}); err != nil {
		t.Fatalf("tanggal bersinggungan di ujung harusnya boleh, dapat %v", err)
	}
}

func TestIsRoomAvailableExcludesBooking(t *testing.T) {
	st := testStore()
	svc := BookingService{Store: st}
	booking := seededBooking(t, st)

	ok, err := svc.IsRoomAvailable(booking.RoomID, booking.CheckIn, booking.CheckOut, "")
	if err != nil {
		t.Fatalf("IsRoomAvailable error: %v", err)
	}
	if ok {
		t.Fatalf("kamar dengan booking aktif harusnya tidak tersedia")
	}

	// Saat re-validasi edit, booking itu sendiri dikecualikan.
	ok, err = svc.IsRoomAvailable(booking.RoomID, booking.CheckIn, booking.CheckOut, booking.ID)
	if err != nil {
		t.Fatalf("IsRoomAvailable error: %v", err)
	}
	if !ok {
		t.Fatalf("booking sendiri harusnya dikecualikan dari cek konflik")
	}
}

func TestAvailableRoomsFilterByType(t *testing.T) {
	st := testStore()
	svc := BookingService{Store: st}

	var deluxeID string
	st.View(func(s store.State) {
		for _, rt := range s.RoomTypes {
			if rt.Code == "TK-02" {
				deluxeID = rt.ID
			}
		}
	})

	rooms, err := svc.AvailableRooms("2025-01-21", "2025-01-22", deluxeID)
	if err != nil {
		t.Fatalf("AvailableRooms error: %v", err)
	}
	// Deluxe: 103, 201, 202. Kamar 201 tertutup booking seed.
	if len(rooms) != 2 {
		t.Fatalf("jumlah kamar tersedia = %d, harusnya 2", len(rooms))
	}
	for _, r := range rooms {
		if r.Number == "201" {
			t.Fatalf("kamar 201 harusnya tersaring oleh booking aktif")
		}
	}
}

func TestCancelBookingFreesRoom(t *testing.T) {
	st := testStore()
	svc := BookingService{Store: st}
	booking := seededBooking(t, st)

	cancelled, err := svc.Cancel(booking.ID)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if cancelled.Status != models.BookingCancelled {
		t.Fatalf("status = %s, harusnya Cancelled", cancelled.Status)
	}
	if got := roomByNumber(t, st, "201").Status; got != models.RoomTersedia {
		t.Fatalf("kamar tidak kembali Tersedia, status=%s", got)
	}

	// Transaksi lama tetap tercatat.
	st.View(func(s store.State) {
		if len(s.TransactionsByBooking(booking.ID)) != 1 {
			t.Fatalf("transaksi hilang setelah cancel")
		}
	})

	// Tanggal yang sama kini bebas dipesan ulang.
	ok, err := svc.IsRoomAvailable(booking.RoomID, booking.CheckIn, booking.CheckOut, "")
	if err != nil {
		t.Fatalf("IsRoomAvailable error: %v", err)
	}
	if !ok {
		t.Fatalf("kamar harusnya tersedia setelah booking dibatalkan")
	}
}

func TestBookingLifecycle(t *testing.T) {
	st := testStore()
	svc := BookingService{Store: st}
	booking := seededBooking(t, st)

	checkedIn := models.BookingCheckedIn
	if _, err := svc.Update(booking.ID, models.BookingUpdate{Status: &checkedIn}); err != nil {
		t.Fatalf("Confirmed ke Checked-in error: %v", err)
	}

	checkedOut := models.BookingCheckedOut
	if _, err := svc.Update(booking.ID, models.BookingUpdate{Status: &checkedOut}); err != nil {
		t.Fatalf("Checked-in ke Checked-out error: %v", err)
	}

	// Checked-out terminal.
	cancelledStatus := models.BookingCancelled
	if _, err := svc.Update(booking.ID, models.BookingUpdate{Status: &cancelledStatus}); !domain.IsValidation(err) {
		t.Fatalf("transisi dari Checked-out harusnya ditolak, dapat %v", err)
	}

	// Lompat langsung Confirmed ke Checked-out juga ditolak.
	st2 := testStore()
	svc2 := BookingService{Store: st2}
	b2 := seededBooking(t, st2)
	if _, err := svc2.Update(b2.ID, models.BookingUpdate{Status: &checkedOut}); !domain.IsValidation(err) {
		t.Fatalf("Confirmed langsung Checked-out harusnya ditolak, dapat %v", err)
	}
}

func TestUpdateBookingDatesRecomputesCost(t *testing.T) {
	st := testStore()
	svc := BookingService{Store: st}
	booking := seededBooking(t, st) // 3 malam deluxe, DP 750.000

	newOut := "2025-01-25"
	updated, err := svc.Update(booking.ID, models.BookingUpdate{CheckOut: &newOut})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Nights != 5 {
		t.Fatalf("nights = %d, harusnya 5", updated.Nights)
	}
	if updated.TotalCost != 3_750_000 {
		t.Fatalf("total = %d, harusnya 3750000", updated.TotalCost)
	}
	if updated.Remaining != 3_000_000 {
		t.Fatalf("sisa = %d, harusnya 3000000", updated.Remaining)
	}
	if updated.TotalPaid != booking.TotalPaid {
		t.Fatalf("total terbayar berubah: %d", updated.TotalPaid)
	}
}

func TestBookingCodeDailySequence(t *testing.T) {
	st := testStore()
	svc := BookingService{Store: st}
	guest := firstGuest(t, st)

	if code := svc.GenerateCode(); code != "BOOK-20250912-001" {
		t.Fatalf("kode pertama hari ini = %s", code)
	}

	first, err := svc.Create(CreateBookingInput{
		GuestID: guest.ID, RoomID: roomByNumber(t, st, "101").ID,
		CheckIn: "2025-10-01", CheckOut: "2025-10-02",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if first.Code != "BOOK-20250912-001" {
		t.Fatalf("kode booking pertama = %s", first.Code)
	}

	second, err := svc.Create(CreateBookingInput{
		GuestID: guest.ID, RoomID: roomByNumber(t, st, "102").ID,
		CheckIn: "2025-10-01", CheckOut: "2025-10-02",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if second.Code != "BOOK-20250912-002" {
		t.Fatalf("kode booking kedua = %s", second.Code)
	}

	// Penomoran dimulai ulang di hari kalender berikutnya.
	st.Now = func() time.Time { return time.Date(2025, 9, 13, 8, 0, 0, 0, time.Local) }
	if code := svc.GenerateCode(); code != "BOOK-20250913-001" {
		t.Fatalf("kode hari berikutnya = %s", code)
	}
}
