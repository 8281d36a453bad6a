package store

import (
	"testing"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
)

func TestSeedSnapshot(t *testing.T) {
	s := New()
	Seed(s)

	s.View(func(st State) {
		if len(st.Users) != 3 || len(st.RoomTypes) != 3 || len(st.Guests) != 2 {
			t.Fatalf("master seed salah: users=%d types=%d guests=%d", len(st.Users), len(st.RoomTypes), len(st.Guests))
		}
		if len(st.Rooms) != 8 || len(st.FloorLayouts) != 3 {
			t.Fatalf("seed kamar/denah salah: rooms=%d layouts=%d", len(st.Rooms), len(st.FloorLayouts))
		}
		if len(st.Bookings) != 1 || len(st.Transactions) != 1 {
			t.Fatalf("seed booking salah: bookings=%d trx=%d", len(st.Bookings), len(st.Transactions))
		}

		admin, ok := st.UserByEmail("admin@barutaraje.com")
		if !ok || admin.Role != models.RoleAdmin || admin.StaffCode != "STF-001" {
			t.Fatalf("akun admin seed salah: %+v", admin)
		}

		booked, ok := st.RoomByNumber("201")
		if !ok || booked.Status != models.RoomDipesan {
			t.Fatalf("kamar 201 harusnya Dipesan: %+v", booked)
		}

		b := st.Bookings[0]
		if b.Code != "BOOK-20250115-001" || b.RoomID != booked.ID {
			t.Fatalf("booking seed salah: %+v", b)
		}
		if b.TotalPaid+b.Remaining != b.TotalCost {
			t.Fatalf("invarian pembayaran seed rusak")
		}

		trx := st.TransactionsByBooking(b.ID)
		if len(trx) != 1 || trx[0].Kind != models.TransaksiUangMuka || trx[0].Amount != b.TotalPaid {
			t.Fatalf("transaksi seed salah: %+v", trx)
		}
	})
}

func TestUpdateIsVisibleToView(t *testing.T) {
	s := New()

	s.Update(func(st *State) {
		st.Guests = append(st.Guests, models.Guest{ID: NewID(), Code: "TAMU-001", FullName: "Uji"})
	})

	var count int
	s.View(func(st State) { count = len(st.Guests) })
	if count != 1 {
		t.Fatalf("mutasi tidak terlihat: %d tamu", count)
	}

	if NewID() == NewID() {
		t.Fatalf("NewID menghasilkan id kembar")
	}
}
