package store

import "github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"

func (st State) UserByID(id string) (models.User, bool) {
	for _, u := range st.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (st State) UserByEmail(email string) (models.User, bool) {
	for _, u := range st.Users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (st State) RoomTypeByID(id string) (models.RoomType, bool) {
	for _, rt := range st.RoomTypes {
		if rt.ID == id {
			return rt, true
		}
	}
	return models.RoomType{}, false
}

func (st State) GuestByID(id string) (models.Guest, bool) {
	for _, g := range st.Guests {
		if g.ID == id {
			return g, true
		}
	}
	return models.Guest{}, false
}

func (st State) RoomByID(id string) (models.Room, bool) {
	for _, r := range st.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}

func (st State) RoomByNumber(number string) (models.Room, bool) {
	for _, r := range st.Rooms {
		if r.Number == number {
			return r, true
		}
	}
	return models.Room{}, false
}

func (st State) BookingByID(id string) (models.Booking, bool) {
	for _, b := range st.Bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

func (st State) LayoutByFloor(floor int) (models.FloorLayout, bool) {
	for _, l := range st.FloorLayouts {
		if l.Floor == floor {
			return l, true
		}
	}
	return models.FloorLayout{}, false
}

// TransactionsByBooking mengembalikan transaksi milik satu booking,
// urut sesuai urutan pencatatan.
func (st State) TransactionsByBooking(bookingID string) []models.Transaction {
	out := []models.Transaction{}
	for _, t := range st.Transactions {
		if t.BookingID == bookingID {
			out = append(out, t)
		}
	}
	return out
}
