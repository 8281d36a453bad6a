package store

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
)

// Seed mengisi store dengan data awal hotel: akun staf default, tiga tipe
// kamar, delapan kamar di tiga lantai, dua tamu, dan satu booking berjalan.
// Dipakai saat boot server dan sebagai fixture test.
func Seed(s *Store) {
	admin := models.User{
		ID:           NewID(),
		StaffCode:    "STF-001",
		FullName:     "Admin Utama",
		Email:        "admin@barutaraje.com",
		Phone:        "081234567890",
		Role:         models.RoleAdmin,
		Status:       models.UserAktif,
		PasswordHash: mustHash("admin123"),
		RegisteredAt: "2024-01-01",
	}
	resepsionis := models.User{
		ID:           NewID(),
		StaffCode:    "STF-002",
		FullName:     "Resepsionis Pertama",
		Email:        "resepsionis@barutaraje.com",
		Phone:        "081234567891",
		Role:         models.RoleResepsionis,
		Status:       models.UserAktif,
		PasswordHash: mustHash("resepsionis123"),
		RegisteredAt: "2024-01-01",
	}
	customer := models.User{
		ID:           NewID(),
		FullName:     "John Doe",
		Email:        "john@email.com",
		Phone:        "081234567892",
		Role:         models.RoleCustomer,
		Status:       models.UserAktif,
		PasswordHash: mustHash("customer123"),
		RegisteredAt: "2024-01-15",
	}

	standard := models.RoomType{
		ID:          NewID(),
		Code:        "TK-01",
		Name:        "Standard Room",
		Description: "Kamar standar dengan fasilitas lengkap",
		BasePrice:   500_000,
		Capacity:    2,
		PhotoURL:    "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=400",
	}
	deluxe := models.RoomType{
		ID:          NewID(),
		Code:        "TK-02",
		Name:        "Deluxe Room",
		Description: "Kamar deluxe dengan pemandangan indah",
		BasePrice:   750_000,
		Capacity:    3,
		PhotoURL:    "https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=400",
	}
	suite := models.RoomType{
		ID:          NewID(),
		Code:        "TK-03",
		Name:        "Suite Room",
		Description: "Kamar suite mewah dengan ruang tamu terpisah",
		BasePrice:   1_200_000,
		Capacity:    4,
		PhotoURL:    "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=400",
	}

	rina := models.Guest{
		ID:             NewID(),
		Code:           "TAMU-001",
		FullName:       "Rina Marlina",
		Email:          "rina.marlina@email.com",
		Phone:          "081234567893",
		IdentityType:   models.IdentitasKTP,
		IdentityNumber: "3571234567890123",
		Address:        "Jl. Merdeka No. 123, Jakarta",
		Notes:          "Tamu regular, suka kamar dengan pemandangan",
	}
	ahmad := models.Guest{
		ID:             NewID(),
		Code:           "TAMU-002",
		FullName:       "Ahmad Budiman",
		Email:          "ahmad.budiman@email.com",
		Phone:          "081234567894",
		IdentityType:   models.IdentitasSIM,
		IdentityNumber: "SIM1234567890",
		Address:        "Jl. Sudirman No. 456, Bandung",
	}

	rooms := []models.Room{
		{ID: NewID(), Number: "101", Floor: 1, RoomTypeID: standard.ID, Status: models.RoomTersedia},
		{ID: NewID(), Number: "102", Floor: 1, RoomTypeID: standard.ID, Status: models.RoomTersedia},
		{ID: NewID(), Number: "103", Floor: 1, RoomTypeID: deluxe.ID, Status: models.RoomDibersihkan},
		{ID: NewID(), Number: "104", Floor: 1, RoomTypeID: standard.ID, Status: models.RoomPerbaikan},
		{ID: NewID(), Number: "201", Floor: 2, RoomTypeID: deluxe.ID, Status: models.RoomDipesan},
		{ID: NewID(), Number: "202", Floor: 2, RoomTypeID: deluxe.ID, Status: models.RoomTersedia},
		{ID: NewID(), Number: "203", Floor: 2, RoomTypeID: suite.ID, Status: models.RoomTersedia},
		{ID: NewID(), Number: "301", Floor: 3, RoomTypeID: suite.ID, Status: models.RoomTersedia},
	}

	booking := models.Booking{
		ID:            NewID(),
		Code:          "BOOK-20250115-001",
		GuestID:       rina.ID,
		RoomID:        rooms[4].ID, // kamar 201
		CheckIn:       "2025-01-20",
		CheckOut:      "2025-01-23",
		Nights:        3,
		TotalCost:     2_250_000,
		TotalPaid:     750_000,
		Remaining:     1_500_000,
		PaymentStatus: models.PaymentDP,
		Status:        models.BookingConfirmed,
		Notes:         "Mohon kamar dengan pemandangan bagus",
	}
	dp := models.Transaction{
		ID:        NewID(),
		BookingID: booking.ID,
		Date:      "2025-01-15",
		Kind:      models.TransaksiUangMuka,
		Amount:    750_000,
		Method:    models.MetodeTransferBank,
	}

	s.Update(func(st *State) {
		st.Users = []models.User{admin, resepsionis, customer}
		st.RoomTypes = []models.RoomType{standard, deluxe, suite}
		st.Guests = []models.Guest{rina, ahmad}
		st.Rooms = rooms
		st.Bookings = []models.Booking{booking}
		st.Transactions = []models.Transaction{dp}
		st.FloorLayouts = []models.FloorLayout{
			{ID: NewID(), Floor: 1, GridCols: 8, GridRows: 4},
			{ID: NewID(), Floor: 2, GridCols: 8, GridRows: 4},
			{ID: NewID(), Floor: 3, GridCols: 6, GridRows: 3},
		}
	})
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
