package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
)

// State adalah snapshot seluruh koleksi entitas. Mutasi selalu mengganti
// slice terdampak dengan nilai baru di bawah lock Store, sehingga pemanggil
// lain melihat state lama atau state baru secara utuh, tidak pernah setengah.
type State struct {
	Users        []models.User
	RoomTypes    []models.RoomType
	Guests       []models.Guest
	Rooms        []models.Room
	Bookings     []models.Booking
	Transactions []models.Transaction
	FloorLayouts []models.FloorLayout
}

// Store memegang state aplikasi secara eksklusif di memori. Tidak ada
// persistence: proses berhenti berarti seluruh riwayat hilang.
type Store struct {
	mu    sync.RWMutex
	state State

	// Now dapat di-override pada test untuk mengunci tanggal berjalan.
	Now func() time.Time
}

// New membuat store kosong.
func New() *Store {
	return &Store{Now: time.Now}
}

// View menjalankan fn dengan akses baca atas snapshot saat ini.
func (s *Store) View(fn func(State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// Update menjalankan fn di bawah lock tulis. Seluruh mutasi di dalam satu
// panggilan Update terlihat atomik bagi pemanggil lain.
func (s *Store) Update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Today mengembalikan tanggal berjalan dalam format YYYY-MM-DD.
func (s *Store) Today() string {
	return s.Now().Format("2006-01-02")
}

// NewID menghasilkan id unik untuk entitas baru.
func NewID() string {
	return uuid.NewString()
}
