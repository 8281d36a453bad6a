package services

import (
	"strings"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
	"github.com/solusi-cipta-media/taraje-hotel/internal/utils"
)

// RoomService mengelola kamar fisik dan mesin state statusnya.
type RoomService struct {
	Store     *store.Store
	RequestID string
}

// RoomInput adalah payload create/update kamar.
type RoomInput struct {
	Number     string `json:"number"`
	Floor      int    `json:"floor"`
	RoomTypeID string `json:"room_type_id"`
}

func (s RoomService) List() []models.Room {
	out := []models.Room{}
	s.Store.View(func(st store.State) {
		out = append(out, st.Rooms...)
	})
	return out
}

func (s RoomService) Get(id string) (models.Room, error) {
	var (
		room  models.Room
		found bool
	)
	s.Store.View(func(st store.State) {
		room, found = st.RoomByID(id)
	})
	if !found {
		return models.Room{}, domain.NotFoundError{Resource: "kamar"}
	}
	return room, nil
}

// Create menambahkan kamar baru dengan status awal Tersedia.
// Nomor kamar harus unik dan tipe kamar harus ada.
func (s RoomService) Create(in RoomInput) (models.Room, error) {
	number := strings.TrimSpace(in.Number)
	if number == "" {
		return models.Room{}, domain.ValidationError{Field: "number", Msg: "nomor kamar wajib diisi"}
	}
	if in.Floor <= 0 {
		return models.Room{}, domain.ValidationError{Field: "floor", Msg: "lantai tidak valid"}
	}

	var (
		room  models.Room
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		if _, ok := st.RoomByNumber(number); ok {
			opErr = domain.ConflictError{Resource: "kamar", Msg: "nomor sudah dipakai"}
			return
		}
		if _, ok := st.RoomTypeByID(in.RoomTypeID); !ok {
			opErr = domain.NotFoundError{Resource: "tipe kamar"}
			return
		}
		room = models.Room{
			ID:         store.NewID(),
			Number:     number,
			Floor:      in.Floor,
			RoomTypeID: in.RoomTypeID,
			Status:     models.RoomTersedia,
		}
		st.Rooms = append(st.Rooms, room)
	})
	if opErr != nil {
		return models.Room{}, opErr
	}

	utils.LogEvent(s.RequestID, "room", "create", "nomor="+room.Number)
	return room, nil
}

// Update mengubah nomor, lantai, atau tipe kamar.
func (s RoomService) Update(id string, in RoomInput) (models.Room, error) {
	var (
		room  models.Room
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		cur, ok := st.RoomByID(id)
		if !ok {
			opErr = domain.NotFoundError{Resource: "kamar"}
			return
		}
		if number := strings.TrimSpace(in.Number); number != "" && number != cur.Number {
			if _, taken := st.RoomByNumber(number); taken {
				opErr = domain.ConflictError{Resource: "kamar", Msg: "nomor sudah dipakai"}
				return
			}
			cur.Number = number
		}
		if in.Floor > 0 {
			cur.Floor = in.Floor
		}
		if in.RoomTypeID != "" && in.RoomTypeID != cur.RoomTypeID {
			if _, ok := st.RoomTypeByID(in.RoomTypeID); !ok {
				opErr = domain.NotFoundError{Resource: "tipe kamar"}
				return
			}
			cur.RoomTypeID = in.RoomTypeID
		}

		next := make([]models.Room, len(st.Rooms))
		for i, r := range st.Rooms {
			if r.ID == id {
				next[i] = cur
			} else {
				next[i] = r
			}
		}
		st.Rooms = next
		room = cur
	})
	if opErr != nil {
		return models.Room{}, opErr
	}

	utils.LogEvent(s.RequestID, "room", "update", "nomor="+room.Number)
	return room, nil
}

// UpdateStatus menimpa status kamar. Mutator ini sengaja tidak menegakkan
// himpunan transisi AvailableStatusOptions maupun kunci status Dipesan;
// pembatasan pilihan diserahkan ke pemanggil lewat CanUpdateStatus dan
// AvailableStatusOptions. Lihat catatan di DESIGN.md.
func (s RoomService) UpdateStatus(id, status string) (models.Room, error) {
	switch status {
	case models.RoomTersedia, models.RoomDipesan, models.RoomDibersihkan, models.RoomPerbaikan:
	default:
		return models.Room{}, domain.ValidationError{Field: "status", Msg: "status tidak dikenal"}
	}

	var (
		room  models.Room
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		cur, ok := st.RoomByID(id)
		if !ok {
			opErr = domain.NotFoundError{Resource: "kamar"}
			return
		}
		setRoomStatus(st, id, status)
		cur.Status = status
		room = cur
	})
	if opErr != nil {
		return models.Room{}, opErr
	}

	utils.LogEvent(s.RequestID, "room", "update_status", "nomor="+room.Number+" status="+room.Status)
	return room, nil
}

// CanUpdateStatus bernilai false selama status kamar Dipesan, apapun
// targetnya.
func (s RoomService) CanUpdateStatus(id string) bool {
	can := false
	s.Store.View(func(st store.State) {
		room, ok := st.RoomByID(id)
		can = ok && room.Status != models.RoomDipesan
	})
	return can
}

// AvailableStatusOptions mengembalikan himpunan target transisi manual yang
// diizinkan dari status saat ini, untuk membatasi pilihan di UI.
func (s RoomService) AvailableStatusOptions(current string) []string {
	switch current {
	case models.RoomTersedia:
		return []string{models.RoomTersedia, models.RoomPerbaikan}
	case models.RoomDipesan:
		return []string{models.RoomDipesan}
	case models.RoomDibersihkan:
		return []string{models.RoomDibersihkan, models.RoomTersedia}
	case models.RoomPerbaikan:
		return []string{models.RoomPerbaikan, models.RoomDibersihkan}
	default:
		return []string{models.RoomTersedia, models.RoomDibersihkan, models.RoomPerbaikan}
	}
}
