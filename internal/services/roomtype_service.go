package services

import (
	"fmt"
	"strings"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
	"github.com/solusi-cipta-media/taraje-hotel/internal/utils"
)

// RoomTypeService mengelola master tipe kamar.
type RoomTypeService struct {
	Store     *store.Store
	RequestID string
}

// RoomTypeInput adalah payload create/update tipe kamar.
type RoomTypeInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	BasePrice   int64  `json:"base_price"`
	Capacity    int    `json:"capacity"`
	PhotoURL    string `json:"photo_url"`
}

func (s RoomTypeService) List() []models.RoomType {
	out := []models.RoomType{}
	s.Store.View(func(st store.State) {
		out = append(out, st.RoomTypes...)
	})
	return out
}

func (s RoomTypeService) Get(id string) (models.RoomType, error) {
	var (
		rt    models.RoomType
		found bool
	)
	s.Store.View(func(st store.State) {
		rt, found = st.RoomTypeByID(id)
	})
	if !found {
		return models.RoomType{}, domain.NotFoundError{Resource: "tipe kamar"}
	}
	return rt, nil
}

// Create menambahkan tipe kamar baru. Nama harus unik; kode TK-## dibangkitkan
// dari suffix terbesar yang ada.
func (s RoomTypeService) Create(in RoomTypeInput) (models.RoomType, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.RoomType{}, domain.ValidationError{Field: "name", Msg: "nama wajib diisi"}
	}
	if in.BasePrice <= 0 {
		return models.RoomType{}, domain.ValidationError{Field: "base_price", Msg: "harga per malam harus lebih dari 0"}
	}
	if in.Capacity <= 0 {
		return models.RoomType{}, domain.ValidationError{Field: "capacity", Msg: "kapasitas harus lebih dari 0"}
	}

	var (
		rt    models.RoomType
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		for _, existing := range st.RoomTypes {
			if strings.EqualFold(existing.Name, name) {
				opErr = domain.ConflictError{Resource: "tipe kamar", Msg: "nama sudah dipakai"}
				return
			}
		}
		rt = models.RoomType{
			ID:          store.NewID(),
			Code:        nextRoomTypeCode(st.RoomTypes),
			Name:        name,
			Description: strings.TrimSpace(in.Description),
			BasePrice:   in.BasePrice,
			Capacity:    in.Capacity,
			PhotoURL:    strings.TrimSpace(in.PhotoURL),
		}
		st.RoomTypes = append(st.RoomTypes, rt)
	})
	if opErr != nil {
		return models.RoomType{}, opErr
	}

	utils.LogEvent(s.RequestID, "roomtype", "create", "kode="+rt.Code)
	return rt, nil
}

func (s RoomTypeService) Update(id string, in RoomTypeInput) (models.RoomType, error) {
	var (
		rt    models.RoomType
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		cur, ok := st.RoomTypeByID(id)
		if !ok {
			opErr = domain.NotFoundError{Resource: "tipe kamar"}
			return
		}
		name := strings.TrimSpace(in.Name)
		if name == "" {
			opErr = domain.ValidationError{Field: "name", Msg: "nama wajib diisi"}
			return
		}
		for _, existing := range st.RoomTypes {
			if existing.ID != id && strings.EqualFold(existing.Name, name) {
				opErr = domain.ConflictError{Resource: "tipe kamar", Msg: "nama sudah dipakai"}
				return
			}
		}
		cur.Name = name
		cur.Description = strings.TrimSpace(in.Description)
		if in.BasePrice > 0 {
			cur.BasePrice = in.BasePrice
		}
		if in.Capacity > 0 {
			cur.Capacity = in.Capacity
		}
		if photo := strings.TrimSpace(in.PhotoURL); photo != "" {
			cur.PhotoURL = photo
		}

		next := make([]models.RoomType, len(st.RoomTypes))
		for i, existing := range st.RoomTypes {
			if existing.ID == id {
				next[i] = cur
			} else {
				next[i] = existing
			}
		}
		st.RoomTypes = next
		rt = cur
	})
	if opErr != nil {
		return models.RoomType{}, opErr
	}

	utils.LogEvent(s.RequestID, "roomtype", "update", "kode="+rt.Code)
	return rt, nil
}

// CanDelete bernilai true jika tidak ada kamar yang memakai tipe ini.
func (s RoomTypeService) CanDelete(id string) bool {
	can := true
	s.Store.View(func(st store.State) {
		for _, room := range st.Rooms {
			if room.RoomTypeID == id {
				can = false
				return
			}
		}
	})
	return can
}

// Delete menghapus tipe kamar. Diblokir selama masih ada kamar yang
// mereferensikannya.
func (s RoomTypeService) Delete(id string) error {
	var opErr error
	s.Store.Update(func(st *store.State) {
		if _, ok := st.RoomTypeByID(id); !ok {
			opErr = domain.NotFoundError{Resource: "tipe kamar"}
			return
		}
		for _, room := range st.Rooms {
			if room.RoomTypeID == id {
				opErr = domain.ReferentialError{Resource: "tipe kamar", Dependent: "kamar"}
				return
			}
		}
		next := []models.RoomType{}
		for _, rt := range st.RoomTypes {
			if rt.ID != id {
				next = append(next, rt)
			}
		}
		st.RoomTypes = next
	})
	if opErr != nil {
		return opErr
	}

	utils.LogEvent(s.RequestID, "roomtype", "delete", "id="+id)
	return nil
}

// GenerateCode mengembalikan kode tipe kamar berikutnya tanpa memesannya.
func (s RoomTypeService) GenerateCode() string {
	var code string
	s.Store.View(func(st store.State) {
		code = nextRoomTypeCode(st.RoomTypes)
	})
	return code
}

func nextRoomTypeCode(roomTypes []models.RoomType) string {
	max := 0
	for _, rt := range roomTypes {
		if n := utils.CodeSuffix(rt.Code); n > max {
			max = n
		}
	}
	return fmt.Sprintf("TK-%02d", max+1)
}
