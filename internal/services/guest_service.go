package services

import (
	"fmt"
	"strings"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
	"github.com/solusi-cipta-media/taraje-hotel/internal/utils"
)

// GuestService mengelola master tamu.
type GuestService struct {
	Store     *store.Store
	RequestID string
}

// GuestInput adalah payload create/update tamu.
type GuestInput struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	IdentityType   string `json:"identity_type"`
	IdentityNumber string `json:"identity_number"`
	Address        string `json:"address"`
	Notes          string `json:"notes"`
}

func (s GuestService) List() []models.Guest {
	out := []models.Guest{}
	s.Store.View(func(st store.State) {
		out = append(out, st.Guests...)
	})
	return out
}

func (s GuestService) Get(id string) (models.Guest, error) {
	var (
		g     models.Guest
		found bool
	)
	s.Store.View(func(st store.State) {
		g, found = st.GuestByID(id)
	})
	if !found {
		return models.Guest{}, domain.NotFoundError{Resource: "tamu"}
	}
	return g, nil
}

// Create menambahkan tamu baru. Email harus unik; kode TAMU-### dibangkitkan
// dari suffix terbesar yang ada.
func (s GuestService) Create(in GuestInput) (models.Guest, error) {
	if err := validateGuestInput(in); err != nil {
		return models.Guest{}, err
	}
	email := utils.NormalizeEmail(in.Email)

	var (
		g     models.Guest
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		for _, existing := range st.Guests {
			if utils.NormalizeEmail(existing.Email) == email {
				opErr = domain.ConflictError{Resource: "tamu", Msg: "email sudah terdaftar"}
				return
			}
		}
		g = models.Guest{
			ID:             store.NewID(),
			Code:           nextGuestCode(st.Guests),
			FullName:       strings.TrimSpace(in.FullName),
			Email:          email,
			Phone:          strings.TrimSpace(in.Phone),
			IdentityType:   in.IdentityType,
			IdentityNumber: strings.TrimSpace(in.IdentityNumber),
			Address:        strings.TrimSpace(in.Address),
			Notes:          strings.TrimSpace(in.Notes),
		}
		st.Guests = append(st.Guests, g)
	})
	if opErr != nil {
		return models.Guest{}, opErr
	}

	utils.LogEvent(s.RequestID, "guest", "create", "kode="+g.Code)
	return g, nil
}

func (s GuestService) Update(id string, in GuestInput) (models.Guest, error) {
	if err := validateGuestInput(in); err != nil {
		return models.Guest{}, err
	}
	email := utils.NormalizeEmail(in.Email)

	var (
		g     models.Guest
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		cur, ok := st.GuestByID(id)
		if !ok {
			opErr = domain.NotFoundError{Resource: "tamu"}
			return
		}
		for _, existing := range st.Guests {
			if existing.ID != id && utils.NormalizeEmail(existing.Email) == email {
				opErr = domain.ConflictError{Resource: "tamu", Msg: "email sudah terdaftar"}
				return
			}
		}
		cur.FullName = strings.TrimSpace(in.FullName)
		cur.Email = email
		cur.Phone = strings.TrimSpace(in.Phone)
		cur.IdentityType = in.IdentityType
		cur.IdentityNumber = strings.TrimSpace(in.IdentityNumber)
		cur.Address = strings.TrimSpace(in.Address)
		cur.Notes = strings.TrimSpace(in.Notes)

		next := make([]models.Guest, len(st.Guests))
		for i, existing := range st.Guests {
			if existing.ID == id {
				next[i] = cur
			} else {
				next[i] = existing
			}
		}
		st.Guests = next
		g = cur
	})
	if opErr != nil {
		return models.Guest{}, opErr
	}

	utils.LogEvent(s.RequestID, "guest", "update", "kode="+g.Code)
	return g, nil
}

// CanDelete bernilai true jika tidak ada booking yang memakai tamu ini.
func (s GuestService) CanDelete(id string) bool {
	can := true
	s.Store.View(func(st store.State) {
		for _, b := range st.Bookings {
			if b.GuestID == id {
				can = false
				return
			}
		}
	})
	return can
}

// Delete menghapus tamu. Diblokir selama masih ada booking (apapun
// statusnya) yang mereferensikannya.
func (s GuestService) Delete(id string) error {
	var opErr error
	s.Store.Update(func(st *store.State) {
		if _, ok := st.GuestByID(id); !ok {
			opErr = domain.NotFoundError{Resource: "tamu"}
			return
		}
		for _, b := range st.Bookings {
			if b.GuestID == id {
				opErr = domain.ReferentialError{Resource: "tamu", Dependent: "booking"}
				return
			}
		}
		next := []models.Guest{}
		for _, g := range st.Guests {
			if g.ID != id {
				next = append(next, g)
			}
		}
		st.Guests = next
	})
	if opErr != nil {
		return opErr
	}

	utils.LogEvent(s.RequestID, "guest", "delete", "id="+id)
	return nil
}

// GenerateCode mengembalikan kode tamu berikutnya tanpa memesannya.
func (s GuestService) GenerateCode() string {
	var code string
	s.Store.View(func(st store.State) {
		code = nextGuestCode(st.Guests)
	})
	return code
}

func validateGuestInput(in GuestInput) error {
	if strings.TrimSpace(in.FullName) == "" {
		return domain.ValidationError{Field: "full_name", Msg: "nama wajib diisi"}
	}
	if strings.TrimSpace(in.Email) == "" {
		return domain.ValidationError{Field: "email", Msg: "email wajib diisi"}
	}
	switch in.IdentityType {
	case models.IdentitasKTP, models.IdentitasSIM, models.IdentitasPaspor:
	default:
		return domain.ValidationError{Field: "identity_type", Msg: "jenis identitas tidak dikenal"}
	}
	if strings.TrimSpace(in.IdentityNumber) == "" {
		return domain.ValidationError{Field: "identity_number", Msg: "nomor identitas wajib diisi"}
	}
	return nil
}

func nextGuestCode(guests []models.Guest) string {
	max := 0
	for _, g := range guests {
		if n := utils.CodeSuffix(g.Code); n > max {
			max = n
		}
	}
	return fmt.Sprintf("TAMU-%03d", max+1)
}
