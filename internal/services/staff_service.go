package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
	"github.com/solusi-cipta-media/taraje-hotel/internal/utils"
)

// StaffService mengelola akun staf (Admin dan Resepsionis).
type StaffService struct {
	Store     *store.Store
	RequestID string
}

// CreateStaffInput adalah payload pembuatan akun staf baru.
type CreateStaffInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// ListStaff mengembalikan akun yang punya kode staf.
func (s StaffService) ListStaff() []models.User {
	out := []models.User{}
	s.Store.View(func(st store.State) {
		for _, u := range st.Users {
			if u.StaffCode != "" {
				out = append(out, u)
			}
		}
	})
	return out
}

func (s StaffService) Get(id string) (models.User, error) {
	var (
		u     models.User
		found bool
	)
	s.Store.View(func(st store.State) {
		u, found = st.UserByID(id)
	})
	if !found {
		return models.User{}, domain.NotFoundError{Resource: "pengguna"}
	}
	return u, nil
}

// CreateStaff menambahkan akun staf dengan kode STF-### baru. Email harus
// unik di seluruh akun (staf maupun customer).
func (s StaffService) CreateStaff(in CreateStaffInput) (models.User, error) {
	if utils.TrimOrEmpty(in.FullName) == "" {
		return models.User{}, domain.ValidationError{Field: "full_name", Msg: "nama wajib diisi"}
	}
	if in.Role != models.RoleAdmin && in.Role != models.RoleResepsionis {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "peran staf harus Admin atau Resepsionis"}
	}
	if len(in.Password) < 6 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "password minimal 6 karakter"}
	}
	email := utils.NormalizeEmail(in.Email)
	if email == "" {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "email wajib diisi"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "gagal meng-hash password", Err: err}
	}

	var (
		user  models.User
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		if _, exists := st.UserByEmail(email); exists {
			opErr = domain.ConflictError{Resource: "pengguna", Msg: "email sudah terdaftar"}
			return
		}
		user = models.User{
			ID:           store.NewID(),
			StaffCode:    nextStaffCode(st.Users),
			FullName:     utils.TrimOrEmpty(in.FullName),
			Email:        email,
			Phone:        utils.TrimOrEmpty(in.Phone),
			Role:         in.Role,
			Status:       models.UserAktif,
			PasswordHash: string(hash),
			RegisteredAt: s.Store.Today(),
		}
		st.Users = append(st.Users, user)
	})
	if opErr != nil {
		return models.User{}, opErr
	}

	utils.LogEvent(s.RequestID, "staff", "create", "kode="+user.StaffCode)
	return user, nil
}

// UpdateStaff mengubah profil akun staf secara parsial.
func (s StaffService) UpdateStaff(id string, upd models.UserUpdate) (models.User, error) {
	var (
		user  models.User
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		cur, ok := st.UserByID(id)
		if !ok {
			opErr = domain.NotFoundError{Resource: "pengguna"}
			return
		}
		if upd.Email != nil {
			email := utils.NormalizeEmail(*upd.Email)
			if other, exists := st.UserByEmail(email); exists && other.ID != id {
				opErr = domain.ConflictError{Resource: "pengguna", Msg: "email sudah terdaftar"}
				return
			}
			cur.Email = email
		}
		if upd.FullName != nil {
			cur.FullName = utils.TrimOrEmpty(*upd.FullName)
		}
		if upd.Phone != nil {
			cur.Phone = utils.TrimOrEmpty(*upd.Phone)
		}
		if upd.Role != nil {
			if *upd.Role != models.RoleAdmin && *upd.Role != models.RoleResepsionis {
				opErr = domain.ValidationError{Field: "role", Msg: "peran staf harus Admin atau Resepsionis"}
				return
			}
			cur.Role = *upd.Role
		}
		replaceUser(st, cur)
		user = cur
	})
	if opErr != nil {
		return models.User{}, opErr
	}

	utils.LogEvent(s.RequestID, "staff", "update", "kode="+user.StaffCode)
	return user, nil
}

// ToggleStatus membalik status Aktif <-> Tidak Aktif.
func (s StaffService) ToggleStatus(id string) (models.User, error) {
	var (
		user  models.User
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		cur, ok := st.UserByID(id)
		if !ok {
			opErr = domain.NotFoundError{Resource: "pengguna"}
			return
		}
		if cur.Status == models.UserAktif {
			cur.Status = models.UserTidakAktif
		} else {
			cur.Status = models.UserAktif
		}
		replaceUser(st, cur)
		user = cur
	})
	if opErr != nil {
		return models.User{}, opErr
	}

	utils.LogEvent(s.RequestID, "staff", "toggle_status", "kode="+user.StaffCode+" status="+user.Status)
	return user, nil
}

// ResetPassword mengganti password akun dengan password standar tahunan dan
// mengembalikan nilai barunya agar bisa disampaikan ke staf bersangkutan.
func (s StaffService) ResetPassword(id string) (string, error) {
	newPassword := fmt.Sprintf("Hotel@%d", s.Store.Now().Year())
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.InternalError{Msg: "gagal meng-hash password", Err: err}
	}

	var opErr error
	s.Store.Update(func(st *store.State) {
		cur, ok := st.UserByID(id)
		if !ok {
			opErr = domain.NotFoundError{Resource: "pengguna"}
			return
		}
		cur.PasswordHash = string(hash)
		replaceUser(st, cur)
	})
	if opErr != nil {
		return "", opErr
	}

	utils.LogEvent(s.RequestID, "staff", "reset_password", "id="+id)
	return newPassword, nil
}

// DeleteStaff menghapus akun staf.
func (s StaffService) DeleteStaff(id string) error {
	var opErr error
	s.Store.Update(func(st *store.State) {
		cur, ok := st.UserByID(id)
		if !ok || cur.StaffCode == "" {
			opErr = domain.NotFoundError{Resource: "pengguna"}
			return
		}
		next := []models.User{}
		for _, u := range st.Users {
			if u.ID != id {
				next = append(next, u)
			}
		}
		st.Users = next
	})
	if opErr != nil {
		return opErr
	}

	utils.LogEvent(s.RequestID, "staff", "delete", "id="+id)
	return nil
}

// GenerateCode mengembalikan kode staf berikutnya tanpa memesannya.
func (s StaffService) GenerateCode() string {
	var code string
	s.Store.View(func(st store.State) {
		code = nextStaffCode(st.Users)
	})
	return code
}

func nextStaffCode(users []models.User) string {
	max := 0
	for _, u := range users {
		if u.StaffCode == "" {
			continue
		}
		if n := utils.CodeSuffix(u.StaffCode); n > max {
			max = n
		}
	}
	return fmt.Sprintf("STF-%03d", max+1)
}

func replaceUser(st *store.State, u models.User) {
	next := make([]models.User, len(st.Users))
	for i, cur := range st.Users {
		if cur.ID == u.ID {
			next[i] = u
		} else {
			next[i] = cur
		}
	}
	st.Users = next
}
