package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
	"github.com/solusi-cipta-media/taraje-hotel/internal/utils"
)

// AuthService menangani login dan registrasi customer publik.
type AuthService struct {
	Store     *store.Store
	Secret    []byte
	RequestID string
}

// RegisterInput adalah payload pendaftaran customer dari storefront.
type RegisterInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Login memverifikasi kredensial dan menerbitkan token HS256 berumur 24 jam.
func (s AuthService) Login(email, password string) (string, models.User, error) {
	var (
		user  models.User
		found bool
	)
	s.Store.View(func(st store.State) {
		user, found = st.UserByEmail(utils.NormalizeEmail(email))
	})
	if !found {
		return "", models.User{}, domain.ValidationError{Msg: "email atau password salah"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, domain.ValidationError{Msg: "email atau password salah"}
	}

	utils.LogEvent(s.RequestID, "auth", "login", "role="+user.Role)
	return s.issueToken(user)
}

// Register membuat akun Customer baru dan langsung mengembalikan token login.
func (s AuthService) Register(in RegisterInput) (string, models.User, error) {
	if utils.TrimOrEmpty(in.FullName) == "" {
		return "", models.User{}, domain.ValidationError{Field: "full_name", Msg: "nama wajib diisi"}
	}
	email := utils.NormalizeEmail(in.Email)
	if email == "" {
		return "", models.User{}, domain.ValidationError{Field: "email", Msg: "email wajib diisi"}
	}
	if len(in.Password) < 6 {
		return "", models.User{}, domain.ValidationError{Field: "password", Msg: "password minimal 6 karakter"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "gagal meng-hash password", Err: err}
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
			FullName:     utils.TrimOrEmpty(in.FullName),
			Email:        email,
			Phone:        utils.TrimOrEmpty(in.Phone),
			Role:         models.RoleCustomer,
			Status:       models.UserAktif,
			PasswordHash: string(hash),
			RegisteredAt: s.Store.Today(),
		}
		st.Users = append(st.Users, user)
	})
	if opErr != nil {
		return "", models.User{}, opErr
	}

	utils.LogEvent(s.RequestID, "auth", "register", "email="+email)
	return s.issueToken(user)
}

func (s AuthService) issueToken(user models.User) (string, models.User, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     s.Store.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "gagal membuat token", Err: err}
	}
	return signed, user, nil
}
