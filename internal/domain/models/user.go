package models

// Peran pengguna yang dikenal sistem.
const (
	RoleAdmin       = "Admin"
	RoleResepsionis = "Resepsionis"
	RoleCustomer    = "Customer"
)

// Status aktivasi akun.
const (
	UserAktif      = "Aktif"
	UserTidakAktif = "Tidak Aktif"
)

// User merepresentasikan akun pengguna (staf maupun customer).
// StaffCode hanya terisi untuk Admin/Resepsionis (format STF-001).
type User struct {
	ID           string `json:"id"`
	StaffCode    string `json:"staff_code,omitempty"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	PasswordHash string `json:"-"`
	RegisteredAt string `json:"registered_at"` // YYYY-MM-DD
}

// IsStaff menandakan akun internal (punya akses dasbor operasional).
func (u User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleResepsionis
}

// UserUpdate mendukung update parsial via pointer presence.
type UserUpdate struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
}
