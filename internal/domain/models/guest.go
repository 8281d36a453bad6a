package models

// Jenis identitas tamu.
const (
	IdentitasKTP    = "KTP"
	IdentitasSIM    = "SIM"
	IdentitasPaspor = "Paspor"
)

// Guest adalah tamu yang dapat dipesankan kamar. Code format TAMU-001.
type Guest struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	IdentityType   string `json:"identity_type"`
	IdentityNumber string `json:"identity_number"`
	Address        string `json:"address,omitempty"`
	Notes          string `json:"notes,omitempty"` // catatan internal
}
