package services

import (
	"testing"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
)

func TestCreateGuestGeneratesCode(t *testing.T) {
	st := testStore()
	svc := GuestService{Store: st}

	if code := svc.GenerateCode(); code != "TAMU-003" {
		t.Fatalf("kode berikutnya = %s, harusnya TAMU-003", code)
	}

	guest, err := svc.Create(GuestInput{
		FullName:       "Siti Rahma",
		Email:          "siti@email.com",
		Phone:          "081200000001",
		IdentityType:   models.IdentitasKTP,
		IdentityNumber: "3571000011112222",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if guest.Code != "TAMU-003" {
		t.Fatalf("kode tamu baru = %s", guest.Code)
	}

	if _, err := svc.Create(GuestInput{
		FullName:       "Siti Kembar",
		Email:          "SITI@email.com",
		IdentityType:   models.IdentitasKTP,
		IdentityNumber: "3571000011113333",
	}); !domain.IsConflict(err) {
		t.Fatalf("email duplikat harusnya ConflictError, dapat %v", err)
	}
	if _, err := svc.Create(GuestInput{
		FullName:       "Tanpa Identitas",
		Email:          "baru@email.com",
		IdentityType:   "Kartu Pelajar",
		IdentityNumber: "XX-1",
	}); !domain.IsValidation(err) {
		t.Fatalf("jenis identitas asing harusnya ValidationError, dapat %v", err)
	}
}

func TestDeleteGuestReferentialGuard(t *testing.T) {
	st := testStore()
	svc := GuestService{Store: st}
	booking := seededBooking(t, st)

	if svc.CanDelete(booking.GuestID) {
		t.Fatalf("tamu dengan booking harusnya tidak bisa dihapus")
	}
	if err := svc.Delete(booking.GuestID); !domain.IsReferential(err) {
		t.Fatalf("hapus tamu dengan booking harusnya ReferentialError, dapat %v", err)
	}

	fresh, err := svc.Create(GuestInput{
		FullName:       "Tamu Sementara",
		Email:          "sementara@email.com",
		IdentityType:   models.IdentitasPaspor,
		IdentityNumber: "C1234567",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.Delete(fresh.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.Get(fresh.ID); !domain.IsNotFound(err) {
		t.Fatalf("tamu masih ada setelah dihapus")
	}
}
