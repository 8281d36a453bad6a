package services

import (
	"testing"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
)

func TestUpdateFloorLayoutUpsert(t *testing.T) {
	st := testStore()
	svc := LayoutService{Store: st}

	// Ubah dimensi denah yang sudah ada.
	layout, err := svc.UpdateFloorLayout(1, 10, 5)
	if err != nil {
		t.Fatalf("UpdateFloorLayout error: %v", err)
	}
	if layout.GridCols != 10 || layout.GridRows != 5 {
		t.Fatalf("dimensi = %dx%d, harusnya 10x5", layout.GridCols, layout.GridRows)
	}

	// Lantai baru dibuatkan record.
	created, err := svc.UpdateFloorLayout(4, 6, 4)
	if err != nil {
		t.Fatalf("UpdateFloorLayout lantai baru error: %v", err)
	}
	if created.Floor != 4 {
		t.Fatalf("lantai = %d, harusnya 4", created.Floor)
	}
	if got := len(svc.Layouts()); got != 4 {
		t.Fatalf("jumlah denah = %d, harusnya 4", got)
	}

	if _, err := svc.UpdateFloorLayout(1, 0, 5); !domain.IsValidation(err) {
		t.Fatalf("dimensi 0 harusnya ValidationError, dapat %v", err)
	}
}

func TestUpdateRoomPosition(t *testing.T) {
	st := testStore()
	svc := LayoutService{Store: st}
	room := roomByNumber(t, st, "101") // denah lantai 1: 8x4

	pos := 5
	placed, err := svc.UpdateRoomPosition(room.ID, 1, &pos)
	if err != nil {
		t.Fatalf("UpdateRoomPosition error: %v", err)
	}
	if placed.LayoutPosition == nil || *placed.LayoutPosition != 5 {
		t.Fatalf("posisi tidak tersimpan: %+v", placed.LayoutPosition)
	}

	// Posisi di luar grid ditolak.
	outOfGrid := 32
	if _, err := svc.UpdateRoomPosition(room.ID, 1, &outOfGrid); !domain.IsValidation(err) {
		t.Fatalf("posisi di luar grid harusnya ValidationError, dapat %v", err)
	}

	// Lantai tanpa denah ditolak.
	if _, err := svc.UpdateRoomPosition(room.ID, 9, &pos); !domain.IsNotFound(err) {
		t.Fatalf("lantai tanpa denah harusnya NotFoundError, dapat %v", err)
	}

	// Posisi nil melepas kamar dari denah.
	released, err := svc.UpdateRoomPosition(room.ID, 1, nil)
	if err != nil {
		t.Fatalf("lepas posisi error: %v", err)
	}
	if released.LayoutPosition != nil {
		t.Fatalf("posisi masih tersimpan setelah dilepas")
	}
}

func TestFloorViewPartitionsRooms(t *testing.T) {
	st := testStore()
	svc := LayoutService{Store: st}

	room := roomByNumber(t, st, "102")
	pos := 3
	if _, err := svc.UpdateRoomPosition(room.ID, 1, &pos); err != nil {
		t.Fatalf("UpdateRoomPosition error: %v", err)
	}

	view, err := svc.FloorViewFor(1)
	if err != nil {
		t.Fatalf("FloorViewFor error: %v", err)
	}
	if len(view.Positioned) != 1 || view.Positioned[0].Number != "102" {
		t.Fatalf("kamar terpasang salah: %+v", view.Positioned)
	}
	// Lantai 1 punya 4 kamar di seed.
	if len(view.Unpositioned) != 3 {
		t.Fatalf("jumlah kamar belum terpasang = %d, harusnya 3", len(view.Unpositioned))
	}

	if _, err := svc.FloorViewFor(9); !domain.IsNotFound(err) {
		t.Fatalf("lantai tanpa denah harusnya NotFoundError, dapat %v", err)
	}
}
