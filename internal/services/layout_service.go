package services

import (
	"strconv"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
	"github.com/solusi-cipta-media/taraje-hotel/internal/utils"
)

// LayoutService mengelola denah lantai dan penempatan kamar pada grid.
type LayoutService struct {
	Store     *store.Store
	RequestID string
}

// FloorView adalah hasil query denah satu lantai: dimensi grid plus kamar
// yang sudah dan belum ditempatkan.
type FloorView struct {
	Layout       models.FloorLayout `json:"layout"`
	Positioned   []models.Room      `json:"positioned"`
	Unpositioned []models.Room      `json:"unpositioned"`
}

// UpdateFloorLayout mengubah dimensi grid satu lantai, membuat record baru
// jika lantai belum punya denah.
func (s LayoutService) UpdateFloorLayout(floor, cols, rows int) (models.FloorLayout, error) {
	if floor <= 0 {
		return models.FloorLayout{}, domain.ValidationError{Field: "floor", Msg: "lantai tidak valid"}
	}
	if cols <= 0 || rows <= 0 {
		return models.FloorLayout{}, domain.ValidationError{Field: "grid", Msg: "dimensi grid harus lebih dari 0"}
	}

	var layout models.FloorLayout
	s.Store.Update(func(st *store.State) {
		for i, l := range st.FloorLayouts {
			if l.Floor == floor {
				l.GridCols = cols
				l.GridRows = rows
				next := append([]models.FloorLayout{}, st.FloorLayouts...)
				next[i] = l
				st.FloorLayouts = next
				layout = l
				return
			}
		}
		layout = models.FloorLayout{ID: store.NewID(), Floor: floor, GridCols: cols, GridRows: rows}
		st.FloorLayouts = append(st.FloorLayouts, layout)
	})

	utils.LogEvent(s.RequestID, "layout", "update_grid", "lantai="+strconv.Itoa(floor))
	return layout, nil
}

// UpdateRoomPosition menimpa lantai dan posisi grid kamar. Posisi nil
// berarti kamar dilepas dari denah. Posisi divalidasi terhadap batas grid
// (0 <= posisi < kolom*baris) tetapi TIDAK terhadap kamar lain yang sudah
// menempati sel yang sama: last-write-wins, lihat catatan di DESIGN.md.
func (s LayoutService) UpdateRoomPosition(roomID string, floor int, position *int) (models.Room, error) {
	var (
		room  models.Room
		opErr error
	)
	s.Store.Update(func(st *store.State) {
		cur, ok := st.RoomByID(roomID)
		if !ok {
			opErr = domain.NotFoundError{Resource: "kamar"}
			return
		}
		if position != nil {
			layout, ok := st.LayoutByFloor(floor)
			if !ok {
				opErr = domain.NotFoundError{Resource: "denah lantai"}
				return
			}
			if *position < 0 || *position >= layout.GridCols*layout.GridRows {
				opErr = domain.ValidationError{Field: "position", Msg: "posisi di luar grid"}
				return
			}
		}
		cur.Floor = floor
		cur.LayoutPosition = position

		next := make([]models.Room, len(st.Rooms))
		for i, r := range st.Rooms {
			if r.ID == roomID {
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

	utils.LogEvent(s.RequestID, "layout", "position_room", "nomor="+room.Number)
	return room, nil
}

// LayoutForFloor mengembalikan denah satu lantai.
func (s LayoutService) LayoutForFloor(floor int) (models.FloorLayout, error) {
	var (
		layout models.FloorLayout
		found  bool
	)
	s.Store.View(func(st store.State) {
		layout, found = st.LayoutByFloor(floor)
	})
	if !found {
		return models.FloorLayout{}, domain.NotFoundError{Resource: "denah lantai"}
	}
	return layout, nil
}

// FloorViewFor mengembalikan denah plus pembagian kamar lantai tersebut
// menjadi subset yang sudah dan belum ditempatkan di grid.
func (s LayoutService) FloorViewFor(floor int) (FloorView, error) {
	layout, err := s.LayoutForFloor(floor)
	if err != nil {
		return FloorView{}, err
	}
	view := FloorView{Layout: layout, Positioned: []models.Room{}, Unpositioned: []models.Room{}}
	s.Store.View(func(st store.State) {
		for _, r := range st.Rooms {
			if r.Floor != floor {
				continue
			}
			if r.LayoutPosition != nil {
				view.Positioned = append(view.Positioned, r)
			} else {
				view.Unpositioned = append(view.Unpositioned, r)
			}
		}
	})
	return view, nil
}

// RoomsForFloor mengembalikan semua kamar pada satu lantai.
func (s LayoutService) RoomsForFloor(floor int) []models.Room {
	out := []models.Room{}
	s.Store.View(func(st store.State) {
		for _, r := range st.Rooms {
			if r.Floor == floor {
				out = append(out, r)
			}
		}
	})
	return out
}

// UnpositionedRoomsForFloor mengembalikan kamar lantai tersebut yang belum
// punya posisi grid.
func (s LayoutService) UnpositionedRoomsForFloor(floor int) []models.Room {
	out := []models.Room{}
	s.Store.View(func(st store.State) {
		for _, r := range st.Rooms {
			if r.Floor == floor && r.LayoutPosition == nil {
				out = append(out, r)
			}
		}
	})
	return out
}

// Layouts mengembalikan seluruh denah lantai.
func (s LayoutService) Layouts() []models.FloorLayout {
	out := []models.FloorLayout{}
	s.Store.View(func(st store.State) {
		out = append(out, st.FloorLayouts...)
	})
	return out
}
