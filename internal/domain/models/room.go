package models

// Status fisik kamar. Nilai "Dipesan" dikunci oleh booking aktif dan tidak
// boleh diubah manual (lihat RoomService.AvailableStatusOptions).
const (
	RoomTersedia    = "Tersedia"
	RoomDipesan     = "Dipesan"
	RoomDibersihkan = "Dibersihkan"
	RoomPerbaikan   = "Perbaikan"
)

// RoomType adalah produk kamar yang bisa dipesan (template harga & kapasitas
// yang dipakai banyak kamar fisik). Code format TK-01.
type RoomType struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BasePrice   int64  `json:"base_price"` // harga per malam, Rupiah
	Capacity    int    `json:"capacity"`   // jumlah tamu
	PhotoURL    string `json:"photo_url"`
}

// Room adalah satu unit kamar fisik. LayoutPosition adalah index grid
// row-major pada denah lantai; nil berarti belum ditempatkan.
type Room struct {
	ID             string `json:"id"`
	Number         string `json:"number"`
	Floor          int    `json:"floor"`
	RoomTypeID     string `json:"room_type_id"`
	Status         string `json:"status"`
	LayoutPosition *int   `json:"layout_position"`
}

// FloorLayout menyimpan dimensi grid denah per lantai. Satu record per lantai.
type FloorLayout struct {
	ID       string `json:"id"`
	Floor    int    `json:"floor"`
	GridCols int    `json:"grid_cols"`
	GridRows int    `json:"grid_rows"`
}
