package models

// Jenis transaksi pembayaran.
const (
	TransaksiUangMuka  = "Uang Muka"
	TransaksiPelunasan = "Pelunasan"
	TransaksiParsial   = "Pembayaran Parsial"
	TransaksiRefund    = "Refund"
)

// Metode pembayaran.
const (
	MetodeTransferBank = "Transfer Bank"
	MetodeKartuKredit  = "Kartu Kredit"
	MetodeTunai        = "Tunai"
)

// Transaction adalah catatan pembayaran immutable untuk satu booking.
// Riwayat tidak pernah dihapus; pembatalan booking tidak menghapus transaksi,
// pengembalian dana dicatat sebagai transaksi baru berjenis Refund.
type Transaction struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Kind      string `json:"kind"`
	Amount    int64  `json:"amount"`
	Method    string `json:"method"`
}
