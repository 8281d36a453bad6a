package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
	"github.com/solusi-cipta-media/taraje-hotel/internal/utils"
)

// DocsService menghasilkan PDF invoice per booking.
type DocsService struct {
	Store     *store.Store
	RequestID string
	Loader    func(bookingID string) (bookingDocData, error)
}

type bookingDocData struct {
	BookingCode   string
	GuestName     string
	GuestPhone    string
	RoomNumber    string
	RoomTypeName  string
	CheckIn       string
	CheckOut      string
	Nights        int
	NightlyPrice  int64
	TotalCost     int64
	TotalPaid     int64
	Remaining     int64
	PaymentStatus string
}

// GenerateInvoice membangun PDF invoice untuk satu booking dan mengembalikan
// isi berikut nama file yang disarankan.
func (s DocsService) GenerateInvoice(bookingID string) ([]byte, string, error) {
	data, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", "kode="+data.BookingCode)
	return buildInvoicePDF(data)
}

func (s DocsService) loadBookingDocData(bookingID string) (bookingDocData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	var (
		data  bookingDocData
		found bool
	)
	s.Store.View(func(st store.State) {
		b, ok := st.BookingByID(bookingID)
		if !ok {
			return
		}
		found = true
		data = bookingDocData{
			BookingCode:   b.Code,
			CheckIn:       b.CheckIn,
			CheckOut:      b.CheckOut,
			Nights:        b.Nights,
			TotalCost:     b.TotalCost,
			TotalPaid:     b.TotalPaid,
			Remaining:     b.Remaining,
			PaymentStatus: b.PaymentStatus,
		}
		if g, ok := st.GuestByID(b.GuestID); ok {
			data.GuestName = g.FullName
			data.GuestPhone = g.Phone
		}
		if room, ok := st.RoomByID(b.RoomID); ok {
			data.RoomNumber = room.Number
			if rt, ok := st.RoomTypeByID(room.RoomTypeID); ok {
				data.RoomTypeName = rt.Name
				data.NightlyPrice = rt.BasePrice
			}
		}
	})
	if !found {
		return bookingDocData{}, domain.NotFoundError{Resource: "booking"}
	}
	return data, nil
}

func buildInvoicePDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE PEMESANAN")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Kode Booking : "+safe(d.BookingCode, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Ditagihkan kepada:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Nama   : %s", safe(d.GuestName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("No HP  : %s", safe(d.GuestPhone, "-")))
	pdf.Ln(10)

	desc := fmt.Sprintf("Kamar %s (%s), %s s/d %s, %d malam",
		safe(d.RoomNumber, "-"), safe(d.RoomTypeName, "-"),
		safe(d.CheckIn, "-"), safe(d.CheckOut, "-"), d.Nights,
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	pdf.Cell(0, 6, "Harga per malam : "+utils.FormatRupiah(d.NightlyPrice))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total        : "+utils.FormatRupiah(d.TotalCost))
	pdf.Ln(7)
	pdf.Cell(0, 8, "Terbayar     : "+utils.FormatRupiah(d.TotalPaid))
	pdf.Ln(7)
	pdf.Cell(0, 8, "Sisa         : "+utils.FormatRupiah(d.Remaining))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Status pembayaran: "+safe(d.PaymentStatus, "-"), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", safeFilenamePart(d.BookingCode))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	out := replacer.Replace(strings.TrimSpace(s))
	if out == "" {
		return "booking"
	}
	return out
}
