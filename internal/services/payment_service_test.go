package services

import (
	"testing"

	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
)

func TestAddPaymentUntilSettled(t *testing.T) {
	st := testStore()
	svc := PaymentService{Store: st}
	booking := seededBooking(t, st) // sisa 1.500.000 setelah DP seed

	partial, err := svc.AddPayment(booking.ID, AddPaymentInput{Amount: 500_000, Method: models.MetodeTunai})
	if err != nil {
		t.Fatalf("AddPayment error: %v", err)
	}
	if partial.TotalPaid != 1_250_000 || partial.Remaining != 1_000_000 {
		t.Fatalf("saldo salah: paid=%d remaining=%d", partial.TotalPaid, partial.Remaining)
	}
	if partial.PaymentStatus != models.PaymentDP {
		t.Fatalf("status = %s, harusnya masih DP", partial.PaymentStatus)
	}
	if partial.TotalPaid+partial.Remaining != partial.TotalCost {
		t.Fatalf("invarian pembayaran rusak: %d + %d != %d", partial.TotalPaid, partial.Remaining, partial.TotalCost)
	}

	settled, err := svc.AddPayment(booking.ID, AddPaymentInput{Amount: 1_000_000, Kind: models.TransaksiPelunasan})
	if err != nil {
		t.Fatalf("AddPayment pelunasan error: %v", err)
	}
	if settled.Remaining != 0 || settled.PaymentStatus != models.PaymentLunas {
		t.Fatalf("pelunasan salah: remaining=%d status=%s", settled.Remaining, settled.PaymentStatus)
	}

	st.View(func(s store.State) {
		trx := s.TransactionsByBooking(booking.ID)
		if len(trx) != 3 { // DP seed + 2 pembayaran baru
			t.Fatalf("jumlah transaksi = %d, harusnya 3", len(trx))
		}
	})
}

func TestAddPaymentRejectsBadAmounts(t *testing.T) {
	st := testStore()
	svc := PaymentService{Store: st}
	booking := seededBooking(t, st)

	if _, err := svc.AddPayment(booking.ID, AddPaymentInput{Amount: 0}); !domain.IsValidation(err) {
		t.Fatalf("jumlah 0 harusnya ValidationError, dapat %v", err)
	}
	if _, err := svc.AddPayment(booking.ID, AddPaymentInput{Amount: 2_000_000}); !domain.IsValidation(err) {
		t.Fatalf("melebihi sisa harusnya ValidationError, dapat %v", err)
	}
	if _, err := svc.AddPayment("tidak-ada", AddPaymentInput{Amount: 100_000}); !domain.IsNotFound(err) {
		t.Fatalf("booking hilang harusnya NotFoundError, dapat %v", err)
	}

	// Percobaan gagal tidak meninggalkan transaksi.
	st.View(func(s store.State) {
		if len(s.Transactions) != 1 {
			t.Fatalf("transaksi bocor dari pembayaran gagal: %d", len(s.Transactions))
		}
	})
}

func TestAddPaymentRejectsRefundKind(t *testing.T) {
	st := testStore()
	svc := PaymentService{Store: st}
	booking := seededBooking(t, st)

	// Jalur pembayaran masuk tidak boleh menerima jenis Refund: transaksi
	// Refund dikurangkan dari pendapatan, sedangkan AddPayment menaikkan
	// total terbayar.
	if _, err := svc.AddPayment(booking.ID, AddPaymentInput{Amount: 500_000, Kind: models.TransaksiRefund}); !domain.IsValidation(err) {
		t.Fatalf("kind Refund harusnya ValidationError, dapat %v", err)
	}
	if _, err := svc.AddPayment(booking.ID, AddPaymentInput{Amount: 500_000, Kind: "Barter"}); !domain.IsValidation(err) {
		t.Fatalf("kind asing harusnya ValidationError, dapat %v", err)
	}

	st.View(func(s store.State) {
		b, _ := s.BookingByID(booking.ID)
		if b.TotalPaid != 750_000 || b.Remaining != 1_500_000 {
			t.Fatalf("saldo berubah setelah pembayaran ditolak: paid=%d remaining=%d", b.TotalPaid, b.Remaining)
		}
		if len(s.Transactions) != 1 {
			t.Fatalf("transaksi bocor: %d", len(s.Transactions))
		}
	})

	// Pendapatan laporan tidak tergerus oleh percobaan tadi.
	report, err := ReportService{Store: st}.Occupancy("2025-01-21")
	if err != nil {
		t.Fatalf("Occupancy error: %v", err)
	}
	if report.Revenue != 750_000 {
		t.Fatalf("pendapatan = %d, harusnya 750000", report.Revenue)
	}
}

func TestRecordRefundKeepsTotals(t *testing.T) {
	st := testStore()
	svc := PaymentService{Store: st}
	booking := seededBooking(t, st) // sudah bayar DP 750.000

	trx, err := svc.RecordRefund(booking.ID, 750_000, models.MetodeTransferBank)
	if err != nil {
		t.Fatalf("RecordRefund error: %v", err)
	}
	if trx.Kind != models.TransaksiRefund || trx.Amount != 750_000 {
		t.Fatalf("transaksi refund salah: %+v", trx)
	}

	// Saldo booking tidak mundur: refund hanya tercatat di riwayat.
	st.View(func(s store.State) {
		b, _ := s.BookingByID(booking.ID)
		if b.TotalPaid != 750_000 || b.PaymentStatus != models.PaymentDP {
			t.Fatalf("saldo booking berubah setelah refund: paid=%d status=%s", b.TotalPaid, b.PaymentStatus)
		}
		if len(s.TransactionsByBooking(booking.ID)) != 2 {
			t.Fatalf("refund tidak tercatat di riwayat")
		}
	})

	if _, err := svc.RecordRefund(booking.ID, 10_000_000, ""); !domain.IsValidation(err) {
		t.Fatalf("refund melebihi terbayar harusnya ValidationError, dapat %v", err)
	}
}

func TestListByBookingRequiresBooking(t *testing.T) {
	st := testStore()
	svc := PaymentService{Store: st}
	booking := seededBooking(t, st)

	trx, err := svc.ListByBooking(booking.ID)
	if err != nil {
		t.Fatalf("ListByBooking error: %v", err)
	}
	if len(trx) != 1 {
		t.Fatalf("jumlah transaksi = %d, harusnya 1", len(trx))
	}

	if _, err := svc.ListByBooking("tidak-ada"); !domain.IsNotFound(err) {
		t.Fatalf("booking hilang harusnya NotFoundError, dapat %v", err)
	}
}
