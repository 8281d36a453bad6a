package services

import (
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain"
	"github.com/solusi-cipta-media/taraje-hotel/internal/domain/models"
	"github.com/solusi-cipta-media/taraje-hotel/internal/store"
	"github.com/solusi-cipta-media/taraje-hotel/internal/utils"
)

// ReportService menghitung okupansi dan ringkasan pendapatan.
type ReportService struct {
	Store     *store.Store
	RequestID string
}

// OccupancyRow adalah okupansi satu tipe kamar pada satu tanggal.
type OccupancyRow struct {
	RoomTypeID   string  `json:"room_type_id"`
	RoomTypeName string  `json:"room_type_name"`
	TotalRooms   int     `json:"total_rooms"`
	Occupied     int     `json:"occupied"`
	Rate         float64 `json:"rate"` // 0..1
}

// OccupancyReport merangkum okupansi hotel pada satu tanggal plus total
// pendapatan tercatat (transaksi non-refund dikurangi refund).
type OccupancyReport struct {
	Date        string         `json:"date"`
	Rows        []OccupancyRow `json:"rows"`
	TotalRooms  int            `json:"total_rooms"`
	Occupied    int            `json:"occupied"`
	OverallRate float64        `json:"overall_rate"`
	Revenue     int64          `json:"revenue"`
}

// Occupancy menghitung okupansi per tipe kamar untuk satu tanggal: kamar
// terhitung terisi jika ada booking aktif (belum Cancelled, belum
// Checked-out) yang intervalnya memuat tanggal tersebut.
func (s ReportService) Occupancy(date string) (OccupancyReport, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return OccupancyReport{}, domain.ValidationError{Field: "date", Msg: "format tanggal harus YYYY-MM-DD", Err: err}
	}

	report := OccupancyReport{Date: utils.FormatDate(day), Rows: []OccupancyRow{}}
	s.Store.View(func(st store.State) {
		occupiedRooms := map[string]bool{}
		for _, b := range st.Bookings {
			if b.Status == models.BookingCancelled || b.Status == models.BookingCheckedOut {
				continue
			}
			in, errIn := utils.ParseDate(b.CheckIn)
			out, errOut := utils.ParseDate(b.CheckOut)
			if errIn != nil || errOut != nil {
				continue
			}
			// interval setengah-terbuka: hari checkout tidak terisi
			if !day.Before(in) && day.Before(out) {
				occupiedRooms[b.RoomID] = true
			}
		}

		for _, rt := range st.RoomTypes {
			row := OccupancyRow{RoomTypeID: rt.ID, RoomTypeName: rt.Name}
			for _, room := range st.Rooms {
				if room.RoomTypeID != rt.ID {
					continue
				}
				row.TotalRooms++
				if occupiedRooms[room.ID] {
					row.Occupied++
				}
			}
			if row.TotalRooms > 0 {
				row.Rate = float64(row.Occupied) / float64(row.TotalRooms)
			}
			report.Rows = append(report.Rows, row)
			report.TotalRooms += row.TotalRooms
			report.Occupied += row.Occupied
		}
		if report.TotalRooms > 0 {
			report.OverallRate = float64(report.Occupied) / float64(report.TotalRooms)
		}

		for _, t := range st.Transactions {
			if t.Kind == models.TransaksiRefund {
				report.Revenue -= t.Amount
			} else {
				report.Revenue += t.Amount
			}
		}
	})

	utils.LogEvent(s.RequestID, "report", "occupancy", "tanggal="+report.Date)
	return report, nil
}
