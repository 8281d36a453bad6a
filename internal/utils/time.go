package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// DateStamp formats time to YYYYMMDD, dipakai segmen tanggal kode booking.
func DateStamp(t time.Time) string {
	return t.In(time.Local).Format("20060102")
}

// NightsBetween menghitung jumlah malam antara dua tanggal sebagai selisih
// hari kalender absolut. Kedua tanggal dinormalkan ke tengah malam UTC dulu
// supaya hari dengan perubahan jam musim panas tetap terhitung satu malam,
// bukan malam berjalan berdasarkan jam dinding. Pemanggil wajib memastikan
// checkOut setelah checkIn supaya hasilnya bermakna.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := midnightUTC(checkIn)
	out := midnightUTC(checkOut)
	diff := int(out.Sub(in).Hours() / 24)
	if diff < 0 {
		diff = -diff
	}
	return diff
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
