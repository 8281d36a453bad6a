package utils

import (
	"testing"
	"time"
)

func TestNightsBetween(t *testing.T) {
	day := func(s string) time.Time {
		parsed, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate %s error: %v", s, err)
		}
		return parsed
	}

	cases := []struct {
		in, out string
		want    int
	}{
		{"2025-01-20", "2025-01-23", 3},
		{"2025-01-20", "2025-01-21", 1},
		{"2025-01-20", "2025-01-20", 0},
		{"2025-01-31", "2025-02-02", 2},
		// Selisih absolut: urutan terbalik tetap 3 malam.
		{"2025-01-23", "2025-01-20", 3},
	}
	for _, c := range cases {
		if got := NightsBetween(day(c.in), day(c.out)); got != c.want {
			t.Fatalf("NightsBetween(%s, %s) = %d, harusnya %d", c.in, c.out, got, c.want)
		}
	}
}

func TestNightsBetweenIgnoresClockShift(t *testing.T) {
	// Akhir pekan perpindahan jam musim panas: 24 s/d 26 Oktober memakan
	// 49 jam dinding di zona yang mundur satu jam, tetap 2 malam kalender.
	summer := time.FixedZone("UTC+2", 2*3600)
	winter := time.FixedZone("UTC+1", 1*3600)
	in := time.Date(2026, 10, 24, 0, 0, 0, 0, summer)
	out := time.Date(2026, 10, 26, 0, 0, 0, 0, winter)

	if got := NightsBetween(in, out); got != 2 {
		t.Fatalf("NightsBetween lintas perpindahan jam = %d, harusnya 2", got)
	}
	// Arah maju (jam hilang satu) juga tetap utuh.
	if got := NightsBetween(time.Date(2026, 3, 28, 0, 0, 0, 0, winter), time.Date(2026, 3, 30, 0, 0, 0, 0, summer)); got != 2 {
		t.Fatalf("NightsBetween lintas jam maju = %d, harusnya 2", got)
	}
}

func TestParseDateRejectsBadFormat(t *testing.T) {
	for _, bad := range []string{"20-01-2025", "2025/01/20", "besok", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("ParseDate(%q) harusnya error", bad)
		}
	}

	parsed, err := ParseDate(" 2025-01-20 ")
	if err != nil {
		t.Fatalf("spasi pinggir harusnya ditoleransi: %v", err)
	}
	if FormatDate(parsed) != "2025-01-20" {
		t.Fatalf("round-trip tanggal salah: %s", FormatDate(parsed))
	}
}

func TestDateStamp(t *testing.T) {
	ts := time.Date(2025, 9, 12, 23, 59, 0, 0, time.Local)
	if got := DateStamp(ts); got != "20250912" {
		t.Fatalf("DateStamp = %s", got)
	}
}
