package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail lowercases and trims an email for uniqueness comparison.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CodeSuffix mengambil angka di belakang kode seperti "STF-001" atau
// "BOOK-20250912-003". Mengembalikan 0 jika tidak ada suffix numerik.
func CodeSuffix(code string) int {
	parts := strings.Split(strings.TrimSpace(code), "-")
	if len(parts) < 2 {
		return 0
	}
	n := 0
	for _, c := range parts[len(parts)-1] {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
