package utils

import (
	"log"
	"strings"
)

// LogEvent mencetak satu baris log standar per aksi: modul kapital, nama
// aksi, request id, dan pesan ringkas. Jangan menaruh payload sensitif
// (password, token, data identitas) di message.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(module), action, strings.TrimSpace(requestID), message)
}
