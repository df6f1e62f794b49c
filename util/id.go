package util

import (
	"crypto/rand"
	"log"
)

const idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const idLength = 8

// GenerateID returns prefix + "_" + 8 random uppercase alphanumeric
// characters, e.g. "ORDER_K3F9A2QX". Uniqueness is advisory only; the
// stores do not enforce it.
func GenerateID(prefix string) string {
	buf := make([]byte, idLength)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to read random bytes: %v", err)
	}
	for i, b := range buf {
		buf[i] = idCharset[int(b)%len(idCharset)]
	}
	return prefix + "_" + string(buf)
}
