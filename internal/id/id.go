// Package id generates item identifiers for imported catalogs.
package id

import "crypto/rand"

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// Length of identifiers returned by GenerateID.
	Length = 16
)

// GenerateID returns a random lowercase alphanumeric identifier.
func GenerateID() string {
	return generate(Length)
}

func generate(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}
