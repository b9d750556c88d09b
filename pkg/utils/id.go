package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Uppercase only so generated invoice references survive case-insensitive
// spreadsheet round-trips.
const refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateID returns a short random reference, used for sales ingested
// without an invoice number.
func GenerateID() (string, error) {
	return gonanoid.Generate(refAlphabet, 10)
}
