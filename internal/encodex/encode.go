// Package encodex implements the journal payload codec.
//
// This is a reversible base64 text encoding, NOT encryption. It reproduces
// the storage format of the system this portal replaces and provides no
// confidentiality: anyone with read access to the record store can decode
// every entry. Real confidentiality is explicitly out of scope.
package encodex

import (
	"encoding/base64"
	"fmt"
)

// Encode converts plaintext to its stored form.
func Encode(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// Decode reverses Encode. A payload that is not valid base64 yields an
// error; callers rendering lists should skip the offending entry and
// continue.
func Decode(payload string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("payload is not valid base64: %w", err)
	}
	return string(b), nil
}
