package mask

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	krformat "github.com/Dorico-Dynamics/txova-go-krformat"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 16

// Fingerprint returns a short keyed BLAKE2b-256 digest of value.
// Identifiers containing digits are reduced to their digits first, so
// 900101-1234567 and 9001011234567 share a fingerprint.
// A nil key, or one longer than 64 bytes, yields an unkeyed digest.
func Fingerprint(key []byte, value string) string {
	if digits := krformat.Digits(value); digits != "" {
		value = digits
	}

	h, err := blake2b.New256(key)
	if err != nil {
		h, _ = blake2b.New256(nil)
	}
	h.Write([]byte(value))

	return hex.EncodeToString(h.Sum(nil))[:fingerprintLen]
}
