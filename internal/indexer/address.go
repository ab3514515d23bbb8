package indexer

import "github.com/gabapcia/solindex/internal/pkg/validator"

// IsValidAddress reports whether address is a base58 encoded 32-byte public key.
func IsValidAddress(address string) bool {
	return validator.IsBase58Key(address, validator.PublicKeySize)
}

// ShortenAddress abbreviates s to its first and last n characters, e.g.
// "So11...1112". Strings too short to abbreviate are returned unchanged.
func ShortenAddress(s string, n int) string {
	if n <= 0 || len(s) <= 2*n+3 {
		return s
	}
	return s[:n] + "..." + s[len(s)-n:]
}
