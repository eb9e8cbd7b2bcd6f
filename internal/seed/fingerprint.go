package seed

import (
	"crypto/sha256"
	"encoding/hex"
)

const shortFingerprintLen = 7

// Fingerprint is the lowercase hex SHA-256 of a source file's exact bytes.
func Fingerprint(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Short abbreviates a fingerprint for log lines.
func Short(fp string) string {
	if len(fp) <= shortFingerprintLen {
		return fp
	}
	return fp[:shortFingerprintLen]
}
