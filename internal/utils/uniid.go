package utils

import "fmt"

// Prefixes for human-readable entity identifiers.
const (
	UserIDPrefix    = "USR"
	ProductIDPrefix = "PRO"
	ServiceIDPrefix = "SER"
	BlogIDPrefix    = "BLO"
)

// FormatUniID renders a sequence value as a human-readable identifier,
// e.g. ("PRO", 7) -> "PRO0007". Values beyond 9999 widen naturally.
func FormatUniID(prefix string, n int64) string {
	return fmt.Sprintf("%s%04d", prefix, n)
}
