package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewBookingReference returns a customer-facing booking reference of the
// form "BK" + yyyymmdd + 6 random characters, e.g. "BK20260901A1B2C3".
// The random tail comes from a UUID so references stay unique without a
// database round-trip; the column still carries a unique index as the
// last line of defense.
func NewBookingReference() string {
	datePart := time.Now().UTC().Format("20060102")
	randPart := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return "BK" + datePart + randPart
}
