package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateBookingNumber produces a human-readable booking reference like
// DTL-20260831-4F7A2C. Uniqueness comes from the random suffix; the date
// part exists for the front desk.
func GenerateBookingNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("DTL-%s-%s", now.Format("20060102"), suffix)
}
