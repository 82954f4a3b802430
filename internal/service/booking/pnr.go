package booking

import (
	"strings"

	"github.com/google/uuid"
)

// newPNR generates a 6-character uppercase alphanumeric record locator.
// Uniqueness is attempted by random sampling only; the unique index on the
// store surfaces the rare collision as a save error.
func newPNR() string {
	return strings.ToUpper(uuid.NewString()[:6])
}
