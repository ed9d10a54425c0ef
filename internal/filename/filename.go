// Package filename turns untrusted user-supplied filenames into safe,
// collision-free storage identifiers and recovers display names from them.
//
// A storage identifier has the form "<uuid>_<sanitized-name>". The UUID
// contains no underscore, so splitting at the first underscore losslessly
// recovers the sanitized display name.
package filename

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Sanitize removes every rune that is not a letter, digit, '.', '-' or '_',
// then strips leading dots. Path separators and ".." segments cannot survive,
// and the result can never name a hidden file. The result may be empty.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimLeft(b.String(), ".")
}

// NewStorageID mints a unique on-disk name for a sanitized filename by
// prefixing a freshly generated UUID. Uniqueness needs no lookup; two
// concurrent uploads of the same name get distinct identifiers.
func NewStorageID(safeName string) string {
	return uuid.New().String() + "_" + safeName
}

// DisplayName recovers the user-facing name from a storage identifier by
// dropping the token prefix. Identifiers without an underscore are returned
// unchanged.
func DisplayName(storageID string) string {
	if i := strings.IndexByte(storageID, '_'); i >= 0 {
		return storageID[i+1:]
	}
	return storageID
}
