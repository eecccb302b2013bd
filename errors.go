package cookiewire

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKeyring is returned when a signed or sealed mode is requested on
	// a codec built without keys.
	ErrNoKeyring = errors.New("cookiewire: keyring required for signed or sealed mode")

	// ErrInvalidName is returned by Create for names that cannot appear on
	// the wire (separators, whitespace, control bytes).
	ErrInvalidName = errors.New("cookiewire: invalid cookie name")

	// ErrValueTooLong is returned by Create when name=value exceeds
	// Options.MaxValueLen after encoding.
	ErrValueTooLong = errors.New("cookiewire: encoded cookie exceeds size limit")
)

// AttributeError reports an attribute set that would produce a cookie
// browsers reject (SameSite=None without Secure, broken __Host-/__Secure-
// prefix contract).
type AttributeError struct {
	Name   string
	Reason string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("cookiewire: cookie %q: %s", e.Name, e.Reason)
}
