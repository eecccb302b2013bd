package cookiewire

import "fmt"

// DefaultMaxValueLen caps name=value at the ~4 KiB limit most browsers
// enforce per cookie.
const DefaultMaxValueLen = 4096

// Keyring is an ordered list of secrets. Index 0 is primary and is used for
// signing and encrypting; every index may verify or decrypt, so rotating a
// key means prepending the new one and keeping the old ones until traffic
// drains. The codec treats the ring as read-only; swap the whole ring to
// rotate.
type Keyring [][]byte

// NewKeyring builds a Keyring from string secrets, first secret primary.
func NewKeyring(secrets ...string) Keyring {
	ring := make(Keyring, len(secrets))
	for i, s := range secrets {
		ring[i] = []byte(s)
	}
	return ring
}

// Mode selects the pipeline applied per call. The order inside a mode is
// fixed (serialize -> sign -> encrypt); encryption without signing is not
// representable.
type Mode int

const (
	// ModePlain transports values without keys: serialize only.
	ModePlain Mode = iota
	// ModeSigned appends an HMAC tag: serialize -> sign.
	ModeSigned
	// ModeSealed signs then encrypts: serialize -> sign -> encrypt.
	ModeSealed
)

// Options tune a Codec. All fields are optional; a zero Options gives a
// plain-mode-only codec with default limits.
type Options struct {
	// Keys enables ModeSigned and ModeSealed. Nil or empty restricts the
	// codec to ModePlain.
	Keys Keyring

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used

	// MaxValueLen rejects oversized cookies at Create.
	// 0 => DefaultMaxValueLen; negative => unlimited.
	MaxValueLen int
}

// New builds a Codec. The only hard failure is an empty key inside a
// non-empty ring, which would sign with a guessable secret.
func New(opts Options) (*Codec, error) {
	for i, k := range opts.Keys {
		if len(k) == 0 {
			return nil, fmt.Errorf("cookiewire: empty key at ring index %d", i)
		}
	}

	c := &Codec{keys: opts.Keys}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	switch {
	case opts.MaxValueLen < 0:
		c.maxValueLen = 0 // unlimited
	case opts.MaxValueLen == 0:
		c.maxValueLen = DefaultMaxValueLen
	default:
		c.maxValueLen = opts.MaxValueLen
	}
	return c, nil
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
