package cookiewire

import (
	"fmt"

	"github.com/unkn0wn-root/cookiewire/internal/wire"
	"github.com/unkn0wn-root/cookiewire/seal"
	"github.com/unkn0wn-root/cookiewire/sign"
	"github.com/unkn0wn-root/cookiewire/value"
)

// Codec converts between raw Cookie header text and structured values.
// It holds no mutable state and is safe for arbitrary concurrent use.
type Codec struct {
	keys        Keyring
	log         Logger
	hooks       Hooks
	maxValueLen int
}

// Parse decodes a raw Cookie header into name -> value. The mode is chosen
// per call: a single request may carry signed and unsigned cookies side by
// side, and the caller decides per read which contract applies.
//
// Any cookie failing a pipeline stage is dropped and parsing continues;
// tampering is indistinguishable from absence. An empty or cookie-free
// header yields an empty map. Duplicate names: last occurrence wins.
// The only error is ErrNoKeyring for a keyed mode on a keyless codec.
func (c *Codec) Parse(header string, mode Mode) (map[string]any, error) {
	if mode != ModePlain && len(c.keys) == 0 {
		return nil, ErrNoKeyring
	}
	out := make(map[string]any)
	for _, p := range wire.SplitPairs(header) {
		raw, err := wire.Unescape(p.Value)
		if err != nil {
			c.drop(p.Name, "bad_escape")
			continue
		}
		if mode == ModeSealed {
			payload, ok := seal.Decrypt(raw, c.keys)
			if !ok {
				c.drop(p.Name, "decrypt_failed")
				continue
			}
			raw = payload
		}
		if mode != ModePlain {
			payload, ok := sign.Verify(raw, c.keys)
			if !ok {
				c.drop(p.Name, "bad_signature")
				continue
			}
			raw = payload
		}
		v, err := value.Deserialize(raw)
		if err != nil {
			c.drop(p.Name, "bad_body")
			continue
		}
		out[p.Name] = v
	}
	return out, nil
}

// Create encodes one cookie: serialize, then sign and/or seal per mode,
// percent-encode, and wrap with attributes into a Record ready for
// SetCookies. Contract misuse (bad name, missing keys, attribute guard,
// oversized value) is a hard error; nothing is silently degraded.
func (c *Codec) Create(name string, v any, attrs Attributes, mode Mode) (Record, error) {
	if !wire.ValidName(name) {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if err := attrs.check(name); err != nil {
		return Record{}, err
	}
	if mode != ModePlain && len(c.keys) == 0 {
		return Record{}, ErrNoKeyring
	}

	s, err := value.Serialize(v)
	if err != nil {
		return Record{}, err
	}
	if mode != ModePlain {
		s = sign.Sign(s, c.keys[0])
	}
	if mode == ModeSealed {
		if s, err = seal.Encrypt(s, c.keys[0]); err != nil {
			return Record{}, err
		}
	}

	enc := wire.Escape(s)
	if n := len(name) + 1 + len(enc); c.maxValueLen > 0 && n > c.maxValueLen {
		c.hooks.ValueTooLong(name, n)
		return Record{}, fmt.Errorf("%w: %d > %d bytes", ErrValueTooLong, n, c.maxValueLen)
	}
	return Record{Name: name, Value: enc, Attributes: attrs}, nil
}

func (c *Codec) drop(name, reason string) {
	c.hooks.CookieDropped(name, reason)
	c.log.Debug("cookie dropped", Fields{"name": name, "reason": reason})
}
