// Package value converts structured application values to and from the
// tagged wire strings carried inside cookie values.
//
// Plain strings travel unchanged. Anything else is JSON-encoded behind the
// literal "j:" tag, which disambiguates "looks like JSON but is a bare
// string" from "is structurally JSON". Typed binary codecs (see Codec) travel
// behind "b:" as raw-url-base64 and are opaque to the untyped path.
package value

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	jsonTag = "j:"
	binTag  = "b:"
)

// ErrMalformed reports a tagged body that failed to decode. Callers treat
// the cookie as absent rather than failing the whole parse.
var ErrMalformed = errors.New("cookiewire: malformed tagged value")

// Serialize renders v as a wire string. Strings pass through unchanged;
// every other value becomes "j:" + JSON.
func Serialize(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cookiewire: value not serializable: %w", err)
	}
	return jsonTag + string(b), nil
}

// Deserialize reverses Serialize. A wire string without the "j:" tag is a
// plain string and is returned as-is; the empty string round-trips to itself.
// JSON bodies decode to string, float64, []any or map[string]any.
func Deserialize(wire string) (any, error) {
	body, ok := strings.CutPrefix(wire, jsonTag)
	if !ok {
		return wire, nil
	}
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return nil, ErrMalformed
	}
	return v, nil
}

// Pack encodes v with c and wraps the bytes for cookie transport as
// "b:" + base64. The result is a plain string to the untyped pipeline, so it
// flows through signing and sealing unchanged.
func Pack[V any](c Codec[V], v V) (string, error) {
	b, err := c.Encode(v)
	if err != nil {
		return "", err
	}
	return binTag + base64.RawURLEncoding.EncodeToString(b), nil
}

// Unpack reverses Pack. A missing tag or undecodable base64 body returns
// ErrMalformed.
func Unpack[V any](c Codec[V], wire string) (V, error) {
	var zero V
	body, ok := strings.CutPrefix(wire, binTag)
	if !ok {
		return zero, ErrMalformed
	}
	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return zero, ErrMalformed
	}
	return c.Decode(raw)
}
