// Package sign computes and verifies keyed integrity tags over cookie
// payload strings.
//
// Wire form is payload + "." + tag, where tag is the raw-url-base64 of
// HMAC-SHA256(key, payload). The payload may itself contain '.' (base64 and
// JSON bodies do), so verification splits on the LAST dot.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// tagEncoding is strict on decode so a tag with non-zero padding bits never
// aliases a valid one.
var tagEncoding = base64.RawURLEncoding.Strict()

func digest(key []byte, payload string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}

// Sign returns the signed wire form of payload under key.
func Sign(payload string, key []byte) string {
	return payload + "." + tagEncoding.EncodeToString(digest(key, payload))
}

// Verify checks a signed wire string against every key in order and returns
// the payload of the first match. It reports only success or failure, never
// which key matched. Comparison is constant time per key.
func Verify(wire string, keys [][]byte) (string, bool) {
	i := strings.LastIndexByte(wire, '.')
	if i < 0 {
		return "", false
	}
	payload, tag := wire[:i], wire[i+1:]
	got, err := tagEncoding.DecodeString(tag)
	if err != nil {
		return "", false
	}
	for _, k := range keys {
		if hmac.Equal(got, digest(k, payload)) {
			return payload, true
		}
	}
	return "", false
}
