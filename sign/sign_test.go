package sign

import (
	"strings"
	"testing"
)

var ring = [][]byte{[]byte("keyboard cat"), []byte("old secret")}

func mustVerify(t *testing.T, wire string, keys [][]byte) string {
	t.Helper()
	payload, ok := Verify(wire, keys)
	if !ok {
		t.Fatalf("Verify(%q) failed", wire)
	}
	return payload
}

func TestSignRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"foo",
		"j:[1,2,3]",
		"payload.with.dots",     // verification must split on the last dot
		"dGVzdA==.more==base64", // base64-looking payloads survive
	}
	for _, payload := range cases {
		wire := Sign(payload, ring[0])
		if !strings.HasPrefix(wire, payload+".") {
			t.Fatalf("Sign(%q) = %q, expected payload prefix", payload, wire)
		}
		if got := mustVerify(t, wire, ring); got != payload {
			t.Fatalf("Verify round trip: got %q want %q", got, payload)
		}
	}
}

func TestVerifyKeyRotation(t *testing.T) {
	wire := Sign("session-data", []byte("old secret"))

	// The signing key may sit at any ring position.
	rings := [][][]byte{
		{[]byte("old secret")},
		{[]byte("new secret"), []byte("old secret")},
		{[]byte("a"), []byte("b"), []byte("old secret")},
	}
	for _, r := range rings {
		if got := mustVerify(t, wire, r); got != "session-data" {
			t.Fatalf("rotation verify: got %q", got)
		}
	}

	if _, ok := Verify(wire, [][]byte{[]byte("disjoint")}); ok {
		t.Fatalf("expected failure against disjoint ring")
	}
}

func TestVerifyRejectsAnyByteFlip(t *testing.T) {
	wire := Sign("j:{\"user\":\"foo\"}", ring[0])
	for i := 0; i < len(wire); i++ {
		for _, mask := range []byte{0x01, 0x20, 0x80} {
			mut := []byte(wire)
			mut[i] ^= mask
			if _, ok := Verify(string(mut), ring); ok {
				t.Fatalf("tampered wire accepted (byte %d, mask %#x): %q", i, mask, mut)
			}
		}
	}
}

func TestVerifyRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"no-dot-at-all",
		"payload.",           // empty tag
		"payload.!!!not-b64", // undecodable tag
		".tag-only",
	}
	for _, wire := range cases {
		if _, ok := Verify(wire, ring); ok {
			t.Fatalf("Verify(%q): expected failure", wire)
		}
	}
}

func TestSignDeterministic(t *testing.T) {
	a := Sign("foo", ring[0])
	b := Sign("foo", ring[0])
	if a != b {
		t.Fatalf("signatures differ for same payload/key: %q vs %q", a, b)
	}
	if a == Sign("foo", ring[1]) {
		t.Fatalf("different keys produced identical signatures")
	}
}
