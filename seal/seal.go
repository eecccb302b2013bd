// Package seal provides authenticated encryption of cookie payload strings.
//
// Blobs are AES-256-GCM: a random 12-byte nonce followed by ciphertext and
// tag, raw-url-base64 encoded so the result survives percent-encoding without
// growth. The AES key is SHA-256 of the caller's secret, so secrets of any
// length work. A blob is fully self-contained; no nonce bookkeeping is needed
// by the caller.
package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"
)

// blobEncoding is strict on decode so a blob with non-zero padding bits never
// aliases a valid one.
var blobEncoding = base64.RawURLEncoding.Strict()

func newAEAD(secret []byte) (cipher.AEAD, error) {
	key := sha256.Sum256(secret)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt seals payload under key and returns the encoded blob.
func Encrypt(payload string, key []byte) (string, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(payload)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	blob := aead.Seal(nonce, nonce, []byte(payload), nil)
	return blobEncoding.EncodeToString(blob), nil
}

// Decrypt opens blob against every key in order and returns the payload of
// the first success. Wrong key, corrupted ciphertext and truncated input are
// indistinguishable: all report ok=false.
func Decrypt(blob string, keys [][]byte) (string, bool) {
	raw, err := blobEncoding.DecodeString(blob)
	if err != nil {
		return "", false
	}
	for _, k := range keys {
		aead, err := newAEAD(k)
		if err != nil {
			continue
		}
		ns := aead.NonceSize()
		if len(raw) < ns {
			continue
		}
		if payload, err := aead.Open(nil, raw[:ns], raw[ns:], nil); err == nil {
			return string(payload), true
		}
	}
	return "", false
}
