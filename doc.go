// Package cookiewire is a bidirectional codec between raw HTTP Cookie header
// text and structured application values, with optional integrity (HMAC
// signing) and confidentiality (authenticated encryption).
//
// Components:
//   - value: tagged wire strings <-> structured values ("j:" + JSON), plus
//     typed body codecs (JSON, Msgpack, CBOR, Protobuf) behind "b:" + base64.
//   - sign: HMAC-SHA256 tags with key rotation (first key signs, any key in
//     the ring verifies).
//   - seal: AES-256-GCM sealing with the same rotation rule.
//   - Codec: composes the above into Parse and Create; Record/SetCookies
//     render Set-Cookie lines.
//
// Pipeline (fixed order, chosen per call):
//
//	ModePlain:  serialize
//	ModeSigned: serialize -> sign
//	ModeSealed: serialize -> sign -> encrypt
//
// Encrypt-without-sign is not representable. Parse reverses the pipeline and
// silently drops any cookie that fails a stage, so tampering is
// indistinguishable from absence. Only contract misuse (a keyed mode without
// keys, an invalid name, an oversized value) returns an error.
package cookiewire
