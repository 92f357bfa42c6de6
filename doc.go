// Package goJOSE provides content signing and verification across the 14
// JOSE signature algorithms (HS/RS/PS/ES families, ES256K, EdDSA), typed key
// material with raw/PEM/component import, and — in the jwt subpackage — a
// compact-form JWT engine built on top of it.
//
// The package is designed for concurrent server workloads: key material and
// Algorithm values are immutable after construction, and Sign/Verify hold no
// shared state, so a single key may back concurrent calls without locking.
//
// # Architecture boundaries
//
// goJOSE is the public signing surface. It exposes [Algorithm], [KeyFamily],
// the [KeyMaterial] variants, [Sign], [SignWithRand], and [Verify]. Segment
// framing (base64url, JSON) lives in the codec subpackage; token assembly
// and validation live in the jwt subpackage. Neither is imported here.
//
// # What this package must NOT do
//
//   - Log, store, or otherwise emit key material; keys are borrowed
//     read-only for the duration of a call.
//   - Trust an algorithm identifier taken from untrusted input: every entry
//     point checks the key family against the algorithm before touching a
//     primitive.
//   - Hold process-global mutable state. The algorithm registry is a
//     constant table; the random source is an explicit parameter.
//
// # Security contract
//
// Verify distinguishes three outcomes: match (true, nil), well-formed
// non-match (false, nil), and structural error (false, err). Byte comparison
// on the HMAC path is constant-time. Randomized schemes (RSA-PSS salts,
// ECDSA nonces) draw only from the injected source, which must be
// cryptographically secure in production.
package goJOSE
