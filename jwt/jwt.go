package jwt

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/google/uuid"

	goJOSE "github.com/MrEthical07/goJOSE"
	"github.com/MrEthical07/goJOSE/codec"
)

// Header defines a public type used by goJOSE APIs.
//
// Header instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// A header is mutable until Sign succeeds; from then on it is logically
// frozen, since the emitted token carries the header bytes the signature was
// computed over.
type Header struct {
	KID string           `json:"kid,omitempty"`
	Alg goJOSE.Algorithm `json:"alg"`
	Typ string           `json:"typ,omitempty"`
}

// NewHeader builds a header for the given algorithm with a fresh random key
// id. Callers with an externally managed key id set KID directly.
func NewHeader(alg goJOSE.Algorithm) Header {
	return Header{KID: uuid.NewString(), Alg: alg, Typ: "JWT"}
}

// Payload defines a public type used by goJOSE APIs.
//
// Payload is the caller-defined claim set. The engine serializes it and
// otherwise treats it as opaque: no expiry, audience, or other semantic
// checks are applied here.
type Payload map[string]any

// JWT defines a public type used by goJOSE APIs.
//
// A JWT starts unsigned; Sign computes and stores the signature together
// with the exact signing input it covered, and Token emits the compact form.
// Re-signing overwrites the previous signature.
type JWT struct {
	Header  Header
	Payload Payload

	// signingInput is captured at Sign time so later header/payload
	// mutation cannot desynchronize the emitted token from its signature.
	signingInput []byte
	signature    []byte
}

// New builds an unsigned token from a header and claim set.
func New(header Header, payload Payload) *JWT {
	return &JWT{Header: header, Payload: payload}
}

// Signed reports whether the token currently carries a signature.
func (t *JWT) Signed() bool { return len(t.signature) > 0 }

// Signature returns a copy of the raw signature bytes, or nil while the
// token is unsigned.
func (t *JWT) Signature() []byte {
	if len(t.signature) == 0 {
		return nil
	}
	out := make([]byte, len(t.signature))
	copy(out, t.signature)
	return out
}

// Sign computes the token signature with Header.Alg over
// base64url(json(header)) + "." + base64url(json(payload)), drawing
// randomness from crypto/rand. The key family must match the header
// algorithm; mismatch is ErrKeyAlgorithmMismatch, never a silent fallback.
//
// Sign may return an error when input validation, dependency calls, or security checks fail.
func (t *JWT) Sign(key goJOSE.KeyMaterial) error {
	return t.SignWithRand(rand.Reader, key)
}

// SignWithRand is Sign with an explicit random source for the randomized
// signature schemes.
//
// SignWithRand may return an error when input validation, dependency calls, or security checks fail.
func (t *JWT) SignWithRand(rng io.Reader, key goJOSE.KeyMaterial) error {
	input, err := t.buildSigningInput()
	if err != nil {
		return err
	}

	sig, err := goJOSE.SignWithRand(rng, input, key, t.Header.Alg)
	if err != nil {
		return err
	}

	t.signingInput = input
	t.signature = sig
	return nil
}

// Token emits the compact form signing_input + "." + base64url(signature).
// Calling Token on an unsigned JWT yields ErrNotSigned.
//
// Token may return an error when input validation, dependency calls, or security checks fail.
func (t *JWT) Token() (string, error) {
	if !t.Signed() {
		return "", fmt.Errorf("%w: call Sign before Token", goJOSE.ErrNotSigned)
	}
	return string(t.signingInput) + "." + codec.Base64URLEncode(t.signature), nil
}

// buildSigningInput serializes header and payload canonically (RFC 8785) so
// that a given header/payload value always maps to the same signing bytes.
func (t *JWT) buildSigningInput() ([]byte, error) {
	headerJSON, err := codec.MarshalCanonical(t.Header)
	if err != nil {
		return nil, err
	}

	payload := t.Payload
	if payload == nil {
		payload = Payload{}
	}
	payloadJSON, err := codec.MarshalCanonical(payload)
	if err != nil {
		return nil, err
	}

	return []byte(codec.Base64URLEncode(headerJSON) + "." + codec.Base64URLEncode(payloadJSON)), nil
}
