package jwt

import (
	"fmt"
	"strings"

	goJOSE "github.com/MrEthical07/goJOSE"
	"github.com/MrEthical07/goJOSE/codec"
)

// ValidateToken parses and verifies a compact-form token against the given
// key and returns the claim set only if the signature checks out.
//
// The algorithm named in the token header is never trusted on its own: its
// key family must equal the supplied key's family, otherwise the token is
// rejected with ErrAlgorithmMismatch. This defeats downgrade tricks such as
// rewriting an RS256 header to HS256 and replaying the RSA public key bytes
// as an HMAC secret.
//
// ValidateToken may return an error when input validation, dependency calls, or security checks fail.
// Every ambiguity, parse failure, or mismatch rejects; unverified claims are never returned.
func ValidateToken(token string, key goJOSE.KeyMaterial) (Payload, error) {
	return validateToken(token, key, "")
}

// ValidateTokenWithAlgorithm is ValidateToken for callers that pin one exact
// algorithm: a header naming any other algorithm is rejected with
// ErrAlgorithmMismatch even when the families agree.
//
// ValidateTokenWithAlgorithm may return an error when input validation, dependency calls, or security checks fail.
func ValidateTokenWithAlgorithm(token string, key goJOSE.KeyMaterial, alg goJOSE.Algorithm) (Payload, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %q", goJOSE.ErrUnsupportedAlgorithm, string(alg))
	}
	return validateToken(token, key, alg)
}

func validateToken(token string, key goJOSE.KeyMaterial, expected goJOSE.Algorithm) (Payload, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: nil key", goJOSE.ErrKeyAlgorithmMismatch)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", goJOSE.ErrMalformedToken, len(parts))
	}

	headerJSON, err := codec.Base64URLDecode(parts[0])
	if err != nil {
		return nil, err
	}
	var header Header
	if err := codec.UnmarshalJSON(headerJSON, &header); err != nil {
		return nil, err
	}
	if !header.Alg.Valid() {
		return nil, fmt.Errorf("%w: header alg %q", goJOSE.ErrUnsupportedAlgorithm, string(header.Alg))
	}
	if expected != "" && header.Alg != expected {
		return nil, fmt.Errorf("%w: header says %s, caller expects %s",
			goJOSE.ErrAlgorithmMismatch, header.Alg, expected)
	}
	if header.Alg.Family() != key.Family() {
		return nil, fmt.Errorf("%w: header says %s but key family is %s",
			goJOSE.ErrAlgorithmMismatch, header.Alg, key.Family())
	}

	signature, err := codec.Base64URLDecode(parts[2])
	if err != nil {
		return nil, err
	}

	signingInput := []byte(parts[0] + "." + parts[1])
	ok, err := goJOSE.Verify(signingInput, signature, key, header.Alg)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, goJOSE.ErrVerificationFailed
	}

	// Claims are parsed only after the signature verified.
	payloadJSON, err := codec.Base64URLDecode(parts[1])
	if err != nil {
		return nil, err
	}
	var payload Payload
	if err := codec.UnmarshalJSON(payloadJSON, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// DecodeInsecure parses a token's header and payload WITHOUT verifying the
// signature. It exists for inspection and debugging only; nothing returned
// by it may be trusted. Use ValidateToken everywhere else.
//
// DecodeInsecure may return an error when input validation, dependency calls, or security checks fail.
func DecodeInsecure(token string) (Header, Payload, error) {
	var header Header

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return header, nil, fmt.Errorf("%w: expected 3 segments, got %d", goJOSE.ErrMalformedToken, len(parts))
	}

	headerJSON, err := codec.Base64URLDecode(parts[0])
	if err != nil {
		return header, nil, err
	}
	if err := codec.UnmarshalJSON(headerJSON, &header); err != nil {
		return header, nil, err
	}

	payloadJSON, err := codec.Base64URLDecode(parts[1])
	if err != nil {
		return header, nil, err
	}
	var payload Payload
	if err := codec.UnmarshalJSON(payloadJSON, &payload); err != nil {
		return header, nil, err
	}

	return header, payload, nil
}
