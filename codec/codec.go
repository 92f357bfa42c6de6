// Package codec provides the segment framing used by the jwt package:
// unpadded base64url (RFC 4648 §5, strict), JSON encoding, and RFC 8785
// canonical JSON for deterministic signing input.
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/gowebpki/jcs"

	goJOSE "github.com/MrEthical07/goJOSE"
)

// Base64URLEncode encodes raw bytes as unpadded base64url.
func Base64URLEncode(raw []byte) string {
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Base64URLDecode decodes an unpadded base64url segment. Padded input and
// characters outside the RFC 4648 §5 alphabet are rejected with an error
// wrapping goJOSE.ErrBase64Decode; nothing is silently truncated or
// substituted.
//
// Base64URLDecode may return an error when input validation, dependency calls, or security checks fail.
func Base64URLDecode(segment string) ([]byte, error) {
	// RawURLEncoding tolerates nothing extra, but the standard decoder maps
	// some malformed input to CorruptInputError without naming the cause;
	// padding is called out explicitly because it is the common mistake.
	if strings.Contains(segment, "=") {
		return nil, fmt.Errorf("%w: padded input", goJOSE.ErrBase64Decode)
	}
	raw, err := base64.RawURLEncoding.Strict().DecodeString(segment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", goJOSE.ErrBase64Decode, err)
	}
	return raw, nil
}

// MarshalJSON encodes v as JSON.
//
// MarshalJSON may return an error when input validation, dependency calls, or security checks fail.
func MarshalJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", goJOSE.ErrJSONParse, err)
	}
	return data, nil
}

// UnmarshalJSON decodes data into v. Malformed input yields an error
// wrapping goJOSE.ErrJSONParse.
//
// UnmarshalJSON may return an error when input validation, dependency calls, or security checks fail.
func UnmarshalJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", goJOSE.ErrJSONParse, err)
	}
	return nil
}

// MarshalCanonical encodes v as RFC 8785 canonical JSON. The signing path
// uses this so that a given header/payload value always produces the same
// signing input bytes.
//
// MarshalCanonical may return an error when input validation, dependency calls, or security checks fail.
func MarshalCanonical(v any) ([]byte, error) {
	data, err := MarshalJSON(v)
	if err != nil {
		return nil, err
	}
	canonical, err := jcs.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("%w: canonicalization: %v", goJOSE.ErrJSONParse, err)
	}
	return canonical, nil
}
