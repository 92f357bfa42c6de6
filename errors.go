package goJOSE

import "errors"

var (
	// ErrUnsupportedAlgorithm is an exported constant or variable used by the signing engine.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	// ErrInvalidKeyEncoding is an exported constant or variable used by the signing engine.
	ErrInvalidKeyEncoding = errors.New("invalid key encoding")
	// ErrKeyAlgorithmMismatch is an exported constant or variable used by the signing engine.
	ErrKeyAlgorithmMismatch = errors.New("key does not match algorithm family")
	// ErrCryptographicFailure is an exported constant or variable used by the signing engine.
	ErrCryptographicFailure = errors.New("cryptographic operation failed")
	// ErrMalformedSignature is an exported constant or variable used by the signing engine.
	ErrMalformedSignature = errors.New("malformed signature")
	// ErrVerificationFailed is an exported constant or variable used by the signing engine.
	ErrVerificationFailed = errors.New("signature verification failed")
	// ErrMalformedToken is an exported constant or variable used by the signing engine.
	ErrMalformedToken = errors.New("malformed token")
	// ErrBase64Decode is an exported constant or variable used by the signing engine.
	ErrBase64Decode = errors.New("base64url decode failed")
	// ErrJSONParse is an exported constant or variable used by the signing engine.
	ErrJSONParse = errors.New("json parse failed")
	// ErrAlgorithmMismatch is an exported constant or variable used by the signing engine.
	ErrAlgorithmMismatch = errors.New("token algorithm does not match expectation")
	// ErrNotSigned is an exported constant or variable used by the signing engine.
	ErrNotSigned = errors.New("token not signed")
)
