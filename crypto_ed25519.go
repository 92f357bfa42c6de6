package goJOSE

import (
	"crypto/ed25519"
	"fmt"
)

// Ed25519 signs the content directly; the scheme hashes internally, so no
// pre-hash step exists on this path.
func signEd25519(key ed25519.PrivateKey, content []byte) ([]byte, error) {
	return ed25519.Sign(key, content), nil
}

func verifyEd25519(key ed25519.PublicKey, content, signature []byte) (bool, error) {
	if len(signature) != ed25519.SignatureSize {
		return false, fmt.Errorf("%w: Ed25519 signature must be %d bytes, got %d",
			ErrMalformedSignature, ed25519.SignatureSize, len(signature))
	}
	return ed25519.Verify(key, content, signature), nil
}
