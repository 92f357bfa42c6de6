package goJOSE

import (
	"fmt"
)

// Verify checks a raw signature over content. It returns (true, nil) when
// the signature matches, (false, nil) when the signature is well-formed but
// does not match, and (false, err) for structural problems: unsupported
// algorithm, key/algorithm family mismatch, or a signature whose length does
// not fit the scheme (ErrMalformedSignature). A non-matching signature is a
// normal negative outcome, never an error.
//
// Verify does not mutate shared global state and can be used concurrently when the key is concurrently safe.
func Verify(content, signature []byte, key KeyMaterial, alg Algorithm) (bool, error) {
	info, err := algorithmInfoFor(alg)
	if err != nil {
		return false, err
	}
	if key == nil {
		return false, fmt.Errorf("%w: nil key", ErrKeyAlgorithmMismatch)
	}
	if key.Family() != info.family {
		return false, fmt.Errorf("%w: %s requires a %s key, got %s",
			ErrKeyAlgorithmMismatch, alg, info.family, key.Family())
	}

	switch k := key.(type) {
	case *SymmetricKey:
		return verifyHMAC(k.secret, content, signature, info)
	case *RSAPrivateKey:
		return verifyRSA(&k.key.PublicKey, content, signature, info)
	case *RSAPublicKey:
		return verifyRSA(k.key, content, signature, info)
	case *ECPrivateKey:
		return verifyECDSA(&k.key.PublicKey, content, signature, info)
	case *ECPublicKey:
		return verifyECDSA(k.key, content, signature, info)
	case *EdPrivateKey:
		return verifyEd25519(k.PublicKey().key, content, signature)
	case *EdPublicKey:
		return verifyEd25519(k.key, content, signature)
	default:
		return false, fmt.Errorf("%w: %s key material cannot verify", ErrKeyAlgorithmMismatch, key.Family())
	}
}
