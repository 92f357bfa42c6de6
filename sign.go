package goJOSE

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Sign produces a raw signature over content using the given key material
// and algorithm, drawing randomness from crypto/rand. The key family is
// checked against the algorithm before any cryptographic work; a verifying
// key (or a key of the wrong family) is rejected with
// ErrKeyAlgorithmMismatch.
//
// Sign may return an error when input validation, dependency calls, or security checks fail.
// Sign does not mutate shared global state and can be used concurrently when the key and random source are concurrently safe.
func Sign(content []byte, key KeyMaterial, alg Algorithm) ([]byte, error) {
	return SignWithRand(rand.Reader, content, key, alg)
}

// SignWithRand is Sign with an explicit random source. The randomized
// schemes (RSA-PSS salts, ECDSA nonces) draw exclusively from rng, so tests
// may substitute a deterministic reader; production callers should pass
// crypto/rand.Reader or use Sign.
//
// SignWithRand may return an error when input validation, dependency calls, or security checks fail.
func SignWithRand(rng io.Reader, content []byte, key KeyMaterial, alg Algorithm) ([]byte, error) {
	info, err := algorithmInfoFor(alg)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrCryptographicFailure)
	}
	if key == nil {
		return nil, fmt.Errorf("%w: nil key", ErrKeyAlgorithmMismatch)
	}
	if key.Family() != info.family {
		return nil, fmt.Errorf("%w: %s requires a %s key, got %s",
			ErrKeyAlgorithmMismatch, alg, info.family, key.Family())
	}

	switch k := key.(type) {
	case *SymmetricKey:
		return signHMAC(k.secret, content, info)
	case *RSAPrivateKey:
		return signRSA(rng, k.key, content, info)
	case *ECPrivateKey:
		return signECDSA(rng, k.key, content, info)
	case *EdPrivateKey:
		return signEd25519(k.key, content)
	default:
		// Same family but not a signing variant: a public key was supplied.
		return nil, fmt.Errorf("%w: %s key material cannot sign", ErrKeyAlgorithmMismatch, key.Family())
	}
}
