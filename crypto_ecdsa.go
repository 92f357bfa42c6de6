package goJOSE

import (
	"crypto/ecdsa"
	"fmt"
	"io"
	"math/big"
)

// ECDSA signatures travel as fixed-width big-endian r||s sized to the curve
// order (RFC 7518 §3.4), not ASN.1 DER. The secp256k1 curve rides the same
// path: its key material carries a curve implementation compatible with
// crypto/ecdsa.
func signECDSA(rng io.Reader, key *ecdsa.PrivateKey, content []byte, info algorithmInfo) ([]byte, error) {
	sum := digest(info.hash, content)

	r, s, err := ecdsa.Sign(rng, key, sum)
	if err != nil {
		return nil, fmt.Errorf("%w: ECDSA sign: %v", ErrCryptographicFailure, err)
	}

	half := info.sigSize / 2
	out := make([]byte, info.sigSize)
	r.FillBytes(out[:half])
	s.FillBytes(out[half:])
	return out, nil
}

func verifyECDSA(key *ecdsa.PublicKey, content, signature []byte, info algorithmInfo) (bool, error) {
	if len(signature) != info.sigSize {
		return false, fmt.Errorf("%w: ECDSA signature must be %d bytes, got %d",
			ErrMalformedSignature, info.sigSize, len(signature))
	}

	half := info.sigSize / 2
	r := new(big.Int).SetBytes(signature[:half])
	s := new(big.Int).SetBytes(signature[half:])
	if r.Sign() == 0 || s.Sign() == 0 {
		return false, nil
	}

	sum := digest(info.hash, content)
	return ecdsa.Verify(key, sum, r, s), nil
}
