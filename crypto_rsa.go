package goJOSE

import (
	"crypto"
	"crypto/rsa"
	"fmt"
	"io"
)

func digest(hash crypto.Hash, content []byte) []byte {
	h := hash.New()
	h.Write(content)
	return h.Sum(nil)
}

func signRSA(rng io.Reader, key *rsa.PrivateKey, content []byte, info algorithmInfo) ([]byte, error) {
	sum := digest(info.hash, content)

	switch info.scheme {
	case schemePKCS1v15:
		sig, err := rsa.SignPKCS1v15(rng, key, info.hash, sum)
		if err != nil {
			return nil, fmt.Errorf("%w: RSA PKCS#1v1.5 sign: %v", ErrCryptographicFailure, err)
		}
		return sig, nil
	case schemePSS:
		// Fresh random salt per call, salt length pinned to the hash size.
		sig, err := rsa.SignPSS(rng, key, info.hash, sum, &rsa.PSSOptions{
			SaltLength: rsa.PSSSaltLengthEqualsHash,
			Hash:       info.hash,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: RSA-PSS sign: %v", ErrCryptographicFailure, err)
		}
		return sig, nil
	default:
		return nil, fmt.Errorf("%w: scheme not valid for RSA", ErrUnsupportedAlgorithm)
	}
}

func verifyRSA(key *rsa.PublicKey, content, signature []byte, info algorithmInfo) (bool, error) {
	if len(signature) != key.Size() {
		return false, fmt.Errorf("%w: RSA signature must be %d bytes, got %d",
			ErrMalformedSignature, key.Size(), len(signature))
	}
	sum := digest(info.hash, content)

	switch info.scheme {
	case schemePKCS1v15:
		return rsa.VerifyPKCS1v15(key, info.hash, sum, signature) == nil, nil
	case schemePSS:
		// Salt length auto-detected on verify: signers pinning the salt to
		// the hash size and signers using the maximum both interoperate.
		err := rsa.VerifyPSS(key, info.hash, sum, signature, &rsa.PSSOptions{
			SaltLength: rsa.PSSSaltLengthAuto,
			Hash:       info.hash,
		})
		return err == nil, nil
	default:
		return false, fmt.Errorf("%w: scheme not valid for RSA", ErrUnsupportedAlgorithm)
	}
}
