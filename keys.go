package goJOSE

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// KeyMaterial defines a public type used by goJOSE APIs.
//
// KeyMaterial instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// The set of implementations is closed: SymmetricKey, RSAPrivateKey,
// RSAPublicKey, ECPrivateKey, ECPublicKey, EdPrivateKey, EdPublicKey. The
// engine borrows key material read-only for the duration of a Sign or Verify
// call and never persists or logs it.
type KeyMaterial interface {
	// Family returns the algorithm family the key belongs to. Sign and
	// Verify reject any key whose family differs from the algorithm's.
	Family() KeyFamily

	sealedKeyMaterial()
}

// SymmetricKey defines a public type used by goJOSE APIs.
//
// SymmetricKey instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SymmetricKey struct {
	secret []byte
}

// NewSymmetricKey builds key material for the HMAC family from a raw secret.
//
// NewSymmetricKey may return an error when input validation, dependency calls, or security checks fail.
func NewSymmetricKey(secret []byte) (*SymmetricKey, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty symmetric secret", ErrInvalidKeyEncoding)
	}
	k := &SymmetricKey{secret: make([]byte, len(secret))}
	copy(k.secret, secret)
	return k, nil
}

// Family returns FamilySymmetric.
func (k *SymmetricKey) Family() KeyFamily { return FamilySymmetric }

func (k *SymmetricKey) sealedKeyMaterial() {}

// decodePEMBlock extracts the first PEM block from text and, for legacy
// RFC 1423 encrypted blocks, decrypts the DER payload with the passphrase.
// Encrypted blocks with a nil passphrase and blocks that fail decryption are
// both import errors; the distinction is kept in the wrapped message so
// callers can prompt for a passphrase.
func decodePEMBlock(pemText string, passphrase []byte) (*pem.Block, []byte, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, nil, fmt.Errorf("%w: no PEM block found", ErrInvalidKeyEncoding)
	}

	//nolint:staticcheck // RFC 1423 PEM encryption is part of the accepted import surface.
	if x509.IsEncryptedPEMBlock(block) {
		if len(passphrase) == 0 {
			return nil, nil, fmt.Errorf("%w: encrypted PEM block requires a passphrase", ErrInvalidKeyEncoding)
		}
		//nolint:staticcheck
		der, err := x509.DecryptPEMBlock(block, passphrase)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: PEM decryption failed (wrong passphrase?)", ErrInvalidKeyEncoding)
		}
		return block, der, nil
	}

	return block, block.Bytes, nil
}
