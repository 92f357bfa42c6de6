package goJOSE

import (
	"crypto/ed25519"
	"crypto/x509"
	"fmt"
)

// EdPrivateKey defines a public type used by goJOSE APIs.
//
// EdPrivateKey instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type EdPrivateKey struct {
	key ed25519.PrivateKey
}

// EdPublicKey defines a public type used by goJOSE APIs.
//
// EdPublicKey instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type EdPublicKey struct {
	key ed25519.PublicKey
}

// Family returns FamilyEd25519.
func (k *EdPrivateKey) Family() KeyFamily { return FamilyEd25519 }

func (k *EdPrivateKey) sealedKeyMaterial() {}

// PublicKey returns the verifying half of the key pair.
func (k *EdPrivateKey) PublicKey() *EdPublicKey {
	return &EdPublicKey{key: k.key.Public().(ed25519.PublicKey)}
}

// Family returns FamilyEd25519.
func (k *EdPublicKey) Family() KeyFamily { return FamilyEd25519 }

func (k *EdPublicKey) sealedKeyMaterial() {}

// EdPrivateKeyFromBytes imports an Ed25519 signing key from a 32-byte seed
// or a 64-byte expanded private key.
//
// EdPrivateKeyFromBytes may return an error when input validation, dependency calls, or security checks fail.
func EdPrivateKeyFromBytes(raw []byte) (*EdPrivateKey, error) {
	switch len(raw) {
	case ed25519.SeedSize:
		return &EdPrivateKey{key: ed25519.NewKeyFromSeed(raw)}, nil
	case ed25519.PrivateKeySize:
		key := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
		copy(key, raw)
		return &EdPrivateKey{key: key}, nil
	default:
		return nil, fmt.Errorf("%w: Ed25519 private key must be %d or %d bytes, got %d",
			ErrInvalidKeyEncoding, ed25519.SeedSize, ed25519.PrivateKeySize, len(raw))
	}
}

// EdPublicKeyFromBytes imports a 32-byte Ed25519 verifying key.
//
// EdPublicKeyFromBytes may return an error when input validation, dependency calls, or security checks fail.
func EdPublicKeyFromBytes(raw []byte) (*EdPublicKey, error) {
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: Ed25519 public key must be %d bytes, got %d",
			ErrInvalidKeyEncoding, ed25519.PublicKeySize, len(raw))
	}
	key := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(key, raw)
	return &EdPublicKey{key: key}, nil
}

// EdPrivateKeyFromPEM imports an Ed25519 signing key from PKCS#8
// ("PRIVATE KEY") PEM text. passphrase may be nil for unencrypted blocks.
//
// EdPrivateKeyFromPEM may return an error when input validation, dependency calls, or security checks fail.
func EdPrivateKeyFromPEM(pemText string, passphrase []byte) (*EdPrivateKey, error) {
	block, der, err := decodePEMBlock(pemText, passphrase)
	if err != nil {
		return nil, err
	}
	if block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("%w: unexpected PEM block type %q", ErrInvalidKeyEncoding, block.Type)
	}
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: PKCS#8 parse: %v", ErrInvalidKeyEncoding, err)
	}
	key, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: PKCS#8 block does not hold an Ed25519 key", ErrInvalidKeyEncoding)
	}
	return &EdPrivateKey{key: key}, nil
}

// EdPublicKeyFromPEM imports an Ed25519 verifying key from PKIX
// ("PUBLIC KEY") PEM text.
//
// EdPublicKeyFromPEM may return an error when input validation, dependency calls, or security checks fail.
func EdPublicKeyFromPEM(pemText string) (*EdPublicKey, error) {
	block, der, err := decodePEMBlock(pemText, nil)
	if err != nil {
		return nil, err
	}
	if block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("%w: unexpected PEM block type %q", ErrInvalidKeyEncoding, block.Type)
	}
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: PKIX parse: %v", ErrInvalidKeyEncoding, err)
	}
	key, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: PEM block does not hold an Ed25519 public key", ErrInvalidKeyEncoding)
	}
	return &EdPublicKey{key: key}, nil
}
