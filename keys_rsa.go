package goJOSE

import (
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"math/big"
)

// RSAPrivateKey defines a public type used by goJOSE APIs.
//
// RSAPrivateKey instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RSAPrivateKey struct {
	key *rsa.PrivateKey
}

// RSAPublicKey defines a public type used by goJOSE APIs.
//
// RSAPublicKey instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RSAPublicKey struct {
	key *rsa.PublicKey
}

// Family returns FamilyRSA.
func (k *RSAPrivateKey) Family() KeyFamily { return FamilyRSA }

func (k *RSAPrivateKey) sealedKeyMaterial() {}

// Family returns FamilyRSA.
func (k *RSAPublicKey) Family() KeyFamily { return FamilyRSA }

func (k *RSAPublicKey) sealedKeyMaterial() {}

// RSAPrivateKeyFromPEM imports an RSA signing key from PKCS#1
// ("RSA PRIVATE KEY") or PKCS#8 ("PRIVATE KEY") PEM text. passphrase may be
// nil for unencrypted blocks.
//
// RSAPrivateKeyFromPEM may return an error when input validation, dependency calls, or security checks fail.
func RSAPrivateKeyFromPEM(pemText string, passphrase []byte) (*RSAPrivateKey, error) {
	block, der, err := decodePEMBlock(pemText, passphrase)
	if err != nil {
		return nil, err
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: PKCS#1 parse: %v", ErrInvalidKeyEncoding, err)
		}
		return &RSAPrivateKey{key: key}, nil
	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: PKCS#8 parse: %v", ErrInvalidKeyEncoding, err)
		}
		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: PKCS#8 block does not hold an RSA key", ErrInvalidKeyEncoding)
		}
		return &RSAPrivateKey{key: key}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block type %q", ErrInvalidKeyEncoding, block.Type)
	}
}

// RSAPublicKeyFromPEM imports an RSA verifying key from PKIX ("PUBLIC KEY")
// or PKCS#1 ("RSA PUBLIC KEY") PEM text.
//
// RSAPublicKeyFromPEM may return an error when input validation, dependency calls, or security checks fail.
func RSAPublicKeyFromPEM(pemText string) (*RSAPublicKey, error) {
	block, der, err := decodePEMBlock(pemText, nil)
	if err != nil {
		return nil, err
	}

	switch block.Type {
	case "PUBLIC KEY":
		parsed, err := x509.ParsePKIXPublicKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: PKIX parse: %v", ErrInvalidKeyEncoding, err)
		}
		key, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: PEM block does not hold an RSA public key", ErrInvalidKeyEncoding)
		}
		return &RSAPublicKey{key: key}, nil
	case "RSA PUBLIC KEY":
		key, err := x509.ParsePKCS1PublicKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: PKCS#1 public parse: %v", ErrInvalidKeyEncoding, err)
		}
		return &RSAPublicKey{key: key}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block type %q", ErrInvalidKeyEncoding, block.Type)
	}
}

// RSAComponents defines a public type used by goJOSE APIs.
//
// RSAComponents carries the numeric parts of an RSA key as big-endian byte
// strings, the shape JWK-style interchange uses. N and E are required; a
// private key additionally requires D, P, and Q. DP, DQ, and QInv are
// recomputed when omitted.
type RSAComponents struct {
	N    []byte
	E    []byte
	D    []byte
	P    []byte
	Q    []byte
	DP   []byte
	DQ   []byte
	QInv []byte
}

// RSAPublicKeyFromComponents assembles a verifying key from n and e.
//
// RSAPublicKeyFromComponents may return an error when input validation, dependency calls, or security checks fail.
func RSAPublicKeyFromComponents(n, e []byte) (*RSAPublicKey, error) {
	if len(n) == 0 || len(e) == 0 {
		return nil, fmt.Errorf("%w: RSA public key requires n and e", ErrInvalidKeyEncoding)
	}
	eInt := new(big.Int).SetBytes(e)
	if !eInt.IsInt64() || eInt.Int64() < 3 {
		return nil, fmt.Errorf("%w: invalid RSA exponent", ErrInvalidKeyEncoding)
	}
	return &RSAPublicKey{key: &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(eInt.Int64()),
	}}, nil
}

// RSAPrivateKeyFromComponents assembles a signing key from its numeric parts
// and validates the result before returning it.
//
// RSAPrivateKeyFromComponents may return an error when input validation, dependency calls, or security checks fail.
func RSAPrivateKeyFromComponents(c RSAComponents) (*RSAPrivateKey, error) {
	pub, err := RSAPublicKeyFromComponents(c.N, c.E)
	if err != nil {
		return nil, err
	}
	if len(c.D) == 0 || len(c.P) == 0 || len(c.Q) == 0 {
		return nil, fmt.Errorf("%w: RSA private key requires d, p, and q", ErrInvalidKeyEncoding)
	}

	key := &rsa.PrivateKey{
		PublicKey: *pub.key,
		D:         new(big.Int).SetBytes(c.D),
		Primes: []*big.Int{
			new(big.Int).SetBytes(c.P),
			new(big.Int).SetBytes(c.Q),
		},
	}
	if len(c.DP) > 0 && len(c.DQ) > 0 && len(c.QInv) > 0 {
		key.Precomputed.Dp = new(big.Int).SetBytes(c.DP)
		key.Precomputed.Dq = new(big.Int).SetBytes(c.DQ)
		key.Precomputed.Qinv = new(big.Int).SetBytes(c.QInv)
	}
	key.Precompute()
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: RSA component validation: %v", ErrInvalidKeyEncoding, err)
	}
	return &RSAPrivateKey{key: key}, nil
}
