package goJOSE

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/asn1"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ECPrivateKey defines a public type used by goJOSE APIs.
//
// ECPrivateKey instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// The curve is fixed at import time and decides the family tag: P-256,
// P-384, and P-521 serve ES256/ES384/ES512, secp256k1 serves ES256K.
type ECPrivateKey struct {
	family KeyFamily
	key    *ecdsa.PrivateKey
}

// ECPublicKey defines a public type used by goJOSE APIs.
//
// ECPublicKey instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ECPublicKey struct {
	family KeyFamily
	key    *ecdsa.PublicKey
}

// Family returns the curve-specific EC family tag.
func (k *ECPrivateKey) Family() KeyFamily { return k.family }

func (k *ECPrivateKey) sealedKeyMaterial() {}

// PublicKey returns the verifying half of the key pair.
func (k *ECPrivateKey) PublicKey() *ECPublicKey {
	return &ECPublicKey{family: k.family, key: &k.key.PublicKey}
}

// Family returns the curve-specific EC family tag.
func (k *ECPublicKey) Family() KeyFamily { return k.family }

func (k *ECPublicKey) sealedKeyMaterial() {}

var (
	oidNamedCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
	oidPublicKeyECDSA      = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
)

// sec1ECPrivateKey mirrors the SEC 1 ASN.1 layout. The standard library
// refuses curves it does not know, so secp256k1 keys are unwrapped here.
type sec1ECPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

// pkixPublicKey mirrors the SubjectPublicKeyInfo layout for EC keys.
type pkixPublicKey struct {
	Algo      pkixAlgorithmIdentifier
	BitString asn1.BitString
}

type pkixAlgorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.ObjectIdentifier `asn1:"optional"`
}

func curveForFamily(f KeyFamily) (elliptic.Curve, error) {
	switch f {
	case FamilyECP256:
		return elliptic.P256(), nil
	case FamilyECP384:
		return elliptic.P384(), nil
	case FamilyECP521:
		return elliptic.P521(), nil
	case FamilyECSecp256k1:
		return secp256k1.S256(), nil
	default:
		return nil, fmt.Errorf("%w: %s is not an EC family", ErrInvalidKeyEncoding, f)
	}
}

func familyForCurve(c elliptic.Curve) KeyFamily {
	switch {
	case c == elliptic.P256():
		return FamilyECP256
	case c == elliptic.P384():
		return FamilyECP384
	case c == elliptic.P521():
		return FamilyECP521
	case c.Params().Name == "secp256k1":
		return FamilyECSecp256k1
	default:
		return FamilyUnknown
	}
}

// scalarSizeForFamily is the byte width of a private scalar (and of one half
// of an r||s signature) on the family's curve.
func scalarSizeForFamily(f KeyFamily) int {
	switch f {
	case FamilyECP256, FamilyECSecp256k1:
		return 32
	case FamilyECP384:
		return 48
	case FamilyECP521:
		return 66
	default:
		return 0
	}
}

// ECPrivateKeyFromPEM imports an EC signing key from SEC 1
// ("EC PRIVATE KEY") or PKCS#8 ("PRIVATE KEY") PEM text, including SEC 1
// secp256k1 keys the standard library cannot parse. passphrase may be nil
// for unencrypted blocks.
//
// ECPrivateKeyFromPEM may return an error when input validation, dependency calls, or security checks fail.
func ECPrivateKeyFromPEM(pemText string, passphrase []byte) (*ECPrivateKey, error) {
	block, der, err := decodePEMBlock(pemText, passphrase)
	if err != nil {
		return nil, err
	}

	switch block.Type {
	case "EC PRIVATE KEY":
		if key, err := x509.ParseECPrivateKey(der); err == nil {
			family := familyForCurve(key.Curve)
			if family == FamilyUnknown {
				return nil, fmt.Errorf("%w: unsupported EC curve", ErrInvalidKeyEncoding)
			}
			return &ECPrivateKey{family: family, key: key}, nil
		}
		return secp256k1PrivateKeyFromSEC1(der)
	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: PKCS#8 parse: %v", ErrInvalidKeyEncoding, err)
		}
		key, ok := parsed.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: PKCS#8 block does not hold an EC key", ErrInvalidKeyEncoding)
		}
		family := familyForCurve(key.Curve)
		if family == FamilyUnknown {
			return nil, fmt.Errorf("%w: unsupported EC curve", ErrInvalidKeyEncoding)
		}
		return &ECPrivateKey{family: family, key: key}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block type %q", ErrInvalidKeyEncoding, block.Type)
	}
}

func secp256k1PrivateKeyFromSEC1(der []byte) (*ECPrivateKey, error) {
	var sec1 sec1ECPrivateKey
	if _, err := asn1.Unmarshal(der, &sec1); err != nil {
		return nil, fmt.Errorf("%w: SEC 1 parse: %v", ErrInvalidKeyEncoding, err)
	}
	if sec1.Version != 1 {
		return nil, fmt.Errorf("%w: SEC 1 version %d", ErrInvalidKeyEncoding, sec1.Version)
	}
	if !sec1.NamedCurveOID.Equal(oidNamedCurveSecp256k1) {
		return nil, fmt.Errorf("%w: unsupported EC curve", ErrInvalidKeyEncoding)
	}
	return ECPrivateKeyFromBytes(FamilyECSecp256k1, sec1.PrivateKey)
}

// ECPrivateKeyFromBytes imports an EC signing key from a raw big-endian
// scalar sized to the family's curve.
//
// ECPrivateKeyFromBytes may return an error when input validation, dependency calls, or security checks fail.
func ECPrivateKeyFromBytes(family KeyFamily, scalar []byte) (*ECPrivateKey, error) {
	curve, err := curveForFamily(family)
	if err != nil {
		return nil, err
	}
	if len(scalar) != scalarSizeForFamily(family) {
		return nil, fmt.Errorf("%w: scalar must be %d bytes for %s, got %d",
			ErrInvalidKeyEncoding, scalarSizeForFamily(family), family, len(scalar))
	}

	d := new(big.Int).SetBytes(scalar)
	if d.Sign() == 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, fmt.Errorf("%w: scalar out of range for %s", ErrInvalidKeyEncoding, family)
	}

	key := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve},
		D:         d,
	}
	key.PublicKey.X, key.PublicKey.Y = curve.ScalarBaseMult(scalar)
	return &ECPrivateKey{family: family, key: key}, nil
}

// ECPublicKeyFromPEM imports an EC verifying key from PKIX ("PUBLIC KEY")
// PEM text, including secp256k1 SubjectPublicKeyInfo.
//
// ECPublicKeyFromPEM may return an error when input validation, dependency calls, or security checks fail.
func ECPublicKeyFromPEM(pemText string) (*ECPublicKey, error) {
	block, der, err := decodePEMBlock(pemText, nil)
	if err != nil {
		return nil, err
	}
	if block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("%w: unexpected PEM block type %q", ErrInvalidKeyEncoding, block.Type)
	}

	if parsed, err := x509.ParsePKIXPublicKey(der); err == nil {
		key, ok := parsed.(*ecdsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: PEM block does not hold an EC public key", ErrInvalidKeyEncoding)
		}
		family := familyForCurve(key.Curve)
		if family == FamilyUnknown {
			return nil, fmt.Errorf("%w: unsupported EC curve", ErrInvalidKeyEncoding)
		}
		return &ECPublicKey{family: family, key: key}, nil
	}

	var spki pkixPublicKey
	if _, err := asn1.Unmarshal(der, &spki); err != nil {
		return nil, fmt.Errorf("%w: SubjectPublicKeyInfo parse: %v", ErrInvalidKeyEncoding, err)
	}
	if !spki.Algo.Algorithm.Equal(oidPublicKeyECDSA) || !spki.Algo.Parameters.Equal(oidNamedCurveSecp256k1) {
		return nil, fmt.Errorf("%w: unsupported public key algorithm", ErrInvalidKeyEncoding)
	}
	return ECPublicKeyFromBytes(FamilyECSecp256k1, spki.BitString.RightAlign())
}

// ECPublicKeyFromBytes imports an EC verifying key from a SEC 1 point
// encoding (compressed or uncompressed).
//
// ECPublicKeyFromBytes may return an error when input validation, dependency calls, or security checks fail.
func ECPublicKeyFromBytes(family KeyFamily, point []byte) (*ECPublicKey, error) {
	curve, err := curveForFamily(family)
	if err != nil {
		return nil, err
	}
	if len(point) == 0 {
		return nil, fmt.Errorf("%w: empty EC point", ErrInvalidKeyEncoding)
	}

	if family == FamilyECSecp256k1 {
		pub, err := secp256k1.ParsePubKey(point)
		if err != nil {
			return nil, fmt.Errorf("%w: secp256k1 point: %v", ErrInvalidKeyEncoding, err)
		}
		return &ECPublicKey{family: family, key: pub.ToECDSA()}, nil
	}

	var x, y *big.Int
	switch point[0] {
	case 0x04:
		x, y = elliptic.Unmarshal(curve, point)
	case 0x02, 0x03:
		x, y = elliptic.UnmarshalCompressed(curve, point)
	default:
		return nil, fmt.Errorf("%w: unrecognized EC point encoding", ErrInvalidKeyEncoding)
	}
	if x == nil {
		return nil, fmt.Errorf("%w: EC point not on %s", ErrInvalidKeyEncoding, family)
	}
	return &ECPublicKey{family: family, key: &ecdsa.PublicKey{Curve: curve, X: x, Y: y}}, nil
}
