package goJOSE

import (
	"crypto"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"fmt"
)

// Algorithm defines a public type used by goJOSE APIs.
//
// Algorithm values are the stable JOSE identifiers (RFC 7518, RFC 8037) and
// are used verbatim in the JWT header "alg" field. The set is closed: the 14
// constants below are the only values the engine dispatches on.
type Algorithm string

const (
	// HS256 is an exported constant or variable used by the signing engine.
	HS256 Algorithm = "HS256"
	// HS384 is an exported constant or variable used by the signing engine.
	HS384 Algorithm = "HS384"
	// HS512 is an exported constant or variable used by the signing engine.
	HS512 Algorithm = "HS512"
	// RS256 is an exported constant or variable used by the signing engine.
	RS256 Algorithm = "RS256"
	// RS384 is an exported constant or variable used by the signing engine.
	RS384 Algorithm = "RS384"
	// RS512 is an exported constant or variable used by the signing engine.
	RS512 Algorithm = "RS512"
	// PS256 is an exported constant or variable used by the signing engine.
	PS256 Algorithm = "PS256"
	// PS384 is an exported constant or variable used by the signing engine.
	PS384 Algorithm = "PS384"
	// PS512 is an exported constant or variable used by the signing engine.
	PS512 Algorithm = "PS512"
	// ES256 is an exported constant or variable used by the signing engine.
	ES256 Algorithm = "ES256"
	// ES384 is an exported constant or variable used by the signing engine.
	ES384 Algorithm = "ES384"
	// ES512 is an exported constant or variable used by the signing engine.
	ES512 Algorithm = "ES512"
	// ES256K is an exported constant or variable used by the signing engine.
	ES256K Algorithm = "ES256K"
	// EdDSA is an exported constant or variable used by the signing engine.
	EdDSA Algorithm = "EdDSA"
)

// KeyFamily defines a public type used by goJOSE APIs.
//
// KeyFamily is the compatibility tag shared by an Algorithm and the
// KeyMaterial it may be used with. Sign and Verify refuse to touch key
// material whose family differs from the algorithm's.
type KeyFamily uint8

const (
	// FamilyUnknown is an exported constant or variable used by the signing engine.
	FamilyUnknown KeyFamily = iota
	// FamilySymmetric is an exported constant or variable used by the signing engine.
	FamilySymmetric
	// FamilyRSA is an exported constant or variable used by the signing engine.
	FamilyRSA
	// FamilyECP256 is an exported constant or variable used by the signing engine.
	FamilyECP256
	// FamilyECP384 is an exported constant or variable used by the signing engine.
	FamilyECP384
	// FamilyECP521 is an exported constant or variable used by the signing engine.
	FamilyECP521
	// FamilyECSecp256k1 is an exported constant or variable used by the signing engine.
	FamilyECSecp256k1
	// FamilyEd25519 is an exported constant or variable used by the signing engine.
	FamilyEd25519
)

// String returns a stable human-readable name for the family.
func (f KeyFamily) String() string {
	switch f {
	case FamilySymmetric:
		return "symmetric"
	case FamilyRSA:
		return "rsa"
	case FamilyECP256:
		return "ec-p256"
	case FamilyECP384:
		return "ec-p384"
	case FamilyECP521:
		return "ec-p521"
	case FamilyECSecp256k1:
		return "ec-secp256k1"
	case FamilyEd25519:
		return "ed25519"
	default:
		return "unknown"
	}
}

type signatureScheme uint8

const (
	schemeHMAC signatureScheme = iota
	schemePKCS1v15
	schemePSS
	schemeECDSA
	schemeEdDSA
)

// algorithmInfo is the registry descriptor: the fixed (hash, family, scheme)
// triple for one algorithm. sigSize is the exact signature length in bytes
// for fixed-width schemes and 0 where the length depends on the key (RSA).
type algorithmInfo struct {
	hash    crypto.Hash
	family  KeyFamily
	scheme  signatureScheme
	sigSize int
}

var algorithmTable = map[Algorithm]algorithmInfo{
	HS256:  {hash: crypto.SHA256, family: FamilySymmetric, scheme: schemeHMAC, sigSize: 32},
	HS384:  {hash: crypto.SHA384, family: FamilySymmetric, scheme: schemeHMAC, sigSize: 48},
	HS512:  {hash: crypto.SHA512, family: FamilySymmetric, scheme: schemeHMAC, sigSize: 64},
	RS256:  {hash: crypto.SHA256, family: FamilyRSA, scheme: schemePKCS1v15},
	RS384:  {hash: crypto.SHA384, family: FamilyRSA, scheme: schemePKCS1v15},
	RS512:  {hash: crypto.SHA512, family: FamilyRSA, scheme: schemePKCS1v15},
	PS256:  {hash: crypto.SHA256, family: FamilyRSA, scheme: schemePSS},
	PS384:  {hash: crypto.SHA384, family: FamilyRSA, scheme: schemePSS},
	PS512:  {hash: crypto.SHA512, family: FamilyRSA, scheme: schemePSS},
	ES256:  {hash: crypto.SHA256, family: FamilyECP256, scheme: schemeECDSA, sigSize: 64},
	ES384:  {hash: crypto.SHA384, family: FamilyECP384, scheme: schemeECDSA, sigSize: 96},
	ES512:  {hash: crypto.SHA512, family: FamilyECP521, scheme: schemeECDSA, sigSize: 132},
	ES256K: {hash: crypto.SHA256, family: FamilyECSecp256k1, scheme: schemeECDSA, sigSize: 64},
	EdDSA:  {hash: 0, family: FamilyEd25519, scheme: schemeEdDSA, sigSize: 64},
}

// algorithmOrder fixes the iteration order for Algorithms. Maps iterate
// randomly; tests and callers want a stable listing.
var algorithmOrder = []Algorithm{
	HS256, HS384, HS512,
	RS256, RS384, RS512,
	PS256, PS384, PS512,
	ES256, ES384, ES512,
	ES256K, EdDSA,
}

func algorithmInfoFor(alg Algorithm) (algorithmInfo, error) {
	info, ok := algorithmTable[alg]
	if !ok {
		return algorithmInfo{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(alg))
	}
	return info, nil
}

// Valid reports whether the algorithm is one of the 14 supported values.
func (a Algorithm) Valid() bool {
	_, ok := algorithmTable[a]
	return ok
}

// Family returns the key family the algorithm requires, or FamilyUnknown for
// an unsupported algorithm.
func (a Algorithm) Family() KeyFamily {
	return algorithmTable[a].family
}

// Hash returns the hash function the algorithm applies to the content before
// the signing transform. EdDSA returns 0: Ed25519 hashes internally and the
// engine never pre-hashes for it.
func (a Algorithm) Hash() crypto.Hash {
	return algorithmTable[a].hash
}

// ParseAlgorithm converts an untrusted identifier string into an Algorithm.
//
// ParseAlgorithm may return an error when input validation, dependency calls, or security checks fail.
func ParseAlgorithm(s string) (Algorithm, error) {
	alg := Algorithm(s)
	if !alg.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
	return alg, nil
}

// Algorithms returns the supported algorithms in a stable order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmOrder))
	copy(out, algorithmOrder)
	return out
}
