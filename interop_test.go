package goJOSE

import (
	"testing"

	gjwt "github.com/golang-jwt/jwt/v5"
)

// Raw-signature interop against golang-jwt: both directions, per scheme.
// The signing input is an arbitrary string; compact-token interop lives in
// the jwt package tests.
func TestRawSignatureInteropWithGolangJWT(t *testing.T) {
	const signingInput = "eyJhbGciOiJYWFgifQ.eyJzdWIiOiJpbnRlcm9wIn0"

	cases := []Algorithm{HS256, HS512, RS256, RS512, PS256, ES256, ES384, ES512, EdDSA}

	for _, alg := range cases {
		t.Run(string(alg), func(t *testing.T) {
			signKey, _ := testKeyPair(t, alg)
			method := gjwt.GetSigningMethod(string(alg))
			if method == nil {
				t.Fatalf("golang-jwt does not know %s", alg)
			}

			theirSignKey, theirVerifyKey := golangJWTKeys(t, signKey)

			ours, err := Sign([]byte(signingInput), signKey, alg)
			if err != nil {
				t.Fatalf("sign: %v", err)
			}
			if err := method.Verify(signingInput, ours, theirVerifyKey); err != nil {
				t.Fatalf("golang-jwt rejected our %s signature: %v", alg, err)
			}

			theirs, err := method.Sign(signingInput, theirSignKey)
			if err != nil {
				t.Fatalf("golang-jwt sign: %v", err)
			}
			ok, err := Verify([]byte(signingInput), theirs, signKey, alg)
			if err != nil {
				t.Fatalf("verify golang-jwt signature: %v", err)
			}
			if !ok {
				t.Fatalf("rejected a valid golang-jwt %s signature", alg)
			}
		})
	}
}

// golangJWTKeys unwraps our key material into the native types golang-jwt
// expects.
func golangJWTKeys(t *testing.T, key KeyMaterial) (signKey, verifyKey any) {
	t.Helper()
	switch k := key.(type) {
	case *SymmetricKey:
		return k.secret, k.secret
	case *RSAPrivateKey:
		return k.key, &k.key.PublicKey
	case *ECPrivateKey:
		return k.key, &k.key.PublicKey
	case *EdPrivateKey:
		return k.key, k.key.Public()
	default:
		t.Fatalf("no native form for %T", key)
		return nil, nil
	}
}
