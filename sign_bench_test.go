package goJOSE

import (
	"crypto/rand"
	"testing"
)

func benchmarkSign(b *testing.B, alg Algorithm) {
	signKey := benchKey(b, alg)
	content := make([]byte, 1024)
	if _, err := rand.Read(content); err != nil {
		b.Fatalf("rand: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sign(content, signKey, alg); err != nil {
			b.Fatalf("sign: %v", err)
		}
	}
}

func benchmarkVerify(b *testing.B, alg Algorithm) {
	signKey := benchKey(b, alg)
	content := make([]byte, 1024)
	if _, err := rand.Read(content); err != nil {
		b.Fatalf("rand: %v", err)
	}
	sig, err := Sign(content, signKey, alg)
	if err != nil {
		b.Fatalf("sign: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := Verify(content, sig, signKey, alg)
		if err != nil || !ok {
			b.Fatalf("verify: ok=%v err=%v", ok, err)
		}
	}
}

func benchKey(b *testing.B, alg Algorithm) KeyMaterial {
	b.Helper()
	signKey, _ := testKeyPair(b, alg)
	return signKey
}

func BenchmarkSignHS256(b *testing.B)   { benchmarkSign(b, HS256) }
func BenchmarkSignRS256(b *testing.B)   { benchmarkSign(b, RS256) }
func BenchmarkSignPS256(b *testing.B)   { benchmarkSign(b, PS256) }
func BenchmarkSignES256(b *testing.B)   { benchmarkSign(b, ES256) }
func BenchmarkSignES256K(b *testing.B)  { benchmarkSign(b, ES256K) }
func BenchmarkSignEdDSA(b *testing.B)   { benchmarkSign(b, EdDSA) }
func BenchmarkVerifyHS256(b *testing.B) { benchmarkVerify(b, HS256) }
func BenchmarkVerifyRS256(b *testing.B) { benchmarkVerify(b, RS256) }
func BenchmarkVerifyES256(b *testing.B) { benchmarkVerify(b, ES256) }
func BenchmarkVerifyEdDSA(b *testing.B) { benchmarkVerify(b, EdDSA) }
