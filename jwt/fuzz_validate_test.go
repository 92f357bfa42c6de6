package jwt

import (
	"errors"
	"strings"
	"testing"

	goJOSE "github.com/MrEthical07/goJOSE"
	"github.com/MrEthical07/goJOSE/codec"
)

// FuzzValidateToken hammers the parser with arbitrary compact-form input.
// The engine must never panic, and the only tokens it may accept are the
// genuinely signed ones.
func FuzzValidateToken(f *testing.F) {
	key, err := goJOSE.NewSymmetricKey([]byte("fuzz-secret"))
	if err != nil {
		f.Fatalf("symmetric key: %v", err)
	}

	genuine := New(Header{Alg: goJOSE.HS256, Typ: "JWT"}, Payload{"sub": "fuzz"})
	if err := genuine.Sign(key); err != nil {
		f.Fatalf("sign: %v", err)
	}
	compact, err := genuine.Token()
	if err != nil {
		f.Fatalf("token: %v", err)
	}
	parts := strings.Split(compact, ".")

	f.Add(compact)
	f.Add("")
	f.Add("...")
	f.Add("a.b.c")
	f.Add(parts[0] + "." + parts[1] + ".")
	f.Add(parts[0] + "." + parts[1] + "." + parts[2] + "=")
	f.Add(codec.Base64URLEncode([]byte(`{"alg":"none"}`)) + "." + parts[1] + "." + parts[2])
	f.Add(strings.Repeat(".", 100))
	f.Add("\x00\x01\x02.\xff\xfe.\x00")

	f.Fuzz(func(t *testing.T, token string) {
		claims, err := ValidateToken(token, key)
		if err != nil {
			if claims != nil {
				t.Fatalf("claims returned alongside error %v", err)
			}
			return
		}

		// Acceptance must mean the token carries a real signature over
		// exactly these bytes; re-verify from scratch to be sure.
		segs := strings.Split(token, ".")
		if len(segs) != 3 {
			t.Fatalf("accepted token with %d segments", len(segs))
		}
		header, _, decErr := DecodeInsecure(token)
		if decErr != nil {
			t.Fatalf("accepted token that DecodeInsecure rejects: %v", decErr)
		}
		sig, decErr := codec.Base64URLDecode(segs[2])
		if decErr != nil {
			t.Fatalf("accepted token with undecodable signature: %v", decErr)
		}
		ok, verErr := goJOSE.Verify([]byte(segs[0]+"."+segs[1]), sig, key, header.Alg)
		if verErr != nil || !ok {
			t.Fatalf("accepted token fails re-verification: ok=%v err=%v", ok, verErr)
		}
	})
}

// FuzzDecodeInsecure checks the unverified decode path for panics and for
// consistency with the validating path.
func FuzzDecodeInsecure(f *testing.F) {
	f.Add("eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJmdXp6In0.c2ln")
	f.Add("")
	f.Add("..")
	f.Add("x.y.z")

	f.Fuzz(func(t *testing.T, token string) {
		_, _, err := DecodeInsecure(token)
		if err == nil {
			return
		}
		if !errors.Is(err, goJOSE.ErrMalformedToken) &&
			!errors.Is(err, goJOSE.ErrBase64Decode) &&
			!errors.Is(err, goJOSE.ErrJSONParse) {
			t.Fatalf("error outside the decode taxonomy: %v", err)
		}
	})
}
