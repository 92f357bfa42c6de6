package codec

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	goJOSE "github.com/MrEthical07/goJOSE"
)

func TestBase64URLRoundTrip(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		[]byte("hello"),
		bytes.Repeat([]byte{0xFF}, 257),
		{0xfb, 0xff, 0xfe}, // encodes to -, _ alphabet characters
	}

	for _, in := range inputs {
		encoded := Base64URLEncode(in)
		if bytes.ContainsAny([]byte(encoded), "=+/") {
			t.Fatalf("encoded form %q not unpadded base64url", encoded)
		}
		decoded, err := Base64URLDecode(encoded)
		if err != nil {
			t.Fatalf("decode %q: %v", encoded, err)
		}
		if !bytes.Equal(decoded, in) {
			t.Fatalf("round trip mismatch: %x != %x", decoded, in)
		}
	}
}

func TestBase64URLDecodeRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"aGVsbG8=",  // padded
		"aGVs bG8",  // whitespace
		"aGVs\nbG8", // newline
		"aGVsbG8+",  // standard alphabet plus
		"aGVsbG8/",  // standard alphabet slash
		"a",         // impossible length
		"ab=c",      // interior padding
	}

	for _, in := range cases {
		if _, err := Base64URLDecode(in); !errors.Is(err, goJOSE.ErrBase64Decode) {
			t.Fatalf("decode %q: expected ErrBase64Decode, got %v", in, err)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := map[string]any{
		"sub":    "user-1",
		"admin":  true,
		"weight": 1.5,
		"tags":   []any{"a", "b"},
		"nested": map[string]any{"k": "v"},
	}

	data, err := MarshalJSON(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := UnmarshalJSON(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", decoded, original)
	}
}

func TestUnmarshalJSONRejectsMalformedInput(t *testing.T) {
	var v map[string]any
	for _, in := range []string{"", "{", `{"a":}`, "[1,2", `{"a":1}trailing`} {
		if err := UnmarshalJSON([]byte(in), &v); !errors.Is(err, goJOSE.ErrJSONParse) {
			t.Fatalf("unmarshal %q: expected ErrJSONParse, got %v", in, err)
		}
	}
}

func TestMarshalCanonicalIsDeterministic(t *testing.T) {
	value := map[string]any{"zeta": 1, "alpha": 2, "mid": map[string]any{"b": 1, "a": 2}}

	first, err := MarshalCanonical(value)
	if err != nil {
		t.Fatalf("canonical marshal: %v", err)
	}
	if string(first) != `{"alpha":2,"mid":{"a":2,"b":1},"zeta":1}` {
		t.Fatalf("unexpected canonical form: %s", first)
	}

	for i := 0; i < 16; i++ {
		again, err := MarshalCanonical(value)
		if err != nil {
			t.Fatalf("canonical marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("canonical form unstable: %s != %s", first, again)
		}
	}
}

func TestMarshalJSONRejectsUnencodableValue(t *testing.T) {
	if _, err := MarshalJSON(map[string]any{"ch": make(chan int)}); !errors.Is(err, goJOSE.ErrJSONParse) {
		t.Fatalf("expected ErrJSONParse, got %v", err)
	}
}
