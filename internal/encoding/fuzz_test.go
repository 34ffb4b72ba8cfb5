package encoding

import (
	"testing"
)

func FuzzParseFieldHex(f *testing.F) {
	f.Add("0x0000000000000000000000000000000000000000000000000000000000000001")
	f.Add("0x")
	f.Add("0xzz")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		l, err := ParseFieldHex(s)
		if err != nil {
			return
		}
		// Anything accepted must re-encode to the same string.
		if got := FieldHex(l); got != s {
			t.Fatalf("FieldHex(ParseFieldHex(%q)) = %q", s, got)
		}
	})
}

func FuzzParseUint128(f *testing.F) {
	f.Add("0x00000000000000000000000000000001")
	f.Add("0xffffffffffffffffffffffffffffffff")
	f.Add("1")

	f.Fuzz(func(t *testing.T, s string) {
		u, err := ParseUint128(s)
		if err != nil {
			return
		}
		if got := u.Hex(); got != s {
			t.Fatalf("Hex(ParseUint128(%q)) = %q", s, got)
		}
	})
}
