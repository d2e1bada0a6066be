package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	// flag beats config
	if v := FirstNonZero(30000, 1024); v != 30000 {
		t.Fatalf("got %d", v)
	}
	// flag unset
	if v := FirstNonZero(0, 1024); v != 1024 {
		t.Fatalf("got %d", v)
	}
	if v := FirstNonZero("", "", "unchanged"); v != "unchanged" {
		t.Fatalf("got %q", v)
	}
	if v := FirstNonZero(0, 0); v != 0 {
		t.Fatalf("got %d", v)
	}
}

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y", "1"} {
		if !StrToBool(str) {
			t.Fatalf("%q should be true", str)
		}
	}
	for _, str := range []string{"false", "no", "0", ""} {
		if StrToBool(str) {
			t.Fatalf("%q should be false", str)
		}
	}
}
