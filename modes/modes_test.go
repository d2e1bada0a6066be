package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
	) {
		if mode != ModeProduction {
			t.Fatal()
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		t2 *testing.T,
		mode Mode,
	) {
		if mode != ModeDevelopment {
			t.Fatal()
		}
		if t2 != t {
			t.Fatal()
		}
	})
}
