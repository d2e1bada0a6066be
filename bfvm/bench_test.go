package bfvm

import (
	"io"
	"testing"

	"github.com/reusee/bf/bflang"
)

func BenchmarkHelloWorld(b *testing.B) {
	prog, err := bflang.CompileString("bench", helloWorld)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for range b.N {
		vm := NewVM(prog, WithOutput(io.Discard))
		for _, err := range vm.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkTightLoop(b *testing.B) {
	prog, err := bflang.CompileString("bench", "++++++++[>++++++++<-]")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for range b.N {
		vm := NewVM(prog)
		for _, err := range vm.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
