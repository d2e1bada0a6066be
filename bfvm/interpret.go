package bfvm

import (
	"strings"

	"github.com/reusee/bf/bflang"
)

// Interpret compiles and runs source, returning everything the program
// wrote. Each call owns a fresh tape and pointers.
func Interpret(source string, options ...Option) (string, error) {
	prog, err := bflang.CompileString("interpret", source)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	vm := NewVM(prog, append([]Option{WithOutput(&out)}, options...)...)
	for _, err := range vm.Run {
		if err != nil {
			return out.String(), err
		}
	}

	return out.String(), nil
}
