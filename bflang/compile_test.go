package bflang

import (
	"errors"
	"strings"
	"testing"
)

func TestCompile(t *testing.T) {
	prog, err := CompileString("test", "+[-]")
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Code) != 4 {
		t.Fatalf("got %d ops", len(prog.Code))
	}
	if prog.Jumps[1] != 3 || prog.Jumps[3] != 1 {
		t.Fatalf("got %v", prog.Jumps)
	}
	if prog.String() != "+[-]" {
		t.Fatalf("got %q", prog.String())
	}
}

func TestCompileComments(t *testing.T) {
	prog, err := CompileString("test", "inc: + then dec: -\n")
	if err != nil {
		t.Fatal(err)
	}
	if prog.String() != "+-" {
		t.Fatalf("got %q", prog.String())
	}
}

func TestCompileReader(t *testing.T) {
	prog, err := Compile("test", strings.NewReader("><+-.,[]"))
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Code) != 8 {
		t.Fatalf("got %d ops", len(prog.Code))
	}
}

func TestUnmatchedOpen(t *testing.T) {
	_, err := CompileString("test", "[")
	if err == nil {
		t.Fatal("should error")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("got %v", err)
	}
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("got %T", err)
	}
	if posErr.Pos.Line != 1 || posErr.Pos.Column != 1 {
		t.Fatalf("got %+v", posErr.Pos)
	}
}

func TestUnmatchedClose(t *testing.T) {
	_, err := CompileString("test", "]")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("got %v", err)
	}
}

func TestUnmatchedNested(t *testing.T) {
	_, err := CompileString("test", "[[]")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("got %v", err)
	}

	_, err = CompileString("test", "[]]")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("got %v", err)
	}
}

func TestErrorRendering(t *testing.T) {
	_, err := CompileString("test", "comment\n++]")
	if err == nil {
		t.Fatal("should error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "test:2:3") {
		t.Fatalf("got %q", msg)
	}
	if !strings.Contains(msg, "++]") {
		t.Fatalf("got %q", msg)
	}
	if !strings.Contains(msg, "  ^") {
		t.Fatalf("got %q", msg)
	}
}

func TestJumpSymmetry(t *testing.T) {
	for _, src := range []string{
		"[]",
		"[[]]",
		"[[][]]",
		"+[>[<-]>[[]]]",
		"[][][]",
	} {
		prog := MustCompile(src)
		for i, op := range prog.Code {
			switch op {
			case OpLoopStart, OpLoopEnd:
				j := prog.Jumps[i]
				if j < 0 || prog.Jumps[j] != i {
					t.Fatalf("%s: asymmetric jump at %d: %v", src, i, prog.Jumps)
				}
			default:
				if prog.Jumps[i] != -1 {
					t.Fatalf("%s: non-bracket jump at %d", src, i)
				}
			}
		}
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	MustCompile("[")
}
