package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("compile", "name", "stdin")
		out := buf.String()
		if !strings.Contains(out, "msg=compile") {
			t.Fatalf("got %q", out)
		}
		if !strings.Contains(out, "name=stdin") {
			t.Fatalf("got %q", out)
		}
	})
}

func TestJournalKey(t *testing.T) {
	if k := journalKey("tape.cells"); k != "TAPE_CELLS" {
		t.Fatalf("got %q", k)
	}
	if k := journalKey("steps"); k != "STEPS" {
		t.Fatalf("got %q", k)
	}
}
