package logs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx, root := newSpan(context.Background(), "")
		ctx, child := newSpan(ctx, "")
		_, third := newSpan(ctx, root)

		lines := strings.Split(buf.String(), "\n")
		for i, span := range []Span{root, child, third} {
			if !strings.Contains(lines[i], "span="+string(span)) {
				t.Fatalf("line %d: got %v", i, lines[i])
			}
		}
		// implicit parent
		if !strings.Contains(lines[1], "parent="+string(root)) {
			t.Fatalf("got %v", lines[1])
		}
		// explicit parent, creator recorded separately
		if !strings.Contains(lines[2], "parent="+string(root)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[2], "creator="+string(child)) {
			t.Fatalf("got %v", lines[2])
		}
	})
}
