package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/modes"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("tape", "size", 32768)
	})
	if !strings.Contains(buf.String(), "size=32768") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
		logger Logger,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx, "outer")
		ctx2, span2 := newSpan(ctx1, "inner")
		logger.InfoContext(ctx2, "step")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %q", buf.String())
		}
		if !strings.Contains(lines[0], "run="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "run="+string(span2)) ||
			!strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "run="+string(span2)) {
			t.Fatalf("got %v", lines[2])
		}

		err := WrapSpan(ctx2, errors.New("boom"))
		if !strings.Contains(err.Error(), string(span2)) {
			t.Fatalf("got %v", err)
		}
		if WrapSpan(ctx2, nil) != nil {
			t.Fatal("should be nil")
		}
	})
}
