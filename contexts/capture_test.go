package contexts

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pal/modes"
)

type testEditor struct {
	mode   string
	lines  []string
	start  Position
	end    Position
	visual bool
}

var _ EditorState = testEditor{}

func (e testEditor) Buffer() int      { return 7 }
func (e testEditor) BufType() string  { return "" }
func (e testEditor) Filetype() string { return "go" }
func (e testEditor) Mode() string     { return e.mode }
func (e testEditor) Cursor() Position { return Position{Line: 3, Col: 1} }

func (e testEditor) Selection() (Position, Position, []string, bool) {
	return e.start, e.end, e.lines, e.visual
}

func TestCaptureVisual(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
		func() EditorState {
			return testEditor{
				mode:   "v",
				lines:  []string{"func foo() {", "}"},
				start:  Position{Line: 5, Col: 1},
				end:    Position{Line: 4, Col: 2},
				visual: true,
			}
		},
	).Call(func(
		capture Capture,
	) {
		ctx := capture()
		if !ctx.IsVisual {
			t.Fatal()
		}
		if ctx.IsNormal {
			t.Fatal()
		}
		if ctx.Start.Line > ctx.End.Line {
			t.Fatalf("got %v > %v", ctx.Start.Line, ctx.End.Line)
		}
		if ctx.Buffer != 7 {
			t.Fatalf("got %v", ctx.Buffer)
		}
		expected := "```go\nfunc foo() {\n}\n```"
		if got := ctx.FencedSelection(); got != expected {
			t.Fatalf("got %q", got)
		}
	})
}

func TestCaptureNormal(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
		func() EditorState {
			return testEditor{
				mode: "n",
			}
		},
	).Call(func(
		capture Capture,
	) {
		ctx := capture()
		if ctx.IsVisual {
			t.Fatal()
		}
		if !ctx.IsNormal {
			t.Fatal()
		}
		if len(ctx.Lines) != 0 {
			t.Fatalf("got %v", ctx.Lines)
		}
	})
}
