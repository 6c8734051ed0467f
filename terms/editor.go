package terms

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/pal/cmds"
	"github.com/reusee/pal/contexts"
)

var (
	fileFlag      = cmds.Var[string]("-file")
	startLineFlag = cmds.Var[int]("-start-line")
	endLineFlag   = cmds.Var[int]("-end-line")
)

// termEditor derives an editor state from the command line: -file names the
// buffer, -start-line and -end-line select a 1-based line range which puts
// the state in visual line mode.
type termEditor struct {
	path  string
	lines []string
	start int
	end   int
}

var _ contexts.EditorState = termEditor{}

func (Module) EditorState() contexts.EditorState {
	editor := termEditor{
		path:  *fileFlag,
		start: *startLineFlag,
		end:   *endLineFlag,
	}
	if editor.path != "" {
		content, err := os.ReadFile(editor.path)
		if err != nil {
			panic(err)
		}
		editor.lines = strings.Split(
			strings.TrimSuffix(string(content), "\n"),
			"\n",
		)
	}
	return editor
}

func (termEditor) Buffer() int {
	return 1
}

func (termEditor) BufType() string {
	return ""
}

func (e termEditor) Filetype() string {
	switch ext := filepath.Ext(e.path); ext {
	case ".go":
		return "go"
	case ".py":
		return "python"
	case ".rs":
		return "rust"
	case ".js":
		return "javascript"
	case ".ts":
		return "typescript"
	case ".lua":
		return "lua"
	case ".md":
		return "markdown"
	case "":
		return ""
	default:
		return strings.TrimPrefix(ext, ".")
	}
}

func (e termEditor) Mode() string {
	if e.start > 0 {
		return "V"
	}
	return "n"
}

func (e termEditor) Cursor() contexts.Position {
	return contexts.Position{Line: max(e.start, 1), Col: 1}
}

func (e termEditor) Selection() (start, end contexts.Position, lines []string, visual bool) {
	if e.start <= 0 || len(e.lines) == 0 {
		return
	}
	// clamp both bounds into the buffer
	first := min(max(e.start, 1), len(e.lines))
	last := e.end
	if last <= 0 {
		last = first
	}
	last = min(max(last, 1), len(e.lines))
	if first > last {
		first, last = last, first
	}
	start = contexts.Position{Line: first, Col: 1}
	end = contexts.Position{Line: last, Col: 1}
	lines = e.lines[first-1 : last]
	return start, end, lines, true
}
