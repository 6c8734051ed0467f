package contexts

import "strings"

type Position struct {
	Line int
	Col  int
}

// Context is a read-only snapshot of the editor at the moment an action is
// invoked. All prompt conditions and content functions of one dispatch see
// the same snapshot.
type Context struct {
	Buffer   int
	BufType  string
	Cursor   Position
	Start    Position
	End      Position
	Filetype string
	Mode     string
	IsNormal bool
	IsVisual bool
	Lines    []string
}

func (c Context) Selection() string {
	return strings.Join(c.Lines, "\n")
}

// FencedSelection wraps the selected lines in a code fence annotated with the
// buffer's filetype, for embedding into prompt text.
func (c Context) FencedSelection() string {
	var b strings.Builder
	b.WriteString("```")
	b.WriteString(c.Filetype)
	b.WriteString("\n")
	for _, line := range c.Lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("```")
	return b.String()
}
