package contexts

import "slices"

// EditorState is the host editor surface the snapshot is taken from.
type EditorState interface {
	Buffer() int
	BufType() string
	Filetype() string
	Mode() string
	Cursor() Position
	// Selection reports the visual selection. visual is false outside of
	// visual mode, in which case the other return values are ignored.
	Selection() (start, end Position, lines []string, visual bool)
}

type Capture func() Context

func (Module) Capture(
	editor EditorState,
) Capture {
	return func() Context {
		mode := editor.Mode()

		ret := Context{
			Buffer:   editor.Buffer(),
			BufType:  editor.BufType(),
			Filetype: editor.Filetype(),
			Mode:     mode,
			Cursor:   editor.Cursor(),
			IsNormal: mode == "n",
			IsVisual: mode == "v" || mode == "V" || mode == "\x16",
		}

		start, end, lines, visual := editor.Selection()
		if !visual {
			ret.IsVisual = false
			return ret
		}
		if end.Line < start.Line {
			start, end = end, start
		}
		ret.Start = start
		ret.End = end
		ret.Lines = slices.Clone(lines)
		return ret
	}
}
