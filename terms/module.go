// Package terms implements the host ports on a plain terminal: huh forms
// for picking and confirming, stdout for chat output, sqlite for saved
// chats.
package terms

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/storages"
)

type Module struct {
	dscope.Module
	Logs     logs.Module
	Storages storages.Module
}

// Output is where chat transcripts and notices go. Overridable in a fork.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
