package actions

import (
	"fmt"

	"github.com/reusee/pal/contexts"
)

// Content is either a literal string or a function of the context snapshot.
type Content interface {
	isContent()
}

type Literal string

func (Literal) isContent() {}

type Computed func(ctx contexts.Context) (string, error)

func (Computed) isContent() {}

// ResolveContent produces the prompt text. A failing content function is a
// hard error: missing content cannot be defaulted without corrupting the
// conversation.
func ResolveContent(content Content, ctx contexts.Context) (text string, err error) {
	switch content := content.(type) {

	case Literal:
		return string(content), nil

	case Computed:
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("content function panicked: %v", p)
			}
		}()
		return content(ctx)

	case nil:
		return "", fmt.Errorf("no content")

	}
	return "", fmt.Errorf("unknown content type: %T", content)
}
