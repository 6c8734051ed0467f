package terms

import (
	"context"
	"fmt"

	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/hosts"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/renders"
	"github.com/reusee/pal/strategies"
)

// termInlineEditor has no buffer to rewrite, so it emits the rewrite
// request itself.
type termInlineEditor struct {
	output Output
	logger logs.Logger
}

var _ strategies.InlineEditor = termInlineEditor{}

func (Module) InlineEditor(
	output Output,
	logger logs.Logger,
) strategies.InlineEditor {
	return termInlineEditor{
		output: output,
		logger: logger,
	}
}

func (e termInlineEditor) Apply(
	ctx context.Context,
	prompts []renders.Rendered,
	placement string,
	adapter *actions.Adapter,
	handle hosts.Handle,
) error {
	e.logger.DebugContext(ctx, "inline rewrite request",
		"placement", placement,
	)
	fmt.Fprintf(e.output, "[inline rewrite, placement=%s]\n", placement)
	fmt.Fprint(e.output, formatTranscript(prompts))
	return nil
}
