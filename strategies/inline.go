package strategies

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/hosts"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/renders"
)

// InlineEditor is the host surface that applies a rewrite directly to a
// buffer. placement tells it where the output lands ("replace", "before",
// "after", "new"); handle may carry a target buffer from the pre-hook.
type InlineEditor interface {
	Apply(
		ctx context.Context,
		prompts []renders.Rendered,
		placement string,
		adapter *actions.Adapter,
		handle hosts.Handle,
	) error
}

type StrategyInline struct {
	InlineEditor dscope.Inject[InlineEditor]
	Logger       dscope.Inject[logs.Logger]
}

var _ Strategy = StrategyInline{}

func (Module) StrategyInline(
	inject dscope.InjectStruct,
) (ret StrategyInline) {
	inject(&ret)
	return
}

func (s StrategyInline) Name() string {
	return "inline"
}

func (s StrategyInline) Invoke(
	ctx context.Context,
	prompts []renders.Rendered,
	opts actions.Opts,
	handle hosts.Handle,
) error {
	placement := opts.Placement
	if placement == "" {
		placement = "replace"
	}
	s.Logger().DebugContext(ctx, "inline rewrite",
		"placement", placement,
	)
	return s.InlineEditor().Apply(ctx, prompts, placement, opts.Adapter, handle)
}
