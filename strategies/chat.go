package strategies

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/hosts"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/renders"
	"github.com/reusee/pal/vars"
)

// ChatUI is the host's conversational surface.
type ChatUI interface {
	Open(ctx context.Context, prompts []renders.Rendered, opts ChatOptions) error
}

type ChatOptions struct {
	AutoSubmit           bool
	StopContextInsertion bool
	Adapter              *actions.Adapter
	Handle               hosts.Handle
}

type StrategyChat struct {
	ChatUI dscope.Inject[ChatUI]
	Logger dscope.Inject[logs.Logger]
}

var _ Strategy = StrategyChat{}

func (Module) StrategyChat(
	inject dscope.InjectStruct,
) (ret StrategyChat) {
	inject(&ret)
	return
}

func (s StrategyChat) Name() string {
	return "chat"
}

func (s StrategyChat) Invoke(
	ctx context.Context,
	prompts []renders.Rendered,
	opts actions.Opts,
	handle hosts.Handle,
) error {
	s.Logger().DebugContext(ctx, "open chat",
		"prompts", len(prompts),
	)
	return s.ChatUI().Open(ctx, prompts, ChatOptions{
		AutoSubmit:           vars.DerefOrZero(opts.AutoSubmit),
		StopContextInsertion: vars.DerefOrZero(opts.StopContextInsertion),
		Adapter:              opts.Adapter,
		Handle:               handle,
	})
}
