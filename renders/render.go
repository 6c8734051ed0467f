package renders

import (
	"context"

	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/contexts"
	"github.com/reusee/pal/hosts"
	"github.com/reusee/pal/logs"
)

type Rendered struct {
	Role string
	Text string
}

// SendCode is the policy gate for prompts that embed selected source text.
// It is passed into rendering explicitly so a render is a function of its
// inputs.
type SendCode bool

// Render resolves one prompt spec against the snapshot. included is false
// when the prompt is filtered by its condition or blocked by the send-code
// policy; a policy block is surfaced through the notifier, a condition
// filter is silent.
type Render func(
	ctx context.Context,
	spec actions.PromptSpec,
	ectx contexts.Context,
	sendCode SendCode,
) (rendered Rendered, included bool, err error)

func (Module) Render(
	eval actions.EvalCondition,
	notifier hosts.Notifier,
	logger logs.Logger,
) Render {
	return func(
		ctx context.Context,
		spec actions.PromptSpec,
		ectx contexts.Context,
		sendCode SendCode,
	) (Rendered, bool, error) {

		if !eval(spec.Condition, ectx) {
			return Rendered{}, false, nil
		}

		if spec.ContainsCode && !bool(sendCode) {
			notifier.Notify(ctx, "sending code is disabled; prompt not included")
			logger.InfoContext(ctx, "prompt blocked by send-code policy",
				"role", spec.Role,
			)
			return Rendered{}, false, nil
		}

		text, err := actions.ResolveContent(spec.Content, ectx)
		if err != nil {
			return Rendered{}, false, logs.WrapSpan(ctx, err)
		}

		return Rendered{
			Role: spec.Role,
			Text: text,
		}, true, nil
	}
}

// RenderAll renders a prompt sequence in declaration order. Filtered and
// blocked prompts leave no placeholder. A content error aborts the whole
// sequence: no partial prompt list is returned.
type RenderAll func(
	ctx context.Context,
	specs []actions.PromptSpec,
	ectx contexts.Context,
	sendCode SendCode,
) ([]Rendered, error)

func (Module) RenderAll(
	render Render,
) RenderAll {
	return func(
		ctx context.Context,
		specs []actions.PromptSpec,
		ectx contexts.Context,
		sendCode SendCode,
	) ([]Rendered, error) {
		var ret []Rendered
		for _, spec := range specs {
			rendered, included, err := render(ctx, spec, ectx, sendCode)
			if err != nil {
				return nil, err
			}
			if !included {
				continue
			}
			ret = append(ret, rendered)
		}
		return ret, nil
	}
}
