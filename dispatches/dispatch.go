package dispatches

import (
	"context"

	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/contexts"
	"github.com/reusee/pal/hosts"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/renders"
	"github.com/reusee/pal/strategies"
	"github.com/reusee/pal/vars"
)

// Dispatch runs one action against one snapshot:
// confirm (when asked for) → pre-hook → render → invoke strategy.
// The returned state is terminal: Dispatched, Aborted or Failed.
type Dispatch func(
	ctx context.Context,
	decl actions.Decl,
	ectx contexts.Context,
) (State, error)

func (Module) Dispatch(
	getStrategy strategies.GetStrategy,
	renderAll renders.RenderAll,
	confirmer hosts.Confirmer,
	sendCode renders.SendCode,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Dispatch {
	return func(
		ctx context.Context,
		decl actions.Decl,
		ectx contexts.Context,
	) (State, error) {
		ctx, _ = newSpan(ctx, "")
		logger.InfoContext(ctx, "dispatch",
			"action", decl.Name,
			"strategy", decl.Strategy,
		)

		state := StateIdle
		enter := func(next State) {
			state = next
			logger.DebugContext(ctx, "dispatch state", "state", state)
		}

		// resolve the strategy before anything with side effects
		strategy, err := getStrategy(decl.Strategy)
		if err != nil {
			enter(StateFailed)
			return state, logs.WrapSpan(ctx, err)
		}

		if vars.DerefOrZero(decl.Opts.UserPrompt) {
			enter(StateConfirmPending)
			ok, err := confirmer.Confirm(ctx, "Run \""+decl.Name+"\"?")
			if err != nil {
				enter(StateFailed)
				return state, logs.WrapSpan(ctx, err)
			}
			if !ok {
				enter(StateAborted)
				return state, nil
			}
		}

		var handle hosts.Handle
		if decl.Opts.PreHook != nil {
			enter(StateHookRun)
			handle, err = decl.Opts.PreHook(ectx)
			if err != nil {
				enter(StateFailed)
				return state, logs.WrapSpan(ctx, err)
			}
		}

		enter(StateRendering)
		prompts, err := renderAll(ctx, decl.Prompts, ectx, sendCode)
		if err != nil {
			enter(StateFailed)
			return state, logs.WrapSpan(ctx, err)
		}

		enter(StateDispatched)
		if err := strategy.Invoke(ctx, prompts, decl.Opts, handle); err != nil {
			return state, logs.WrapSpan(ctx, err)
		}
		return state, nil
	}
}
