package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/cmds"
	"github.com/reusee/pal/contexts"
	"github.com/reusee/pal/dispatches"
	"github.com/reusee/pal/hosts"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/modes"
)

var (
	actionFlag = cmds.Var[string]("-action")
	loopFlag   = cmds.Switch("-loop")
)

func main() {
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	// slash commands come from the registry, so they are defined before the
	// command line is executed
	var selectedSlash string
	scope.Call(func(
		getRegistry actions.GetRegistry,
	) {
		for _, decl := range getRegistry().All() {
			slash := decl.Opts.SlashCmd
			if slash == "" {
				continue
			}
			cmds.Define("/"+slash, cmds.Func(func() {
				selectedSlash = slash
			}).Desc(decl.Description))
		}
	})

	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope.Call(func(
		logger logs.Logger,
		capture contexts.Capture,
		getRegistry actions.GetRegistry,
		eval actions.EvalCondition,
		watch actions.WatchConfig,
		picker hosts.Picker,
		notifier hosts.Notifier,
		dispatch dispatches.Dispatch,
	) {

		if *loopFlag {
			go func() {
				if err := watch(ctx); err != nil {
					logger.Error("config watch", "error", err)
				}
			}()
		}

		// the direct surfaces bypass the picker but not the gating
		if selectedSlash != "" || *actionFlag != "" {
			var decl actions.Decl
			var ok bool
			if selectedSlash != "" {
				decl, ok = getRegistry().BySlashCmd(selectedSlash)
				if !ok {
					ce(fmt.Errorf("no such slash command: %q", selectedSlash))
				}
			} else {
				decl, ok = getRegistry().Get(*actionFlag)
				if !ok {
					ce(fmt.Errorf("no such action: %q", *actionFlag))
				}
			}

			ectx := capture()
			if !actions.Available(decl, ectx, eval) {
				notifier.Notify(ctx, decl.Name+" is not available in this context")
				return
			}
			state, err := dispatch(ctx, decl, ectx)
			ce(err)
			logger.InfoContext(ctx, "done", "state", state)
			return
		}

		for {
			ectx := capture()
			visible := getRegistry().Visible(ectx, eval)
			if len(visible) == 0 {
				logger.InfoContext(ctx, "no actions for this context")
				return
			}

			items := make([]hosts.PickItem, 0, len(visible))
			for _, decl := range visible {
				items = append(items, hosts.PickItem{
					Name:        decl.Name,
					Description: decl.Description,
					Hints:       decl.Opts.Picker,
				})
			}
			index, ok, err := picker.Pick(ctx, "Actions", items)
			ce(err)
			if !ok {
				return
			}

			state, err := dispatch(ctx, visible[index], ectx)
			ce(err)
			logger.InfoContext(ctx, "done",
				"action", visible[index].Name,
				"state", state,
			)

			if !*loopFlag {
				return
			}
		}
	})
}
