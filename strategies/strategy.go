package strategies

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/hosts"
	"github.com/reusee/pal/renders"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy consumes a rendered prompt sequence. Anything beyond this point
// (streaming, retries, UI) is the strategy's own business; the dispatch core
// is done once Invoke is called.
type Strategy interface {
	Name() string
	Invoke(
		ctx context.Context,
		prompts []renders.Rendered,
		opts actions.Opts,
		handle hosts.Handle,
	) error
}

func (Module) AllStrategies(
	chat StrategyChat,
	inline StrategyInline,
	savedChats StrategySavedChats,
) []Strategy {
	return []Strategy{
		chat,
		inline,
		savedChats,
	}
}

// GetStrategy resolves a strategy tag. Adding a strategy means adding it to
// the provided set, not changing the dispatcher.
type GetStrategy func(name string) (Strategy, error)

func (Module) GetStrategy(
	allStrategies []Strategy,
) GetStrategy {
	byName := make(map[string]Strategy)
	for _, strategy := range allStrategies {
		byName[strategy.Name()] = strategy
	}
	return func(name string) (Strategy, error) {
		strategy, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
		}
		return strategy, nil
	}
}
