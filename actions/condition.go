package actions

import (
	"github.com/reusee/pal/contexts"
	"github.com/reusee/pal/logs"
)

// Condition gates visibility of an action or inclusion of a single prompt.
// A nil Condition means always included.
type Condition interface {
	isCondition()
}

type Static bool

func (Static) isCondition() {}

type Predicate func(ctx contexts.Context) (bool, error)

func (Predicate) isCondition() {}

// EvalCondition coerces a condition to a boolean against the snapshot. A
// predicate that errors or panics evaluates to false so one bad user
// predicate cannot take the palette down; the error is logged at debug level
// to keep misconfiguration discoverable.
type EvalCondition func(cond Condition, ctx contexts.Context) bool

func (Module) EvalCondition(
	logger logs.Logger,
) EvalCondition {
	return func(cond Condition, ctx contexts.Context) (ret bool) {
		switch cond := cond.(type) {

		case nil:
			return true

		case Static:
			return bool(cond)

		case Predicate:
			defer func() {
				if p := recover(); p != nil {
					logger.Debug("condition panicked", "panic", p)
					ret = false
				}
			}()
			ok, err := cond(ctx)
			if err != nil {
				logger.Debug("condition error", "error", err)
				return false
			}
			return ok

		}
		return false
	}
}
