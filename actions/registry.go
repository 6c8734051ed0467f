package actions

import (
	"slices"

	"github.com/reusee/pal/contexts"
	"github.com/reusee/pal/logs"
)

// Registry is the merged, ordered set of actions. It is immutable once
// built; a config reload builds a new one and swaps it atomically.
type Registry struct {
	decls []Decl
	index map[string]int
}

// Build merges declarations in order: defaults first, then overrides.
// Declaring a known name merges onto the earlier entry, keeping its
// position. A declaration that fails validation after merging is dropped
// and logged; the rest of the registry still builds.
func Build(
	defaults []Decl,
	overrides []Decl,
	logger logs.Logger,
) *Registry {
	ret := &Registry{
		index: make(map[string]int),
	}

	for _, decl := range defaults {
		ret.register(decl, logger)
	}
	for _, decl := range overrides {
		ret.register(decl, logger)
	}

	return ret
}

func (r *Registry) register(decl Decl, logger logs.Logger) {
	if i, ok := r.index[decl.Name]; ok {
		merged := mergeDecl(r.decls[i], decl)
		if err := merged.Validate(); err != nil {
			logger.Warn("action not registered", "error", err)
			return
		}
		r.decls[i] = merged
		return
	}

	if err := decl.Validate(); err != nil {
		logger.Warn("action not registered", "error", err)
		return
	}
	r.decls = append(r.decls, decl)
	r.index[decl.Name] = len(r.decls) - 1
}

func (r *Registry) Len() int {
	return len(r.decls)
}

func (r *Registry) Get(name string) (Decl, bool) {
	i, ok := r.index[name]
	if !ok {
		return Decl{}, false
	}
	return r.decls[i], true
}

func (r *Registry) BySlashCmd(cmd string) (Decl, bool) {
	for _, decl := range r.decls {
		if decl.Opts.SlashCmd == cmd {
			return decl, true
		}
	}
	return Decl{}, false
}

func (r *Registry) All() []Decl {
	return slices.Clone(r.decls)
}

// Available reports whether the action applies to the snapshot: its modes
// include the current mode and its condition holds. Both the picker and the
// direct invocation surfaces (slash commands, named dispatch) gate on it.
func Available(
	decl Decl,
	ctx contexts.Context,
	eval EvalCondition,
) bool {
	if decl.Opts.Modes != nil &&
		!slices.Contains(decl.Opts.Modes, ctx.Mode) {
		return false
	}
	return eval(decl.Opts.Condition, ctx)
}

// Visible filters by Available, keeping declaration order.
func (r *Registry) Visible(
	ctx contexts.Context,
	eval EvalCondition,
) []Decl {
	var ret []Decl
	for _, decl := range r.decls {
		if !Available(decl, ctx, eval) {
			continue
		}
		ret = append(ret, decl)
	}
	return ret
}
