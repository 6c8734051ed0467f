package actions

import (
	"github.com/reusee/pal/vars"
)

// mergeDecl layers override onto base: last write wins per field, opts merge
// field by field, prompts replace wholesale when the override declares any.
func mergeDecl(base, override Decl) Decl {
	ret := base
	ret.Strategy = vars.FirstNonZero(override.Strategy, base.Strategy)
	ret.Description = vars.FirstNonZero(override.Description, base.Description)
	ret.Opts = mergeOpts(base.Opts, override.Opts)
	if override.Prompts != nil {
		ret.Prompts = override.Prompts
	}
	return ret
}

func mergeOpts(base, override Opts) Opts {
	ret := Opts{
		Mapping:              vars.FirstNonZero(override.Mapping, base.Mapping),
		SlashCmd:             vars.FirstNonZero(override.SlashCmd, base.SlashCmd),
		Placement:            vars.FirstNonZero(override.Placement, base.Placement),
		AutoSubmit:           vars.FirstNonNil(override.AutoSubmit, base.AutoSubmit),
		StopContextInsertion: vars.FirstNonNil(override.StopContextInsertion, base.StopContextInsertion),
		UserPrompt:           vars.FirstNonNil(override.UserPrompt, base.UserPrompt),
		Adapter:              vars.FirstNonNil(override.Adapter, base.Adapter),
		Modes:                base.Modes,
		PreHook:              base.PreHook,
		Condition:            base.Condition,
		Picker:               base.Picker,
	}
	if override.Modes != nil {
		ret.Modes = override.Modes
	}
	if override.PreHook != nil {
		ret.PreHook = override.PreHook
	}
	if override.Condition != nil {
		ret.Condition = override.Condition
	}
	if override.Picker != nil {
		ret.Picker = override.Picker
	}
	return ret
}
