package starlarks

import (
	"fmt"
	"os"

	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/contexts"
	"github.com/reusee/pal/hosts"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/vars"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// StarPaths lists config script files in load order. Definitions in later
// files shadow earlier ones.
type StarPaths []string

// LoadStarDecls executes the config scripts and collects the global
// "actions" list of each. Scripts are re-executed on every call so a
// rebuild picks up edits.
type LoadStarDecls func() ([]actions.Decl, error)

func (Module) LoadStarDecls(
	paths StarPaths,
	logger logs.Logger,
) LoadStarDecls {
	return func() ([]actions.Decl, error) {
		var decls []actions.Decl
		for _, path := range paths {
			src, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			fileDecls, err := execDecls(path, src, logger)
			if err != nil {
				return nil, err
			}
			decls = append(decls, fileDecls...)
		}
		return decls, nil
	}
}

func execDecls(filename string, src []byte, logger logs.Logger) ([]actions.Decl, error) {
	thread := &starlark.Thread{
		Name: filename,
	}
	globals, err := starlark.ExecFileOptions(
		fileOptions,
		thread,
		filename,
		src,
		predeclared(),
	)
	if err != nil {
		return nil, err
	}

	value, ok := globals["actions"]
	if !ok {
		return nil, nil
	}
	list, ok := value.(*starlark.List)
	if !ok {
		return nil, fmt.Errorf("%s: actions is %s, not a list", filename, value.Type())
	}

	// a malformed entry loses only itself, never the rest of the file
	decls := make([]actions.Decl, 0, list.Len())
	for i := range list.Len() {
		decl, err := decodeDecl(list.Index(i))
		if err != nil {
			logger.Warn("action not registered",
				"error", fmt.Errorf("%s: actions[%d]: %w", filename, i, err),
			)
			continue
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

func predeclared() starlark.StringDict {
	return starlark.StringDict{
		"fence": starlarkutil.MakeFunc("fence", func(filetype string, text string) string {
			return "```" + filetype + "\n" + text + "\n```"
		}),
	}
}

func decodeDecl(value starlark.Value) (decl actions.Decl, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		return decl, fmt.Errorf("expected a dict, got %s", value.Type())
	}

	if decl.Name, err = getString(dict, "name"); err != nil {
		return decl, err
	}
	if decl.Strategy, err = getString(dict, "strategy"); err != nil {
		return decl, err
	}
	if decl.Description, err = getString(dict, "description"); err != nil {
		return decl, err
	}

	if optsValue, found, err := dict.Get(starlark.String("opts")); err != nil {
		return decl, err
	} else if found {
		if decl.Opts, err = decodeOpts(optsValue); err != nil {
			return decl, fmt.Errorf("opts: %w", err)
		}
	}

	if promptsValue, found, err := dict.Get(starlark.String("prompts")); err != nil {
		return decl, err
	} else if found {
		list, ok := promptsValue.(*starlark.List)
		if !ok {
			return decl, fmt.Errorf("prompts is %s, not a list", promptsValue.Type())
		}
		for i := range list.Len() {
			spec, err := decodeSpec(list.Index(i))
			if err != nil {
				return decl, fmt.Errorf("prompts[%d]: %w", i, err)
			}
			decl.Prompts = append(decl.Prompts, spec)
		}
	}

	return decl, nil
}

func decodeOpts(value starlark.Value) (opts actions.Opts, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		return opts, fmt.Errorf("expected a dict, got %s", value.Type())
	}

	if opts.Mapping, err = getString(dict, "mapping"); err != nil {
		return opts, err
	}
	if opts.SlashCmd, err = getString(dict, "slash_cmd"); err != nil {
		return opts, err
	}
	if opts.Placement, err = getString(dict, "placement"); err != nil {
		return opts, err
	}

	if modesValue, found, err := dict.Get(starlark.String("modes")); err != nil {
		return opts, err
	} else if found {
		list, ok := modesValue.(*starlark.List)
		if !ok {
			return opts, fmt.Errorf("modes is %s, not a list", modesValue.Type())
		}
		for i := range list.Len() {
			mode, ok := starlark.AsString(list.Index(i))
			if !ok {
				return opts, fmt.Errorf("modes[%d] is not a string", i)
			}
			opts.Modes = append(opts.Modes, mode)
		}
	}

	if opts.AutoSubmit, err = getBoolPtr(dict, "auto_submit"); err != nil {
		return opts, err
	}
	if opts.StopContextInsertion, err = getBoolPtr(dict, "stop_context_insertion"); err != nil {
		return opts, err
	}
	if opts.UserPrompt, err = getBoolPtr(dict, "user_prompt"); err != nil {
		return opts, err
	}

	if adapterValue, found, err := dict.Get(starlark.String("adapter")); err != nil {
		return opts, err
	} else if found {
		adapterDict, ok := adapterValue.(*starlark.Dict)
		if !ok {
			return opts, fmt.Errorf("adapter is %s, not a dict", adapterValue.Type())
		}
		var adapter actions.Adapter
		if adapter.Name, err = getString(adapterDict, "name"); err != nil {
			return opts, err
		}
		if adapter.Model, err = getString(adapterDict, "model"); err != nil {
			return opts, err
		}
		opts.Adapter = &adapter
	}

	if pickerValue, found, err := dict.Get(starlark.String("picker")); err != nil {
		return opts, err
	} else if found {
		picker, ok := fromStarlarkValue(pickerValue).(map[string]any)
		if !ok {
			return opts, fmt.Errorf("picker is %s, not a dict", pickerValue.Type())
		}
		opts.Picker = picker
	}

	if condValue, found, err := dict.Get(starlark.String("condition")); err != nil {
		return opts, err
	} else if found {
		if opts.Condition, err = decodeCondition(condValue); err != nil {
			return opts, err
		}
	}

	if hookValue, found, err := dict.Get(starlark.String("pre_hook")); err != nil {
		return opts, err
	} else if found {
		callable, ok := hookValue.(starlark.Callable)
		if !ok {
			return opts, fmt.Errorf("pre_hook is %s, not callable", hookValue.Type())
		}
		opts.PreHook = preHookFunc(callable)
	}

	return opts, nil
}

func decodeSpec(value starlark.Value) (spec actions.PromptSpec, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		return spec, fmt.Errorf("expected a dict, got %s", value.Type())
	}

	if spec.Role, err = getString(dict, "role"); err != nil {
		return spec, err
	}

	contentValue, found, err := dict.Get(starlark.String("content"))
	if err != nil {
		return spec, err
	}
	if found {
		switch content := contentValue.(type) {
		case starlark.String:
			spec.Content = actions.Literal(content)
		case starlark.Callable:
			spec.Content = contentFunc(content)
		default:
			return spec, fmt.Errorf("content is %s, not a string or callable", contentValue.Type())
		}
	}

	containsCode, err := getBoolPtr(dict, "contains_code")
	if err != nil {
		return spec, err
	}
	spec.ContainsCode = vars.DerefOrZero(containsCode)

	if condValue, found, err := dict.Get(starlark.String("condition")); err != nil {
		return spec, err
	} else if found {
		if spec.Condition, err = decodeCondition(condValue); err != nil {
			return spec, err
		}
	}

	return spec, nil
}

func decodeCondition(value starlark.Value) (actions.Condition, error) {
	switch value := value.(type) {
	case starlark.Bool:
		return actions.Static(value), nil
	case starlark.Callable:
		return conditionFunc(value), nil
	}
	return nil, fmt.Errorf("condition is %s, not a bool or callable", value.Type())
}

func contentFunc(callable starlark.Callable) actions.Computed {
	return func(ectx contexts.Context) (string, error) {
		result, err := call(callable, ectx)
		if err != nil {
			return "", err
		}
		str, ok := starlark.AsString(result)
		if !ok {
			return "", fmt.Errorf("%s returned %s, not a string", callable.Name(), result.Type())
		}
		return str, nil
	}
}

func conditionFunc(callable starlark.Callable) actions.Predicate {
	return func(ectx contexts.Context) (bool, error) {
		result, err := call(callable, ectx)
		if err != nil {
			return false, err
		}
		return bool(result.Truth()), nil
	}
}

func preHookFunc(callable starlark.Callable) actions.PreHook {
	return func(ectx contexts.Context) (hosts.Handle, error) {
		result, err := call(callable, ectx)
		if err != nil {
			return nil, err
		}
		return fromStarlarkValue(result), nil
	}
}

func call(callable starlark.Callable, ectx contexts.Context) (starlark.Value, error) {
	thread := &starlark.Thread{
		Name: callable.Name(),
	}
	return starlark.Call(thread, callable, starlark.Tuple{
		contextValue(ectx),
	}, nil)
}

func getString(dict *starlark.Dict, key string) (string, error) {
	value, found, err := dict.Get(starlark.String(key))
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	str, ok := starlark.AsString(value)
	if !ok {
		return "", fmt.Errorf("%s is %s, not a string", key, value.Type())
	}
	return str, nil
}

func getBoolPtr(dict *starlark.Dict, key string) (*bool, error) {
	value, found, err := dict.Get(starlark.String(key))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	b, ok := value.(starlark.Bool)
	if !ok {
		return nil, fmt.Errorf("%s is %s, not a bool", key, value.Type())
	}
	return vars.Ptr(bool(b)), nil
}
