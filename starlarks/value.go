package starlarks

import (
	"github.com/reusee/pal/contexts"
	"go.starlark.net/starlark"
)

// contextValue exposes a snapshot to config functions as a dict. Keys are
// the registration-schema names, not the Go field names.
func contextValue(ctx contexts.Context) starlark.Value {
	lines := make([]starlark.Value, 0, len(ctx.Lines))
	for _, line := range ctx.Lines {
		lines = append(lines, starlark.String(line))
	}

	d := starlark.NewDict(13)
	d.SetKey(starlark.String("buffer"), starlark.MakeInt(ctx.Buffer))
	d.SetKey(starlark.String("buftype"), starlark.String(ctx.BufType))
	d.SetKey(starlark.String("cursor_line"), starlark.MakeInt(ctx.Cursor.Line))
	d.SetKey(starlark.String("cursor_col"), starlark.MakeInt(ctx.Cursor.Col))
	d.SetKey(starlark.String("start_line"), starlark.MakeInt(ctx.Start.Line))
	d.SetKey(starlark.String("start_col"), starlark.MakeInt(ctx.Start.Col))
	d.SetKey(starlark.String("end_line"), starlark.MakeInt(ctx.End.Line))
	d.SetKey(starlark.String("end_col"), starlark.MakeInt(ctx.End.Col))
	d.SetKey(starlark.String("filetype"), starlark.String(ctx.Filetype))
	d.SetKey(starlark.String("mode"), starlark.String(ctx.Mode))
	d.SetKey(starlark.String("is_normal"), starlark.Bool(ctx.IsNormal))
	d.SetKey(starlark.String("is_visual"), starlark.Bool(ctx.IsVisual))
	d.SetKey(starlark.String("lines"), starlark.NewList(lines))
	return d
}

func fromStarlarkValue(v starlark.Value) any {
	switch v := v.(type) {

	case starlark.NoneType:
		return nil

	case starlark.Bool:
		return bool(v)

	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return i
		}
		return v.String()

	case starlark.Float:
		return float64(v)

	case starlark.String:
		return string(v)

	case starlark.Bytes:
		return []byte(v)

	case *starlark.List:
		ret := make([]any, 0, v.Len())
		for elem := range v.Elements() {
			ret = append(ret, fromStarlarkValue(elem))
		}
		return ret

	case starlark.Tuple:
		ret := make([]any, 0, len(v))
		for _, elem := range v {
			ret = append(ret, fromStarlarkValue(elem))
		}
		return ret

	case *starlark.Dict:
		ret := make(map[string]any, v.Len())
		for key, value := range v.Entries() {
			keyStr, ok := starlark.AsString(key)
			if !ok {
				keyStr = key.String()
			}
			ret[keyStr] = fromStarlarkValue(value)
		}
		return ret

	}
	return v.String()
}
