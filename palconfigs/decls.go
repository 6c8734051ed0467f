package palconfigs

import (
	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/configs"
	"github.com/reusee/pal/starlarks"
)

type cueAction struct {
	Name        string      `json:"name"`
	Strategy    string      `json:"strategy"`
	Description string      `json:"description"`
	Opts        *cueOpts    `json:"opts"`
	Prompts     []cuePrompt `json:"prompts"`
}

type cueOpts struct {
	Mapping              string         `json:"mapping"`
	Modes                []string       `json:"modes"`
	SlashCmd             string         `json:"slash_cmd"`
	AutoSubmit           *bool          `json:"auto_submit"`
	StopContextInsertion *bool          `json:"stop_context_insertion"`
	UserPrompt           *bool          `json:"user_prompt"`
	Adapter              *cueAdapter    `json:"adapter"`
	Placement            string         `json:"placement"`
	Condition            *bool          `json:"condition"`
	Picker               map[string]any `json:"picker"`
}

type cueAdapter struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

type cuePrompt struct {
	Role         string `json:"role"`
	Content      string `json:"content"`
	ContainsCode bool   `json:"contains_code"`
	Condition    *bool  `json:"condition"`
}

func (a cueAction) toDecl() actions.Decl {
	decl := actions.Decl{
		Name:        a.Name,
		Strategy:    a.Strategy,
		Description: a.Description,
	}
	if a.Opts != nil {
		decl.Opts = actions.Opts{
			Mapping:              a.Opts.Mapping,
			Modes:                a.Opts.Modes,
			SlashCmd:             a.Opts.SlashCmd,
			AutoSubmit:           a.Opts.AutoSubmit,
			StopContextInsertion: a.Opts.StopContextInsertion,
			UserPrompt:           a.Opts.UserPrompt,
			Placement:            a.Opts.Placement,
			Picker:               a.Opts.Picker,
		}
		if a.Opts.Adapter != nil {
			decl.Opts.Adapter = &actions.Adapter{
				Name:  a.Opts.Adapter.Name,
				Model: a.Opts.Adapter.Model,
			}
		}
		if a.Opts.Condition != nil {
			decl.Opts.Condition = actions.Static(*a.Opts.Condition)
		}
	}
	for _, prompt := range a.Prompts {
		spec := actions.PromptSpec{
			Role:         prompt.Role,
			Content:      actions.Literal(prompt.Content),
			ContainsCode: prompt.ContainsCode,
		}
		if prompt.Condition != nil {
			spec.Condition = actions.Static(*prompt.Condition)
		}
		decl.Prompts = append(decl.Prompts, spec)
	}
	return decl
}

// loadCueDecls collects the actions lists of all config files. Files are
// discovered most local first, but a later declaration of a name shadows an
// earlier one on merge, so the order is reversed here.
func loadCueDecls(loader configs.Loader) ([]actions.Decl, error) {
	var perFile [][]cueAction
	for value, err := range loader.IterCueValues("actions") {
		if err != nil {
			return nil, err
		}
		var cueActions []cueAction
		if err := value.Decode(&cueActions); err != nil {
			return nil, err
		}
		perFile = append(perFile, cueActions)
	}

	var decls []actions.Decl
	for i := len(perFile) - 1; i >= 0; i-- {
		for _, action := range perFile[i] {
			decls = append(decls, action.toDecl())
		}
	}
	return decls, nil
}

// Starlark declarations come after the cue ones so a script can override a
// cue-declared action.
func (Module) LoadUserDecls(
	newLoader NewLoader,
	loadStarDecls starlarks.LoadStarDecls,
) actions.LoadUserDecls {
	return func() ([]actions.Decl, error) {
		decls, err := loadCueDecls(newLoader())
		if err != nil {
			return nil, err
		}
		starDecls, err := loadStarDecls()
		if err != nil {
			return nil, err
		}
		return append(decls, starDecls...), nil
	}
}
