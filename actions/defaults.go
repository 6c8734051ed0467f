package actions

import (
	"github.com/reusee/pal/contexts"
	"github.com/reusee/pal/prompts"
	"github.com/reusee/pal/vars"
)

func (Module) Defaults() Defaults {
	return Defaults{

		{
			Name:        "Chat",
			Strategy:    "chat",
			Description: "Open a new chat",
			Opts: Opts{
				SlashCmd: "chat",
			},
			Prompts: []PromptSpec{
				{
					Role:    RoleSystem,
					Content: Literal(prompts.Chat),
				},
			},
		},

		{
			Name:        "Explain code",
			Strategy:    "chat",
			Description: "Explain the selected code",
			Opts: Opts{
				Modes:      []string{"v", "V"},
				SlashCmd:   "explain",
				AutoSubmit: vars.Ptr(true),
			},
			Prompts: []PromptSpec{
				{
					Role:    RoleSystem,
					Content: Literal(prompts.Chat + prompts.Explain),
				},
				{
					Role:    RoleUserHeader,
					Content: Literal("Please explain this code:"),
				},
				{
					Role: RoleUser,
					Content: Computed(func(ctx contexts.Context) (string, error) {
						return ctx.FencedSelection(), nil
					}),
					ContainsCode: true,
				},
			},
		},

		{
			Name:        "Fix code",
			Strategy:    "chat",
			Description: "Fix the selected code",
			Opts: Opts{
				Modes:      []string{"v", "V"},
				SlashCmd:   "fix",
				AutoSubmit: vars.Ptr(true),
			},
			Prompts: []PromptSpec{
				{
					Role:    RoleSystem,
					Content: Literal(prompts.Chat + prompts.FixCode),
				},
				{
					Role:    RoleUserHeader,
					Content: Literal("Please fix this code:"),
				},
				{
					Role: RoleUser,
					Content: Computed(func(ctx contexts.Context) (string, error) {
						return ctx.FencedSelection(), nil
					}),
					ContainsCode: true,
				},
			},
		},

		{
			Name:        "Generate unit tests",
			Strategy:    "chat",
			Description: "Generate unit tests for the selected code",
			Opts: Opts{
				Modes:      []string{"v", "V"},
				SlashCmd:   "tests",
				AutoSubmit: vars.Ptr(true),
			},
			Prompts: []PromptSpec{
				{
					Role:    RoleSystem,
					Content: Literal(prompts.Chat + prompts.UnitTests),
				},
				{
					Role:    RoleUserHeader,
					Content: Literal("Please generate unit tests for this code:"),
				},
				{
					Role: RoleUser,
					Content: Computed(func(ctx contexts.Context) (string, error) {
						return ctx.FencedSelection(), nil
					}),
					ContainsCode: true,
				},
			},
		},

		{
			Name:        "Inline rewrite",
			Strategy:    "inline",
			Description: "Rewrite the selection in place",
			Opts: Opts{
				Modes:      []string{"v", "V"},
				SlashCmd:   "rewrite",
				Placement:  "replace",
				UserPrompt: vars.Ptr(true),
				Condition: Predicate(func(ctx contexts.Context) (bool, error) {
					return len(ctx.Lines) > 0, nil
				}),
			},
			Prompts: []PromptSpec{
				{
					Role:    RoleSystem,
					Content: Literal(prompts.InlineRewrite),
				},
				{
					Role: RoleUser,
					Content: Computed(func(ctx contexts.Context) (string, error) {
						return ctx.FencedSelection(), nil
					}),
					ContainsCode: true,
				},
			},
		},

		{
			Name:        "Load saved chats",
			Strategy:    "saved_chats",
			Description: "Resume a saved chat",
			Opts: Opts{
				SlashCmd: "saved",
				Picker: map[string]any{
					"sort": "mtime",
				},
			},
		},
	}
}
