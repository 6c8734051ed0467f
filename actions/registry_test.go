package actions

import (
	"errors"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pal/contexts"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/modes"
	"github.com/reusee/pal/vars"
)

func testScope(t *testing.T, userDecls []Decl) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
		func() LoadUserDecls {
			return func() ([]Decl, error) {
				return userDecls, nil
			}
		},
		func() ConfigPaths { return nil },
		func() contexts.EditorState { return nil },
	)
}

func chatDecl(name string) Decl {
	return Decl{
		Name:     name,
		Strategy: "chat",
		Prompts: []PromptSpec{
			{
				Role:    RoleSystem,
				Content: Literal("hi"),
			},
		},
	}
}

func TestMergeOnDuplicateName(t *testing.T) {
	testScope(t, nil).Call(func(
		logger logs.Logger,
	) {
		first := chatDecl("X")
		first.Opts.AutoSubmit = vars.Ptr(true)
		second := Decl{
			Name: "X",
			Opts: Opts{
				Mapping: "<leader>x",
			},
		}

		registry := Build([]Decl{first}, []Decl{second}, logger)
		if registry.Len() != 1 {
			t.Fatalf("got %v", registry.Len())
		}
		merged, ok := registry.Get("X")
		if !ok {
			t.Fatal()
		}
		if !vars.DerefOrZero(merged.Opts.AutoSubmit) {
			t.Fatal("auto_submit lost")
		}
		if merged.Opts.Mapping != "<leader>x" {
			t.Fatalf("got %q", merged.Opts.Mapping)
		}
		if merged.Strategy != "chat" {
			t.Fatalf("got %q", merged.Strategy)
		}
	})
}

func TestOverridePromptsWholesale(t *testing.T) {
	testScope(t, nil).Call(func(
		logger logs.Logger,
	) {
		base := chatDecl("X")
		base.Prompts = []PromptSpec{
			{Role: RoleSystem, Content: Literal("a")},
			{Role: RoleUser, Content: Literal("b")},
		}
		override := Decl{
			Name: "X",
			Prompts: []PromptSpec{
				{Role: RoleUser, Content: Literal("c")},
			},
		}

		registry := Build([]Decl{base}, []Decl{override}, logger)
		merged, _ := registry.Get("X")
		if len(merged.Prompts) != 1 {
			t.Fatalf("got %v prompts", len(merged.Prompts))
		}
		if merged.Prompts[0].Content.(Literal) != "c" {
			t.Fatalf("got %v", merged.Prompts[0].Content)
		}
	})
}

func TestMalformedEntryIsolated(t *testing.T) {
	testScope(t, nil).Call(func(
		logger logs.Logger,
	) {
		bad := Decl{
			Name: "bad",
			// no strategy
		}
		registry := Build([]Decl{chatDecl("a")}, []Decl{bad, chatDecl("b")}, logger)
		if registry.Len() != 2 {
			t.Fatalf("got %v", registry.Len())
		}
		if _, ok := registry.Get("bad"); ok {
			t.Fatal("bad entry registered")
		}
		if _, ok := registry.Get("b"); !ok {
			t.Fatal("valid entry lost")
		}
	})
}

func TestDeclarationOrderKept(t *testing.T) {
	testScope(t, nil).Call(func(
		logger logs.Logger,
		eval EvalCondition,
	) {
		override := chatDecl("a")
		override.Description = "overridden"
		registry := Build(
			[]Decl{chatDecl("a"), chatDecl("b")},
			[]Decl{chatDecl("c"), override},
			logger,
		)
		var names []string
		for _, decl := range registry.Visible(contexts.Context{Mode: "n"}, eval) {
			names = append(names, decl.Name)
		}
		if len(names) != 3 ||
			names[0] != "a" || names[1] != "b" || names[2] != "c" {
			t.Fatalf("got %v", names)
		}
		a, _ := registry.Get("a")
		if a.Description != "overridden" {
			t.Fatalf("got %q", a.Description)
		}
	})
}

func TestVisibleModes(t *testing.T) {
	testScope(t, nil).Call(func(
		logger logs.Logger,
		eval EvalCondition,
	) {
		decl := chatDecl("visual only")
		decl.Opts.Modes = []string{"v"}
		registry := Build([]Decl{decl}, nil, logger)

		if got := registry.Visible(contexts.Context{Mode: "n"}, eval); len(got) != 0 {
			t.Fatalf("got %v", got)
		}
		if got := registry.Visible(contexts.Context{Mode: "v"}, eval); len(got) != 1 {
			t.Fatalf("got %v", got)
		}
	})
}

// Resolving an action by name or slash command must not skip the gating the
// picker applies: a visual-only action found via Get or BySlashCmd is still
// unavailable in normal mode.
func TestAvailableGatesDirectInvocation(t *testing.T) {
	testScope(t, nil).Call(func(
		logger logs.Logger,
		eval EvalCondition,
	) {
		decl := chatDecl("Explain code")
		decl.Opts.Modes = []string{"v", "V"}
		decl.Opts.SlashCmd = "explain"
		registry := Build([]Decl{decl}, nil, logger)

		got, ok := registry.Get("Explain code")
		if !ok {
			t.Fatal()
		}
		if Available(got, contexts.Context{Mode: "n"}, eval) {
			t.Fatal("visual-only action available in normal mode")
		}
		if !Available(got, contexts.Context{Mode: "v"}, eval) {
			t.Fatal()
		}

		bySlash, ok := registry.BySlashCmd("explain")
		if !ok {
			t.Fatal()
		}
		if Available(bySlash, contexts.Context{Mode: "n"}, eval) {
			t.Fatal("slash resolution must not bypass mode gating")
		}

		gated := chatDecl("gated")
		gated.Opts.Condition = Static(false)
		if Available(gated, contexts.Context{Mode: "n"}, eval) {
			t.Fatal("condition ignored")
		}
	})
}

func TestVisibleCondition(t *testing.T) {
	testScope(t, nil).Call(func(
		logger logs.Logger,
		eval EvalCondition,
	) {
		no := chatDecl("no")
		no.Opts.Condition = Static(false)
		failing := chatDecl("failing")
		failing.Opts.Condition = Predicate(func(contexts.Context) (bool, error) {
			return false, errors.New("boom")
		})
		panicking := chatDecl("panicking")
		panicking.Opts.Condition = Predicate(func(contexts.Context) (bool, error) {
			panic("boom")
		})
		yes := chatDecl("yes")
		yes.Opts.Condition = Predicate(func(ctx contexts.Context) (bool, error) {
			return ctx.IsVisual, nil
		})

		registry := Build([]Decl{no, failing, panicking, yes}, nil, logger)
		got := registry.Visible(contexts.Context{Mode: "v", IsVisual: true}, eval)
		if len(got) != 1 || got[0].Name != "yes" {
			t.Fatalf("got %v", got)
		}
	})
}

func TestGetRegistryAndRebuild(t *testing.T) {
	decls := []Decl{chatDecl("user action")}
	scope := testScope(t, decls)
	scope.Call(func(
		getRegistry GetRegistry,
		rebuild RebuildRegistry,
		defaults Defaults,
	) {
		registry := getRegistry()
		if registry.Len() != len(defaults)+1 {
			t.Fatalf("got %v", registry.Len())
		}
		if _, ok := registry.Get("user action"); !ok {
			t.Fatal()
		}

		decls[0] = chatDecl("renamed")
		if err := rebuild(); err != nil {
			t.Fatal(err)
		}
		registry = getRegistry()
		if _, ok := registry.Get("renamed"); !ok {
			t.Fatal()
		}
		if _, ok := registry.Get("user action"); ok {
			t.Fatal()
		}
	})
}

func TestBrokenUserConfigKeepsDefaults(t *testing.T) {
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
		func() LoadUserDecls {
			return func() ([]Decl, error) {
				return nil, errors.New("syntax error")
			}
		},
		func() ConfigPaths { return nil },
		func() contexts.EditorState { return nil },
	)
	scope.Call(func(
		getRegistry GetRegistry,
		defaults Defaults,
	) {
		if getRegistry().Len() != len(defaults) {
			t.Fatalf("got %v", getRegistry().Len())
		}
	})
}

func TestBySlashCmd(t *testing.T) {
	scope := testScope(t, nil)
	scope.Call(func(
		getRegistry GetRegistry,
	) {
		decl, ok := getRegistry().BySlashCmd("explain")
		if !ok {
			t.Fatal()
		}
		if decl.Name != "Explain code" {
			t.Fatalf("got %q", decl.Name)
		}
		if _, ok := getRegistry().BySlashCmd("nope"); ok {
			t.Fatal()
		}
	})
}

func TestDefaultsValid(t *testing.T) {
	scope := testScope(t, nil)
	scope.Call(func(
		defaults Defaults,
	) {
		for _, decl := range defaults {
			if err := decl.Validate(); err != nil {
				t.Fatal(err)
			}
		}
	})
}
