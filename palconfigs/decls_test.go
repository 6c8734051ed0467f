package palconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/configs"
	"github.com/reusee/pal/modes"
	"github.com/reusee/pal/renders"
	"github.com/reusee/pal/starlarks"
	"github.com/reusee/pal/vars"
)

func testLoader(paths ...string) configs.Loader {
	return configs.NewLoader(paths, schema)
}

func TestLoadCueDecls(t *testing.T) {
	decls, err := loadCueDecls(testLoader(
		// most local first, as discovery returns them
		"testdata/local.cue",
		"testdata/global.cue",
	))
	if err != nil {
		t.Fatal(err)
	}

	// global declarations come first so local ones shadow them on merge
	if len(decls) != 3 {
		t.Fatalf("got %v", decls)
	}
	if decls[0].Name != "Summarize" || decls[0].Description != "summarize the buffer" {
		t.Fatalf("got %+v", decls[0])
	}
	if decls[1].Name != "Chat" {
		t.Fatalf("got %+v", decls[1])
	}

	local := decls[2]
	if local.Name != "Summarize" {
		t.Fatalf("got %+v", local)
	}
	if local.Opts.SlashCmd != "sum" {
		t.Fatalf("got %q", local.Opts.SlashCmd)
	}
	if !vars.DerefOrZero(local.Opts.AutoSubmit) {
		t.Fatal()
	}
	if local.Opts.Adapter == nil || local.Opts.Adapter.Model != "gpt-4o-mini" {
		t.Fatalf("got %v", local.Opts.Adapter)
	}
	if len(local.Prompts) != 2 {
		t.Fatalf("got %v", local.Prompts)
	}
	if local.Prompts[0].Content != actions.Literal("Summarize the buffer.") {
		t.Fatalf("got %v", local.Prompts[0].Content)
	}
	if !local.Prompts[1].ContainsCode {
		t.Fatal()
	}
	if local.Prompts[1].Condition != actions.Static(false) {
		t.Fatalf("got %v", local.Prompts[1].Condition)
	}
}

func TestSchemaRejectsUnknownField(t *testing.T) {
	_, err := loadCueDecls(testLoader("testdata/bad.cue"))
	if err == nil {
		t.Fatal("should error")
	}
}

func TestLoadUserDecls(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() NewLoader {
			return func() configs.Loader {
				return testLoader("testdata/local.cue")
			}
		},
		func() starlarks.StarPaths {
			return starlarks.StarPaths{"testdata/extra.star"}
		},
	).Call(func(
		load actions.LoadUserDecls,
	) {
		decls, err := load()
		if err != nil {
			t.Fatal(err)
		}
		// cue first, then starlark so scripts shadow cue
		if len(decls) != 2 {
			t.Fatalf("got %v", decls)
		}
		if decls[0].Opts.SlashCmd != "sum" {
			t.Fatalf("got %+v", decls[0])
		}
		if _, ok := decls[1].Opts.Condition.(actions.Predicate); !ok {
			t.Fatalf("got %T", decls[1].Opts.Condition)
		}
	})
}

func TestSendCodeFromConfig(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return testLoader("testdata/local.cue")
		},
	).Call(func(
		sendCode renders.SendCode,
	) {
		if !sendCode {
			t.Fatal()
		}
	})
}

func TestSendCodeDefault(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return testLoader()
		},
	).Call(func(
		sendCode renders.SendCode,
	) {
		if sendCode {
			t.Fatal()
		}
	})
}
