package cmds

import "testing"

func TestVar(t *testing.T) {
	executor := NewExecutor()

	var value string
	executor.Define("-name", Func(func(v string) {
		value = v
	}))
	executor.Define("-name.", Func(func() {
		value = ""
	}))

	if err := executor.Execute([]string{"-name", "foo"}); err != nil {
		t.Fatal(err)
	}
	if value != "foo" {
		t.Fatalf("got %q", value)
	}

	if err := executor.Execute([]string{"-name."}); err != nil {
		t.Fatal(err)
	}
	if value != "" {
		t.Fatalf("got %q", value)
	}
}

func TestSwitch(t *testing.T) {
	executor := NewExecutor()

	var value bool
	executor.Define("-on", Func(func() {
		value = true
	}))
	executor.Define("!-on", Func(func() {
		value = false
	}))

	if err := executor.Execute([]string{"-on"}); err != nil {
		t.Fatal(err)
	}
	if !value {
		t.Fatal()
	}
	if err := executor.Execute([]string{"!-on"}); err != nil {
		t.Fatal(err)
	}
	if value {
		t.Fatal()
	}
}
