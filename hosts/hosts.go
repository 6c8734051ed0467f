// Package hosts declares the collaborator surfaces the dispatch core calls
// into. The host editor (or the terminal adapters in terms/) provides the
// implementations.
package hosts

import "context"

// Handle is an opaque resource produced by an action's pre-hook, for example
// a target buffer identity. The dispatch owns it until it is handed to the
// strategy.
type Handle any

type Notifier interface {
	Notify(ctx context.Context, message string)
}

type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type PickItem struct {
	Name        string
	Description string
	Hints       map[string]any
}

type Picker interface {
	// Pick returns the index of the chosen item. ok is false when the user
	// dismissed the picker.
	Pick(ctx context.Context, title string, items []PickItem) (index int, ok bool, err error)
}
