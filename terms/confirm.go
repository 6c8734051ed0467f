package terms

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/reusee/pal/hosts"
)

type termConfirmer struct{}

var _ hosts.Confirmer = termConfirmer{}

func (Module) Confirmer() hosts.Confirmer {
	return termConfirmer{}
}

func (termConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	ok := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Value(&ok).
				Affirmative("Yes").
				Negative("No"),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
