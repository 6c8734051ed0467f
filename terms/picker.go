package terms

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/reusee/pal/hosts"
)

type termPicker struct{}

var _ hosts.Picker = termPicker{}

func (Module) Picker() hosts.Picker {
	return termPicker{}
}

func (termPicker) Pick(
	ctx context.Context,
	title string,
	items []hosts.PickItem,
) (int, bool, error) {
	options := make([]huh.Option[int], 0, len(items))
	for i, item := range items {
		label := item.Name
		if item.Description != "" {
			label += " - " + item.Description
		}
		options = append(options, huh.NewOption(label, i))
	}

	index := 0
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(options...).
				Value(&index),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return index, true, nil
}
