package actions

import (
	"errors"
	"fmt"
)

var ErrInvalidAction = errors.New("invalid action")

func (d Decl) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAction)
	}
	if d.Strategy == "" {
		return fmt.Errorf("%w: %s: no strategy", ErrInvalidAction, d.Name)
	}
	for i, spec := range d.Prompts {
		if spec.Role == "" {
			return fmt.Errorf("%w: %s: prompt %d: empty role", ErrInvalidAction, d.Name, i)
		}
		if spec.Content == nil {
			return fmt.Errorf("%w: %s: prompt %d: no content", ErrInvalidAction, d.Name, i)
		}
	}
	return nil
}
