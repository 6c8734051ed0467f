package strategies

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/pal/actions"
	"github.com/reusee/pal/hosts"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/renders"
)

type SavedChat struct {
	ID    string
	Title string
}

// ChatStore is the host's saved-session backend. Persistence format is its
// own concern.
type ChatStore interface {
	List(ctx context.Context) ([]SavedChat, error)
	Open(ctx context.Context, id string) error
}

type StrategySavedChats struct {
	ChatStore dscope.Inject[ChatStore]
	Picker    dscope.Inject[hosts.Picker]
	Logger    dscope.Inject[logs.Logger]
}

var _ Strategy = StrategySavedChats{}

func (Module) StrategySavedChats(
	inject dscope.InjectStruct,
) (ret StrategySavedChats) {
	inject(&ret)
	return
}

func (s StrategySavedChats) Name() string {
	return "saved_chats"
}

func (s StrategySavedChats) Invoke(
	ctx context.Context,
	prompts []renders.Rendered,
	opts actions.Opts,
	handle hosts.Handle,
) error {
	saved, err := s.ChatStore().List(ctx)
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		s.Logger().InfoContext(ctx, "no saved chats")
		return nil
	}

	items := make([]hosts.PickItem, 0, len(saved))
	for _, chat := range saved {
		items = append(items, hosts.PickItem{
			Name:        chat.Title,
			Description: chat.ID,
			Hints:       opts.Picker,
		})
	}
	index, ok, err := s.Picker().Pick(ctx, "Saved chats", items)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return s.ChatStore().Open(ctx, saved[index].ID)
}
