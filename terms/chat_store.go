package terms

import (
	"context"
	"fmt"

	"github.com/reusee/pal/storages"
	"github.com/reusee/pal/strategies"
)

type termChatStore struct {
	output Output
	db     storages.DB
}

var _ strategies.ChatStore = termChatStore{}

func (Module) ChatStore(
	output Output,
	db storages.DB,
) strategies.ChatStore {
	return termChatStore{
		output: output,
		db:     db,
	}
}

func (s termChatStore) List(ctx context.Context) ([]strategies.SavedChat, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, title from chats order by created_at desc`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []strategies.SavedChat
	for rows.Next() {
		var chat strategies.SavedChat
		if err := rows.Scan(&chat.ID, &chat.Title); err != nil {
			return nil, err
		}
		saved = append(saved, chat)
	}
	return saved, rows.Err()
}

func (s termChatStore) Open(ctx context.Context, id string) error {
	var body string
	err := s.db.QueryRowContext(ctx,
		`select body from chats where id = ?`,
		id,
	).Scan(&body)
	if err != nil {
		return fmt.Errorf("open chat %s: %w", id, err)
	}
	fmt.Fprint(s.output, body)
	return nil
}
