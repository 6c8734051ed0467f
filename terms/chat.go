package terms

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reusee/pal/logs"
	"github.com/reusee/pal/renders"
	"github.com/reusee/pal/storages"
	"github.com/reusee/pal/strategies"
)

// termChatUI writes the conversation opener to the terminal and records it
// as a saved chat.
type termChatUI struct {
	output Output
	db     storages.DB
	logger logs.Logger
}

var _ strategies.ChatUI = termChatUI{}

func (Module) ChatUI(
	output Output,
	db storages.DB,
	logger logs.Logger,
) strategies.ChatUI {
	return termChatUI{
		output: output,
		db:     db,
		logger: logger,
	}
}

func (c termChatUI) Open(
	ctx context.Context,
	prompts []renders.Rendered,
	opts strategies.ChatOptions,
) error {
	body := formatTranscript(prompts)
	fmt.Fprint(c.output, body)
	if opts.AutoSubmit {
		fmt.Fprintln(c.output, "[submitted]")
	}

	title := chatTitle(prompts)
	err := storages.InTx(ctx, c.db, func(tx storages.Tx) error {
		_, err := tx.Exec(ctx,
			`insert into chats (id, title, created_at, body) values (?, ?, ?, ?)`,
			uuid.New().String(),
			title,
			time.Now().Unix(),
			body,
		)
		return err
	})
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "chat opened",
		"title", title,
		"prompts", len(prompts),
	)
	return nil
}

func formatTranscript(prompts []renders.Rendered) string {
	var sb strings.Builder
	for _, prompt := range prompts {
		fmt.Fprintf(&sb, "== %s ==\n%s\n", prompt.Role, prompt.Text)
	}
	return sb.String()
}

// chatTitle is the first line of the first user prompt, or a fallback.
func chatTitle(prompts []renders.Rendered) string {
	for _, prompt := range prompts {
		if prompt.Role != "user" {
			continue
		}
		line, _, _ := strings.Cut(prompt.Text, "\n")
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return "chat"
}
