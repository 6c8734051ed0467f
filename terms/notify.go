package terms

import (
	"context"
	"fmt"

	"github.com/reusee/pal/hosts"
	"github.com/reusee/pal/logs"
)

type termNotifier struct {
	output Output
	logger logs.Logger
}

var _ hosts.Notifier = termNotifier{}

func (Module) Notifier(
	output Output,
	logger logs.Logger,
) hosts.Notifier {
	return termNotifier{
		output: output,
		logger: logger,
	}
}

func (n termNotifier) Notify(ctx context.Context, message string) {
	n.logger.DebugContext(ctx, "notify", "message", message)
	fmt.Fprintln(n.output, message)
}
