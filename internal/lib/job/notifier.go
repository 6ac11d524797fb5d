package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/acm/internal/model"
	"github.com/hibiken/asynq"
)

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Notifier publishes access changes as background tasks.
type Notifier struct {
	client taskEnqueuer
}

// NewNotifier returns a Notifier that enqueues through client. The client
// is usually JobService.Client.
func NewNotifier(client taskEnqueuer) *Notifier {
	return &Notifier{client: client}
}

// Notify enqueues a TaskModulesChanged task for change.
func (n *Notifier) Notify(ctx context.Context, change model.AccessChange) error {
	task, err := NewModulesChangedTask(change)
	if err != nil {
		return fmt.Errorf("failed to build modules changed task: %w", err)
	}

	if _, err := n.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue modules changed task: %w", err)
	}

	return nil
}
