package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
)

func (q *Queue) HandleDispatchEventTask(ctx context.Context, task *asynq.Task) error {
	var payload DispatchEventPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return q.dispatch.DispatchByID(ctx, payload.EventID)
}
