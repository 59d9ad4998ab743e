package queue

import (
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// EnqueueDispatch schedules a single-event dispatch task to fire at the
// event's due time. The hourly sweep remains the safety net if Redis loses
// the task.
func EnqueueDispatch(asynqClient *asynq.Client, payload DispatchEventPayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeDispatchEvent, taskPayload)

	if _, err := asynqClient.Enqueue(task, asynq.ProcessIn(delay)); err != nil {
		return err
	}

	log.Printf("Dispatch task scheduled: %+v", payload)
	return nil
}
