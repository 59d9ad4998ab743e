package queue

import (
	job "github.com/adamn1225/nextnoetics-gorm-sub000/internal/jobs"
)

type Queue struct {
	dispatch *job.DispatchJob
}

func NewQueue(dispatch *job.DispatchJob) *Queue {
	return &Queue{dispatch: dispatch}
}

const TaskTypeDispatchEvent = "calendar:dispatch"

type DispatchEventPayload struct {
	EventID int64 `json:"event_id"`
}
