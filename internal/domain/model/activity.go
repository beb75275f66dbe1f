package model

import "time"

type ActivityType string

const (
	ActivityToDoCreated         ActivityType = "TODO_CREATED"
	ActivityToDoUpdated         ActivityType = "TODO_UPDATED"
	ActivityToDoDeleted         ActivityType = "TODO_DELETED"
	ActivityCollaboratorAdded   ActivityType = "COLLABORATOR_ADDED"
	ActivityCollaboratorRemoved ActivityType = "COLLABORATOR_REMOVED"
	ActivityTaskCreated         ActivityType = "TASK_CREATED"
	ActivityTaskUpdated         ActivityType = "TASK_UPDATED"
	ActivityTaskDeleted         ActivityType = "TASK_DELETED"
)

// ActivityEvent is published after a successful write on a to-do list or one of its tasks.
type ActivityEvent struct {
	ID         string       `json:"id"`
	Type       ActivityType `json:"type"`
	TodoID     uint         `json:"todoId"`
	TaskID     uint         `json:"taskId,omitempty"`
	UserID     uint         `json:"userId,omitempty"`
	OccurredAt time.Time    `json:"occurredAt"`
}
