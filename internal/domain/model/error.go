package model

import (
	"errors"

	"todo-tracker/pkg/msg"
)

// Names used in error messages for each entity kind.
const (
	EntityRole  = "Role"
	EntityState = "State"
	EntityUser  = "User"
	EntityToDo  = "To-Do"
	EntityTask  = "Task"
)

type ErrorKind string

const (
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	KindNotFound        ErrorKind = "NOT_FOUND"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)

// DomainError is the only error raised by the use cases; store failures pass through untouched.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is lets errors.Is match a DomainError against ErrInvalidArgument or ErrNotFound.
func (e *DomainError) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

func NewNullEntityError(entityName string) error {
	return &DomainError{Kind: KindInvalidArgument, Message: msg.GetMessage("entity.error.null-entity", entityName)}
}

func NewNotFoundByIDError(entityName string, id uint) error {
	return &DomainError{Kind: KindNotFound, Message: msg.GetMessage("entity.error.not-found-id", entityName, id)}
}

func NewNotFoundByNameError(entityName string, name string) error {
	return &DomainError{Kind: KindNotFound, Message: msg.GetMessage("entity.error.not-found-name", entityName, name)}
}

func NewInvalidPriorityError(priority string) error {
	return &DomainError{Kind: KindInvalidArgument, Message: msg.GetMessage("task.error.invalid-priority", priority)}
}

func NewEmptyNameError(key string) error {
	return &DomainError{Kind: KindInvalidArgument, Message: msg.GetMessage(key)}
}
