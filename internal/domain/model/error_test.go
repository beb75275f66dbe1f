package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorMessages(t *testing.T) {
	assert.EqualError(t, NewNullEntityError(EntityToDo), "To-Do cannot be 'null'")
	assert.EqualError(t, NewNotFoundByIDError(EntityUser, 42), "User with id 42 not found")
	assert.EqualError(t, NewNotFoundByNameError(EntityState, "New"), "State with name 'New' not found")
	assert.EqualError(t, NewInvalidPriorityError("URGENT"), "Priority 'URGENT' is not valid")
}

func TestDomainErrorKinds(t *testing.T) {
	notFound := NewNotFoundByIDError(EntityTask, 1)
	assert.ErrorIs(t, notFound, ErrNotFound)
	assert.NotErrorIs(t, notFound, ErrInvalidArgument)

	wrapped := fmt.Errorf("reading task: %w", NewNullEntityError(EntityTask))
	assert.ErrorIs(t, wrapped, ErrInvalidArgument)

	var domainErr *DomainError
	assert.True(t, errors.As(wrapped, &domainErr))
	assert.Equal(t, KindInvalidArgument, domainErr.Kind)
}
