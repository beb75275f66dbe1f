package db

import "todo-tracker/internal/domain/entity"

// TaskGateway loads tasks together with their state.
type TaskGateway interface {
	Save(task entity.Task) (*entity.Task, error)
	FindByID(id uint) (*entity.Task, error)
	FindAll() ([]entity.Task, error)
	FindByTodoID(todoID uint) ([]entity.Task, error)
	FindByStateID(stateID uint) ([]entity.Task, error)
	Delete(task entity.Task) error
	// DeleteOrphans removes tasks whose to-do list no longer exists and returns how many were removed.
	DeleteOrphans() (int64, error)
}
