package task

import "todo-tracker/internal/domain/entity"

type UseCase interface {
	// Create stores a task in an existing to-do list; without a state it starts in "New".
	Create(task *entity.Task) (*entity.Task, error)
	ReadByID(id uint) (*entity.Task, error)
	// Update changes name, priority and state; the owning list never changes.
	Update(task *entity.Task) (*entity.Task, error)
	Delete(id uint) error
	GetAll() ([]entity.Task, error)
	GetByTodoID(todoID uint) ([]entity.Task, error)
	GetByStateID(stateID uint) ([]entity.Task, error)
	// DeleteOrphans removes tasks left behind by deleted to-do lists.
	DeleteOrphans() (int64, error)
}
