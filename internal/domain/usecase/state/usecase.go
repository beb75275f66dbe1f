package state

import "todo-tracker/internal/domain/entity"

type UseCase interface {
	Create(state *entity.State) (*entity.State, error)
	ReadByID(id uint) (*entity.State, error)
	// GetByName resolves a state by its name, e.g. the default "New" state of new tasks.
	GetByName(name string) (*entity.State, error)
	Update(state *entity.State) (*entity.State, error)
	Delete(id uint) error
	// GetAll returns every state ordered by id.
	GetAll() ([]entity.State, error)
}
