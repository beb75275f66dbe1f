package db

import "todo-tracker/internal/domain/entity"

type StateGateway interface {
	Save(state entity.State) (*entity.State, error)
	FindByID(id uint) (*entity.State, error)
	FindByName(name string) (*entity.State, error)
	FindAll() ([]entity.State, error)
	// FindAllOrdered returns every state ordered by id ascending.
	FindAllOrdered() ([]entity.State, error)
	Delete(state entity.State) error
}
