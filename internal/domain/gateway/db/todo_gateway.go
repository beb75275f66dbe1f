package db

import "todo-tracker/internal/domain/entity"

// ToDoGateway loads lists together with their owner and collaborators.
type ToDoGateway interface {
	Save(todo entity.ToDo) (*entity.ToDo, error)
	FindByID(id uint) (*entity.ToDo, error)
	FindAll() ([]entity.ToDo, error)
	// FindByUserID returns the lists owned by or shared with the user, without duplicates.
	FindByUserID(userID uint) ([]entity.ToDo, error)
	AddCollaborator(todoID uint, userID uint) error
	RemoveCollaborator(todoID uint, userID uint) error
	Delete(todo entity.ToDo) error
}
