package todo

import "todo-tracker/internal/domain/entity"

type UseCase interface {
	Create(todo *entity.ToDo) (*entity.ToDo, error)
	ReadByID(id uint) (*entity.ToDo, error)
	// Update replaces the title only; owner, collaborators and creation time are kept.
	Update(todo *entity.ToDo) (*entity.ToDo, error)
	Delete(id uint) error
	GetAll() ([]entity.ToDo, error)
	// GetByUserID returns every list the user owns or collaborates on.
	GetByUserID(userID uint) ([]entity.ToDo, error)
	AddCollaborator(todoID uint, userID uint) (*entity.ToDo, error)
	RemoveCollaborator(todoID uint, userID uint) (*entity.ToDo, error)
}
