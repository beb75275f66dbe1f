package role

import "todo-tracker/internal/domain/entity"

type UseCase interface {
	Create(role *entity.Role) (*entity.Role, error)
	ReadByID(id uint) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	Update(role *entity.Role) (*entity.Role, error)
	Delete(id uint) error
	GetAll() ([]entity.Role, error)
}
