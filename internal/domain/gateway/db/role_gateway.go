package db

import "todo-tracker/internal/domain/entity"

type RoleGateway interface {
	Save(role entity.Role) (*entity.Role, error)
	FindByID(id uint) (*entity.Role, error)
	FindByName(name string) (*entity.Role, error)
	FindAll() ([]entity.Role, error)
	Delete(role entity.Role) error
}
