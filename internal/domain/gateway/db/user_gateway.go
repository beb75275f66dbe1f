package db

import "todo-tracker/internal/domain/entity"

// UserGateway loads users together with their role.
type UserGateway interface {
	Save(user entity.User) (*entity.User, error)
	FindByID(id uint) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindAll() ([]entity.User, error)
	Delete(user entity.User) error
}
