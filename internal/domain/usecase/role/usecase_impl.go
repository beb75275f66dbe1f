package role

import (
	"strings"

	"go.uber.org/zap"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/model"
	"todo-tracker/pkg/log"
)

type roleUseCase struct {
	gateway db.RoleGateway
}

func NewRoleUseCase(gateway db.RoleGateway) UseCase {
	return &roleUseCase{
		gateway: gateway,
	}
}

func (uc *roleUseCase) Create(role *entity.Role) (*entity.Role, error) {
	if role == nil {
		return nil, model.NewNullEntityError(model.EntityRole)
	}
	if strings.TrimSpace(role.Name) == "" {
		return nil, model.NewEmptyNameError("role.error.empty-name")
	}

	created, err := uc.gateway.Save(entity.Role{Name: role.Name})
	if err != nil {
		return nil, err
	}

	log.Info("Created role", zap.Uint("role_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (uc *roleUseCase) ReadByID(id uint) (*entity.Role, error) {
	role, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, model.NewNotFoundByIDError(model.EntityRole, id)
	}
	return role, nil
}

func (uc *roleUseCase) GetByName(name string) (*entity.Role, error) {
	role, err := uc.gateway.FindByName(name)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, model.NewNotFoundByNameError(model.EntityRole, name)
	}
	return role, nil
}

func (uc *roleUseCase) Update(role *entity.Role) (*entity.Role, error) {
	if role == nil {
		return nil, model.NewNullEntityError(model.EntityRole)
	}
	if _, err := uc.ReadByID(role.ID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(role.Name) == "" {
		return nil, model.NewEmptyNameError("role.error.empty-name")
	}

	updated, err := uc.gateway.Save(*role)
	if err != nil {
		return nil, err
	}

	log.Info("Updated role", zap.Uint("role_id", updated.ID))
	return updated, nil
}

func (uc *roleUseCase) Delete(id uint) error {
	existing, err := uc.ReadByID(id)
	if err != nil {
		return err
	}
	if err := uc.gateway.Delete(*existing); err != nil {
		return err
	}

	log.Info("Deleted role", zap.Uint("role_id", id))
	return nil
}

func (uc *roleUseCase) GetAll() ([]entity.Role, error) {
	roles, err := uc.gateway.FindAll()
	if err != nil {
		return nil, err
	}
	if roles == nil {
		return []entity.Role{}, nil
	}
	return roles, nil
}
