package user

import (
	"go.uber.org/zap"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/role"
	"todo-tracker/pkg/log"
)

type userUseCase struct {
	gateway db.UserGateway
	roles   role.UseCase
}

func NewUserUseCase(gateway db.UserGateway, roles role.UseCase) UseCase {
	return &userUseCase{
		gateway: gateway,
		roles:   roles,
	}
}

func (uc *userUseCase) Create(user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, model.NewNullEntityError(model.EntityUser)
	}

	defaultRole, err := uc.roles.GetByName(entity.RoleUser)
	if err != nil {
		return nil, err
	}
	return uc.insert(*user, *defaultRole)
}

func (uc *userUseCase) CreateByActor(actorID uint, user *entity.User, roleID uint) (*entity.User, error) {
	if user == nil {
		return nil, model.NewNullEntityError(model.EntityUser)
	}

	actor, err := uc.ReadByID(actorID)
	if err != nil {
		return nil, err
	}
	actorRole, err := uc.roles.ReadByID(actor.RoleID)
	if err != nil {
		return nil, err
	}

	var assigned *entity.Role
	if actorRole.IsPrivileged() && roleID != 0 {
		assigned, err = uc.roles.ReadByID(roleID)
	} else {
		assigned, err = uc.roles.GetByName(entity.RoleUser)
	}
	if err != nil {
		return nil, err
	}
	return uc.insert(*user, *assigned)
}

func (uc *userUseCase) insert(user entity.User, assigned entity.Role) (*entity.User, error) {
	user.ID = 0
	user.RoleID = assigned.ID
	user.Role = assigned

	created, err := uc.gateway.Save(user)
	if err != nil {
		return nil, err
	}

	log.Info("Created user", zap.Uint("user_id", created.ID), zap.String("role", assigned.Name))
	return created, nil
}

func (uc *userUseCase) ReadByID(id uint) (*entity.User, error) {
	user, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.NewNotFoundByIDError(model.EntityUser, id)
	}
	return user, nil
}

func (uc *userUseCase) Update(user *entity.User, requestedRoleID *uint) (*entity.User, error) {
	if user == nil {
		return nil, model.NewNullEntityError(model.EntityUser)
	}

	current, err := uc.ReadByID(user.ID)
	if err != nil {
		return nil, err
	}
	currentRole, err := uc.roles.ReadByID(current.RoleID)
	if err != nil {
		return nil, err
	}

	updated := *user
	updated.RoleID = currentRole.ID
	updated.Role = *currentRole

	if requestedRoleID != nil && *requestedRoleID != currentRole.ID {
		if currentRole.IsPrivileged() {
			requested, err := uc.roles.ReadByID(*requestedRoleID)
			if err != nil {
				return nil, err
			}
			updated.RoleID = requested.ID
			updated.Role = *requested
		} else {
			log.Info("Discarded role change requested by unprivileged user",
				zap.Uint("user_id", current.ID),
				zap.Uint("requested_role_id", *requestedRoleID))
		}
	}

	saved, err := uc.gateway.Save(updated)
	if err != nil {
		return nil, err
	}

	log.Info("Updated user", zap.Uint("user_id", saved.ID))
	return saved, nil
}

func (uc *userUseCase) Delete(id uint) error {
	existing, err := uc.ReadByID(id)
	if err != nil {
		return err
	}
	if err := uc.gateway.Delete(*existing); err != nil {
		return err
	}

	log.Info("Deleted user", zap.Uint("user_id", id))
	return nil
}

func (uc *userUseCase) GetAll() ([]entity.User, error) {
	users, err := uc.gateway.FindAll()
	if err != nil {
		return nil, err
	}
	if users == nil {
		return []entity.User{}, nil
	}
	return users, nil
}

func (uc *userUseCase) GetUserByEmail(email string) (*entity.User, error) {
	return uc.gateway.FindByEmail(email)
}
