package user

import "todo-tracker/internal/domain/entity"

type UseCase interface {
	// Create registers a new user. The stored role is always USER.
	Create(user *entity.User) (*entity.User, error)
	// CreateByActor creates a user on behalf of an existing one. The requested role
	// is only applied when the actor holds a privileged role.
	CreateByActor(actorID uint, user *entity.User, roleID uint) (*entity.User, error)
	ReadByID(id uint) (*entity.User, error)
	// Update stores the given values. The requested role is discarded unless the
	// user's current role is privileged.
	Update(user *entity.User, requestedRoleID *uint) (*entity.User, error)
	Delete(id uint) error
	GetAll() ([]entity.User, error)
	// GetUserByEmail returns nil without error when no user has the email.
	GetUserByEmail(email string) (*entity.User, error)
}
