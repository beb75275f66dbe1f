package model

type CreateUserDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// CreateUserByActorDTO is used by an existing user to create another account with a chosen role.
type CreateUserByActorDTO struct {
	CreateUserDTO
	ActorID uint `json:"actorId"`
	RoleID  uint `json:"roleId"`
}

// UpdateUserDTO carries the intended new values, not a diff. RoleID is only honored for privileged users.
type UpdateUserDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	RoleID    *uint  `json:"roleId"`
}
