package entity

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Permission is the elevation level granted by a Role.
type Permission int

const (
	PermissionUser Permission = iota
	PermissionAdmin
)

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

// Permission resolves the elevation level of the role. Only the USER tag is unprivileged.
func (r Role) Permission() Permission {
	if r.Name == RoleUser {
		return PermissionUser
	}
	return PermissionAdmin
}

func (r Role) IsPrivileged() bool {
	return r.Permission() == PermissionAdmin
}
