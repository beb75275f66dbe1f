package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePermission(t *testing.T) {
	assert.Equal(t, PermissionUser, Role{Name: RoleUser}.Permission())
	assert.Equal(t, PermissionAdmin, Role{Name: RoleAdmin}.Permission())
	assert.True(t, Role{Name: "MANAGER"}.IsPrivileged())
	assert.False(t, Role{Name: RoleUser}.IsPrivileged())
}

func TestParsePriority(t *testing.T) {
	p, ok := ParsePriority(" medium ")
	assert.True(t, ok)
	assert.Equal(t, PriorityMedium, p)

	_, ok = ParsePriority("URGENT")
	assert.False(t, ok)
	assert.False(t, Priority("").IsValid())
}

func TestToDoMembership(t *testing.T) {
	todo := ToDo{OwnerID: 6, Collaborators: []User{{ID: 9}}}

	assert.True(t, todo.HasMember(6))
	assert.True(t, todo.HasMember(9))
	assert.False(t, todo.HasCollaborator(6))
	assert.False(t, todo.HasMember(10))
}
