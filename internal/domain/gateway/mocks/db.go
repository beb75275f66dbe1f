// Package mocks provides testify mocks for the gateway interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/db"
)

func result[T any](args mock.Arguments) (*T, error) {
	value, _ := args.Get(0).(*T)
	return value, args.Error(1)
}

func results[T any](args mock.Arguments) ([]T, error) {
	values, _ := args.Get(0).([]T)
	return values, args.Error(1)
}

type RoleGateway struct {
	mock.Mock
}

var _ db.RoleGateway = (*RoleGateway)(nil)

func (m *RoleGateway) Save(role entity.Role) (*entity.Role, error) {
	return result[entity.Role](m.Called(role))
}

func (m *RoleGateway) FindByID(id uint) (*entity.Role, error) {
	return result[entity.Role](m.Called(id))
}

func (m *RoleGateway) FindByName(name string) (*entity.Role, error) {
	return result[entity.Role](m.Called(name))
}

func (m *RoleGateway) FindAll() ([]entity.Role, error) {
	return results[entity.Role](m.Called())
}

func (m *RoleGateway) Delete(role entity.Role) error {
	return m.Called(role).Error(0)
}

type StateGateway struct {
	mock.Mock
}

var _ db.StateGateway = (*StateGateway)(nil)

func (m *StateGateway) Save(state entity.State) (*entity.State, error) {
	return result[entity.State](m.Called(state))
}

func (m *StateGateway) FindByID(id uint) (*entity.State, error) {
	return result[entity.State](m.Called(id))
}

func (m *StateGateway) FindByName(name string) (*entity.State, error) {
	return result[entity.State](m.Called(name))
}

func (m *StateGateway) FindAll() ([]entity.State, error) {
	return results[entity.State](m.Called())
}

func (m *StateGateway) FindAllOrdered() ([]entity.State, error) {
	return results[entity.State](m.Called())
}

func (m *StateGateway) Delete(state entity.State) error {
	return m.Called(state).Error(0)
}

type UserGateway struct {
	mock.Mock
}

var _ db.UserGateway = (*UserGateway)(nil)

func (m *UserGateway) Save(user entity.User) (*entity.User, error) {
	return result[entity.User](m.Called(user))
}

func (m *UserGateway) FindByID(id uint) (*entity.User, error) {
	return result[entity.User](m.Called(id))
}

func (m *UserGateway) FindByEmail(email string) (*entity.User, error) {
	return result[entity.User](m.Called(email))
}

func (m *UserGateway) FindAll() ([]entity.User, error) {
	return results[entity.User](m.Called())
}

func (m *UserGateway) Delete(user entity.User) error {
	return m.Called(user).Error(0)
}

type ToDoGateway struct {
	mock.Mock
}

var _ db.ToDoGateway = (*ToDoGateway)(nil)

func (m *ToDoGateway) Save(todo entity.ToDo) (*entity.ToDo, error) {
	return result[entity.ToDo](m.Called(todo))
}

func (m *ToDoGateway) FindByID(id uint) (*entity.ToDo, error) {
	return result[entity.ToDo](m.Called(id))
}

func (m *ToDoGateway) FindAll() ([]entity.ToDo, error) {
	return results[entity.ToDo](m.Called())
}

func (m *ToDoGateway) FindByUserID(userID uint) ([]entity.ToDo, error) {
	return results[entity.ToDo](m.Called(userID))
}

func (m *ToDoGateway) AddCollaborator(todoID uint, userID uint) error {
	return m.Called(todoID, userID).Error(0)
}

func (m *ToDoGateway) RemoveCollaborator(todoID uint, userID uint) error {
	return m.Called(todoID, userID).Error(0)
}

func (m *ToDoGateway) Delete(todo entity.ToDo) error {
	return m.Called(todo).Error(0)
}

type TaskGateway struct {
	mock.Mock
}

var _ db.TaskGateway = (*TaskGateway)(nil)

func (m *TaskGateway) Save(task entity.Task) (*entity.Task, error) {
	return result[entity.Task](m.Called(task))
}

func (m *TaskGateway) FindByID(id uint) (*entity.Task, error) {
	return result[entity.Task](m.Called(id))
}

func (m *TaskGateway) FindAll() ([]entity.Task, error) {
	return results[entity.Task](m.Called())
}

func (m *TaskGateway) FindByTodoID(todoID uint) ([]entity.Task, error) {
	return results[entity.Task](m.Called(todoID))
}

func (m *TaskGateway) FindByStateID(stateID uint) ([]entity.Task, error) {
	return results[entity.Task](m.Called(stateID))
}

func (m *TaskGateway) Delete(task entity.Task) error {
	return m.Called(task).Error(0)
}

func (m *TaskGateway) DeleteOrphans() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
