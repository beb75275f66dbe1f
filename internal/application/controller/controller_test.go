package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/mocks"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/health"
	"todo-tracker/internal/domain/usecase/role"
	"todo-tracker/internal/domain/usecase/state"
	"todo-tracker/internal/domain/usecase/task"
	"todo-tracker/internal/domain/usecase/todo"
	"todo-tracker/internal/domain/usecase/user"
)

var (
	adminRole = entity.Role{ID: 1, Name: entity.RoleAdmin}
	userRole  = entity.Role{ID: 2, Name: entity.RoleUser}
	stateNew  = entity.State{ID: 1, Name: entity.DefaultStateName}
)

type server struct {
	echo     *echo.Echo
	roles    *mocks.RoleGateway
	states   *mocks.StateGateway
	users    *mocks.UserGateway
	todos    *mocks.ToDoGateway
	tasks    *mocks.TaskGateway
	activity *mocks.ActivityGateway
}

func newServer() *server {
	s := &server{
		echo:     echo.New(),
		roles:    &mocks.RoleGateway{},
		states:   &mocks.StateGateway{},
		users:    &mocks.UserGateway{},
		todos:    &mocks.ToDoGateway{},
		tasks:    &mocks.TaskGateway{},
		activity: &mocks.ActivityGateway{},
	}
	api := s.echo.Group("/api")

	roleUseCase := role.NewRoleUseCase(s.roles)
	stateUseCase := state.NewStateUseCase(s.states)
	NewRoleController(api, roleUseCase).InitRoleRoutes()
	NewStateController(api, stateUseCase).InitStateRoutes()
	NewUserController(api, user.NewUserUseCase(s.users, roleUseCase)).InitUserRoutes()
	NewToDoController(api, todo.NewToDoUseCase(s.todos, s.users, s.activity)).InitToDoRoutes()
	NewTaskController(api, task.NewTaskUseCase(s.tasks, s.todos, stateUseCase, s.activity)).InitTaskRoutes()
	return s
}

func (s *server) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value))
	return value
}

func TestUserRoutes(t *testing.T) {
	t.Run("register assigns USER and hides the password", func(t *testing.T) {
		s := newServer()
		s.roles.On("FindByName", entity.RoleUser).Return(&userRole, nil)
		s.users.On("Save", mock.MatchedBy(func(u entity.User) bool {
			return u.Email == "sara@mail.com" && u.RoleID == userRole.ID
		})).Return(&entity.User{ID: 10, FirstName: "Sara", LastName: "Black", Email: "sara@mail.com", Password: "0000", RoleID: userRole.ID, Role: userRole}, nil)

		rec := s.do(http.MethodPost, "/api/users",
			`{"firstName":"Sara","lastName":"Black","email":"sara@mail.com","password":"0000","roleId":1}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		created := decode[map[string]any](t, rec)
		assert.Equal(t, float64(userRole.ID), created["roleId"])
		assert.NotContains(t, created, "password")
	})

	t.Run("unprivileged update keeps the role", func(t *testing.T) {
		s := newServer()
		s.users.On("FindByID", uint(4)).Return(&entity.User{ID: 4, RoleID: userRole.ID, Role: userRole}, nil)
		s.roles.On("FindByID", userRole.ID).Return(&userRole, nil)
		s.users.On("Save", mock.MatchedBy(func(u entity.User) bool {
			return u.ID == 4 && u.RoleID == userRole.ID
		})).Return(&entity.User{ID: 4, FirstName: "Nick", RoleID: userRole.ID, Role: userRole}, nil)

		rec := s.do(http.MethodPut, "/api/users/4", `{"firstName":"Nick","roleId":1}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(userRole.ID), decode[map[string]any](t, rec)["roleId"])
		s.users.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		s := newServer()
		s.users.On("FindByID", uint(100)).Return(nil, nil)

		rec := s.do(http.MethodDelete, "/api/users/100", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User with id 100 not found", decode[ErrorResponse](t, rec).Error)
		s.users.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("invalid id", func(t *testing.T) {
		s := newServer()

		rec := s.do(http.MethodGet, "/api/users/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid identifier 'abc'", decode[ErrorResponse](t, rec).Error)
	})

	t.Run("unknown email", func(t *testing.T) {
		s := newServer()
		s.users.On("FindByEmail", "nobody@mail.com").Return(nil, nil)

		rec := s.do(http.MethodGet, "/api/users/email/nobody@mail.com", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User with email 'nobody@mail.com' not found", decode[ErrorResponse](t, rec).Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newServer()

		rec := s.do(http.MethodPost, "/api/users", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, s.users.Calls)
	})

	t.Run("store failure", func(t *testing.T) {
		s := newServer()
		s.users.On("FindAll").Return(nil, errors.New("connection reset"))

		rec := s.do(http.MethodGet, "/api/users", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestToDoRoutes(t *testing.T) {
	t.Run("add collaborator", func(t *testing.T) {
		s := newServer()
		collaborator := entity.User{ID: 9}
		s.todos.On("FindByID", uint(1)).Return(&entity.ToDo{ID: 1, OwnerID: 6}, nil).Once()
		s.todos.On("FindByID", uint(1)).Return(&entity.ToDo{ID: 1, OwnerID: 6, Collaborators: []entity.User{collaborator}}, nil).Once()
		s.users.On("FindByID", uint(9)).Return(&collaborator, nil)
		s.todos.On("AddCollaborator", uint(1), uint(9)).Return(nil)

		rec := s.do(http.MethodPost, "/api/todos/1/collaborators?user_id=9", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		shared := decode[entity.ToDo](t, rec)
		assert.True(t, shared.HasCollaborator(9))
		assert.Equal(t, []model.ActivityType{model.ActivityCollaboratorAdded}, s.activity.Types())
	})

	t.Run("collaborator id is required", func(t *testing.T) {
		s := newServer()

		rec := s.do(http.MethodDelete, "/api/todos/1/collaborators", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, s.todos.Calls)
	})

	t.Run("lists of a user", func(t *testing.T) {
		s := newServer()
		s.todos.On("FindByUserID", uint(6)).Return(nil, nil)

		rec := s.do(http.MethodGet, "/api/todos/users/6", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("create for a missing owner", func(t *testing.T) {
		s := newServer()
		s.users.On("FindByID", uint(99)).Return(nil, nil)

		rec := s.do(http.MethodPost, "/api/todos", `{"title":"Groceries","ownerId":99}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTaskRoutes(t *testing.T) {
	t.Run("create in the default state", func(t *testing.T) {
		s := newServer()
		s.todos.On("FindByID", uint(3)).Return(&entity.ToDo{ID: 3}, nil)
		s.states.On("FindByName", entity.DefaultStateName).Return(&stateNew, nil)
		s.tasks.On("Save", mock.Anything).Return(&entity.Task{ID: 5, Name: "Buy milk", Priority: entity.PriorityHigh, StateID: stateNew.ID, State: stateNew, TodoID: 3}, nil)

		rec := s.do(http.MethodPost, "/api/tasks/todos/3", `{"name":"Buy milk","priority":"HIGH"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "New", decode[entity.Task](t, rec).State.Name)
	})

	t.Run("invalid priority", func(t *testing.T) {
		s := newServer()

		rec := s.do(http.MethodPost, "/api/tasks/todos/3", `{"name":"Buy milk","priority":"URGENT"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Priority 'URGENT' is not valid", decode[ErrorResponse](t, rec).Error)
	})

	t.Run("unknown list has no tasks", func(t *testing.T) {
		s := newServer()
		s.tasks.On("FindByTodoID", uint(404)).Return(nil, nil)

		rec := s.do(http.MethodGet, "/api/tasks/todos/404", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestRoleAndStateRoutes(t *testing.T) {
	t.Run("empty role name", func(t *testing.T) {
		s := newServer()

		rec := s.do(http.MethodPost, "/api/roles", `{"name":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, s.roles.Calls)
	})

	t.Run("state by name", func(t *testing.T) {
		s := newServer()
		s.states.On("FindByName", "Doing").Return(nil, nil)

		rec := s.do(http.MethodGet, "/api/states/name/Doing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "State with name 'Doing' not found", decode[ErrorResponse](t, rec).Error)
	})
}

type healthGateway model.ComponentHealthStatus

func (g healthGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus(g)
}

func TestHealthRoute(t *testing.T) {
	up := healthGateway(model.UpStatus())
	down := healthGateway(model.DownStatus(errors.New("connection refused")))

	e := echo.New()
	NewHealthController(e.Group("/api"), health.NewHealthUseCase(up, down, up)).InitHealthRoutes()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	response := decode[model.HealthResponse](t, rec)
	assert.Equal(t, model.StatusDown, response.Status)
	assert.Equal(t, model.StatusDown, response.Redis.Status)
}
