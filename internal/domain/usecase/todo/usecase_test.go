package todo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/mocks"
	"todo-tracker/internal/domain/model"
)

type fixture struct {
	uc       UseCase
	todos    *mocks.ToDoGateway
	users    *mocks.UserGateway
	activity *mocks.ActivityGateway
}

func newFixture() fixture {
	f := fixture{
		todos:    &mocks.ToDoGateway{},
		users:    &mocks.UserGateway{},
		activity: &mocks.ActivityGateway{},
	}
	f.uc = NewToDoUseCase(f.todos, f.users, f.activity)
	return f
}

var (
	owner        = entity.User{ID: 6, FirstName: "Ann", Email: "ann@mail.com"}
	collaborator = entity.User{ID: 9, FirstName: "Bob", Email: "bob@mail.com"}
)

func TestCreate(t *testing.T) {
	t.Run("stores the list with its owner", func(t *testing.T) {
		f := newFixture()
		createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		f.users.On("FindByID", owner.ID).Return(&owner, nil)
		f.todos.On("Save", entity.ToDo{Title: "Groceries", CreatedAt: createdAt, OwnerID: owner.ID}).
			Return(&entity.ToDo{ID: 1, Title: "Groceries", CreatedAt: createdAt, OwnerID: owner.ID, Owner: owner}, nil)

		created, err := f.uc.Create(&entity.ToDo{Title: "Groceries", CreatedAt: createdAt, OwnerID: owner.ID})
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
		assert.Equal(t, owner.ID, created.Owner.ID)
		assert.Equal(t, []model.ActivityType{model.ActivityToDoCreated}, f.activity.Types())
		f.todos.AssertExpectations(t)
	})

	t.Run("defaults creation time", func(t *testing.T) {
		f := newFixture()
		before := time.Now().UTC()
		f.users.On("FindByID", owner.ID).Return(&owner, nil)
		f.todos.On("Save", mock.MatchedBy(func(todo entity.ToDo) bool {
			return !todo.CreatedAt.Before(before) && todo.CreatedAt.Location() == time.UTC
		})).Return(&entity.ToDo{ID: 2, OwnerID: owner.ID}, nil)

		_, err := f.uc.Create(&entity.ToDo{Title: "Chores", OwnerID: owner.ID})
		require.NoError(t, err)
		f.todos.AssertExpectations(t)
	})

	t.Run("collaborators in the payload are ignored", func(t *testing.T) {
		f := newFixture()
		f.users.On("FindByID", owner.ID).Return(&owner, nil)
		f.todos.On("Save", mock.MatchedBy(func(todo entity.ToDo) bool {
			return len(todo.Collaborators) == 0 && todo.ID == 0
		})).Return(&entity.ToDo{ID: 3, OwnerID: owner.ID}, nil)

		_, err := f.uc.Create(&entity.ToDo{ID: 77, OwnerID: owner.ID, Collaborators: []entity.User{collaborator}})
		require.NoError(t, err)
	})

	t.Run("null list", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.Create(nil)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
		assert.EqualError(t, err, "To-Do cannot be 'null'")
		assert.Empty(t, f.todos.Calls)
		assert.Empty(t, f.activity.Events)
	})

	t.Run("missing owner", func(t *testing.T) {
		f := newFixture()
		f.users.On("FindByID", uint(99)).Return(nil, nil)

		_, err := f.uc.Create(&entity.ToDo{Title: "Orphan", OwnerID: 99})
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.EqualError(t, err, "User with id 99 not found")
		f.todos.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("store failure is not published", func(t *testing.T) {
		f := newFixture()
		f.users.On("FindByID", owner.ID).Return(&owner, nil)
		f.todos.On("Save", mock.Anything).Return(nil, errors.New("connection reset"))

		_, err := f.uc.Create(&entity.ToDo{Title: "Groceries", OwnerID: owner.ID})
		assert.EqualError(t, err, "connection reset")
		assert.Empty(t, f.activity.Events)
	})

	t.Run("publish failure does not fail the write", func(t *testing.T) {
		f := newFixture()
		f.activity.Err = errors.New("queue down")
		f.users.On("FindByID", owner.ID).Return(&owner, nil)
		f.todos.On("Save", mock.Anything).Return(&entity.ToDo{ID: 4, OwnerID: owner.ID}, nil)

		created, err := f.uc.Create(&entity.ToDo{Title: "Groceries", OwnerID: owner.ID})
		require.NoError(t, err)
		assert.Equal(t, uint(4), created.ID)
		require.Len(t, f.activity.Events, 1)
		assert.NotEmpty(t, f.activity.Events[0].ID)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("replaces the title only", func(t *testing.T) {
		f := newFixture()
		createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		current := entity.ToDo{ID: 1, Title: "Groceries", CreatedAt: createdAt, OwnerID: owner.ID, Collaborators: []entity.User{collaborator}}
		expected := current
		expected.Title = "Weekly groceries"

		f.todos.On("FindByID", uint(1)).Return(&current, nil)
		f.todos.On("Save", expected).Return(&expected, nil)

		updated, err := f.uc.Update(&entity.ToDo{ID: 1, Title: "Weekly groceries", OwnerID: 42})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, updated.OwnerID)
		assert.Equal(t, createdAt, updated.CreatedAt)
		assert.Len(t, updated.Collaborators, 1)
		assert.Equal(t, []model.ActivityType{model.ActivityToDoUpdated}, f.activity.Types())
		f.todos.AssertExpectations(t)
	})

	t.Run("null list", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.Update(nil)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
		assert.Empty(t, f.todos.Calls)
	})

	t.Run("missing list", func(t *testing.T) {
		f := newFixture()
		f.todos.On("FindByID", uint(5)).Return(nil, nil)

		_, err := f.uc.Update(&entity.ToDo{ID: 5, Title: "Ghost"})
		assert.EqualError(t, err, "To-Do with id 5 not found")
		f.todos.AssertNotCalled(t, "Save", mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		f := newFixture()
		existing := entity.ToDo{ID: 1, OwnerID: owner.ID}
		f.todos.On("FindByID", uint(1)).Return(&existing, nil)
		f.todos.On("Delete", existing).Return(nil)

		require.NoError(t, f.uc.Delete(1))
		f.todos.AssertExpectations(t)
		assert.Equal(t, []model.ActivityType{model.ActivityToDoDeleted}, f.activity.Types())
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture()
		f.todos.On("FindByID", uint(2)).Return(nil, nil)

		err := f.uc.Delete(2)
		assert.ErrorIs(t, err, model.ErrNotFound)
		f.todos.AssertNotCalled(t, "Delete", mock.Anything)
		assert.Empty(t, f.activity.Events)
	})
}

func TestReadByID(t *testing.T) {
	f := newFixture()
	f.todos.On("FindByID", uint(3)).Return(nil, nil)

	_, err := f.uc.ReadByID(3)
	assert.EqualError(t, err, "To-Do with id 3 not found")
}

func TestGetAll(t *testing.T) {
	f := newFixture()
	f.todos.On("FindAll").Return(nil, nil)

	todos, err := f.uc.GetAll()
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestGetByUserID(t *testing.T) {
	t.Run("owned and shared without duplicates", func(t *testing.T) {
		f := newFixture()
		f.todos.On("FindByUserID", collaborator.ID).Return([]entity.ToDo{
			{ID: 1, OwnerID: owner.ID, Collaborators: []entity.User{collaborator}},
			{ID: 2, OwnerID: collaborator.ID},
			{ID: 1, OwnerID: owner.ID, Collaborators: []entity.User{collaborator}},
		}, nil)

		todos, err := f.uc.GetByUserID(collaborator.ID)
		require.NoError(t, err)
		require.Len(t, todos, 2)
		assert.Equal(t, uint(1), todos[0].ID)
		assert.Equal(t, uint(2), todos[1].ID)
	})

	t.Run("no lists", func(t *testing.T) {
		f := newFixture()
		f.todos.On("FindByUserID", uint(50)).Return(nil, nil)

		todos, err := f.uc.GetByUserID(50)
		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})
}

func TestCollaborators(t *testing.T) {
	t.Run("sharing a list makes it visible to both users", func(t *testing.T) {
		f := newFixture()
		before := entity.ToDo{ID: 1, OwnerID: owner.ID}
		after := entity.ToDo{ID: 1, OwnerID: owner.ID, Collaborators: []entity.User{collaborator}}

		f.todos.On("FindByID", uint(1)).Return(&before, nil).Once()
		f.todos.On("FindByID", uint(1)).Return(&after, nil).Once()
		f.users.On("FindByID", collaborator.ID).Return(&collaborator, nil)
		f.todos.On("AddCollaborator", uint(1), collaborator.ID).Return(nil).Once()
		f.todos.On("FindByUserID", owner.ID).Return([]entity.ToDo{after}, nil)
		f.todos.On("FindByUserID", collaborator.ID).Return([]entity.ToDo{after}, nil)

		shared, err := f.uc.AddCollaborator(1, collaborator.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, shared.OwnerID)
		assert.True(t, shared.HasCollaborator(collaborator.ID))

		ownerLists, err := f.uc.GetByUserID(owner.ID)
		require.NoError(t, err)
		collaboratorLists, err := f.uc.GetByUserID(collaborator.ID)
		require.NoError(t, err)
		assert.Equal(t, ownerLists, collaboratorLists)
		assert.Equal(t, []model.ActivityType{model.ActivityCollaboratorAdded}, f.activity.Types())
	})

	t.Run("adding twice is a no-op", func(t *testing.T) {
		f := newFixture()
		shared := entity.ToDo{ID: 1, OwnerID: owner.ID, Collaborators: []entity.User{collaborator}}
		f.todos.On("FindByID", uint(1)).Return(&shared, nil)
		f.users.On("FindByID", collaborator.ID).Return(&collaborator, nil)

		result, err := f.uc.AddCollaborator(1, collaborator.ID)
		require.NoError(t, err)
		assert.Len(t, result.Collaborators, 1)
		f.todos.AssertNotCalled(t, "AddCollaborator", mock.Anything, mock.Anything)
		assert.Empty(t, f.activity.Events)
	})

	t.Run("owner is never added as collaborator", func(t *testing.T) {
		f := newFixture()
		list := entity.ToDo{ID: 1, OwnerID: owner.ID}
		f.todos.On("FindByID", uint(1)).Return(&list, nil)
		f.users.On("FindByID", owner.ID).Return(&owner, nil)

		result, err := f.uc.AddCollaborator(1, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, result.Collaborators)
		f.todos.AssertNotCalled(t, "AddCollaborator", mock.Anything, mock.Anything)
	})

	t.Run("missing list", func(t *testing.T) {
		f := newFixture()
		f.todos.On("FindByID", uint(8)).Return(nil, nil)

		_, err := f.uc.AddCollaborator(8, collaborator.ID)
		assert.EqualError(t, err, "To-Do with id 8 not found")
		f.users.AssertNotCalled(t, "FindByID", mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture()
		f.todos.On("FindByID", uint(1)).Return(&entity.ToDo{ID: 1, OwnerID: owner.ID}, nil)
		f.users.On("FindByID", uint(70)).Return(nil, nil)

		_, err := f.uc.AddCollaborator(1, 70)
		assert.EqualError(t, err, "User with id 70 not found")
		f.todos.AssertNotCalled(t, "AddCollaborator", mock.Anything, mock.Anything)
	})

	t.Run("removing keeps the owner", func(t *testing.T) {
		f := newFixture()
		shared := entity.ToDo{ID: 1, OwnerID: owner.ID, Collaborators: []entity.User{collaborator}}
		unshared := entity.ToDo{ID: 1, OwnerID: owner.ID}
		f.todos.On("FindByID", uint(1)).Return(&shared, nil).Once()
		f.todos.On("FindByID", uint(1)).Return(&unshared, nil).Once()
		f.todos.On("RemoveCollaborator", uint(1), collaborator.ID).Return(nil).Once()

		result, err := f.uc.RemoveCollaborator(1, collaborator.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, result.OwnerID)
		assert.Empty(t, result.Collaborators)
		assert.Equal(t, []model.ActivityType{model.ActivityCollaboratorRemoved}, f.activity.Types())
	})

	t.Run("removing a non collaborator is a no-op", func(t *testing.T) {
		f := newFixture()
		f.todos.On("FindByID", uint(1)).Return(&entity.ToDo{ID: 1, OwnerID: owner.ID}, nil)

		_, err := f.uc.RemoveCollaborator(1, owner.ID)
		require.NoError(t, err)
		f.todos.AssertNotCalled(t, "RemoveCollaborator", mock.Anything, mock.Anything)
		assert.Empty(t, f.activity.Events)
	})

	t.Run("removing from a missing list", func(t *testing.T) {
		f := newFixture()
		f.todos.On("FindByID", uint(8)).Return(nil, nil)

		_, err := f.uc.RemoveCollaborator(8, collaborator.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
