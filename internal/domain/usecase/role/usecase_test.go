package role

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/mocks"
	"todo-tracker/internal/domain/model"
)

func newUseCase() (UseCase, *mocks.RoleGateway) {
	gateway := &mocks.RoleGateway{}
	return NewRoleUseCase(gateway), gateway
}

func TestCreate(t *testing.T) {
	t.Run("assigns identity", func(t *testing.T) {
		uc, gateway := newUseCase()
		gateway.On("Save", entity.Role{Name: "ADMIN"}).Return(&entity.Role{ID: 1, Name: "ADMIN"}, nil)

		created, err := uc.Create(&entity.Role{Name: "ADMIN"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
		assert.Equal(t, "ADMIN", created.Name)
		gateway.AssertExpectations(t)
	})

	t.Run("null role", func(t *testing.T) {
		uc, gateway := newUseCase()

		created, err := uc.Create(nil)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
		assert.EqualError(t, err, "Role cannot be 'null'")
		gateway.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("empty name", func(t *testing.T) {
		uc, gateway := newUseCase()

		_, err := uc.Create(&entity.Role{Name: "  "})
		assert.ErrorIs(t, err, model.ErrInvalidArgument)
		gateway.AssertNotCalled(t, "Save", mock.Anything)
	})
}

func TestReadByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc, gateway := newUseCase()
		gateway.On("FindByID", uint(2)).Return(&entity.Role{ID: 2, Name: "USER"}, nil)

		role, err := uc.ReadByID(2)
		require.NoError(t, err)
		assert.Equal(t, "USER", role.Name)
	})

	t.Run("not found", func(t *testing.T) {
		uc, gateway := newUseCase()
		gateway.On("FindByID", uint(5)).Return(nil, nil)

		_, err := uc.ReadByID(5)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.EqualError(t, err, "Role with id 5 not found")
	})

	t.Run("store failure propagates", func(t *testing.T) {
		uc, gateway := newUseCase()
		storeErr := errors.New("connection refused")
		gateway.On("FindByID", uint(5)).Return(nil, storeErr)

		_, err := uc.ReadByID(5)
		assert.Same(t, storeErr, err)
	})
}

func TestGetByName(t *testing.T) {
	uc, gateway := newUseCase()
	gateway.On("FindByName", "GUEST").Return(nil, nil)

	_, err := uc.GetByName("GUEST")
	assert.EqualError(t, err, "Role with name 'GUEST' not found")
}

func TestUpdate(t *testing.T) {
	t.Run("replaces name", func(t *testing.T) {
		uc, gateway := newUseCase()
		gateway.On("FindByID", uint(3)).Return(&entity.Role{ID: 3, Name: "MANAGER"}, nil)
		gateway.On("Save", entity.Role{ID: 3, Name: "LEAD"}).Return(&entity.Role{ID: 3, Name: "LEAD"}, nil)

		updated, err := uc.Update(&entity.Role{ID: 3, Name: "LEAD"})
		require.NoError(t, err)
		assert.Equal(t, "LEAD", updated.Name)
		gateway.AssertExpectations(t)
	})

	t.Run("null role touches nothing", func(t *testing.T) {
		uc, gateway := newUseCase()

		_, err := uc.Update(nil)
		assert.EqualError(t, err, "Role cannot be 'null'")
		assert.Empty(t, gateway.Calls)
	})

	t.Run("missing role is not written", func(t *testing.T) {
		uc, gateway := newUseCase()
		gateway.On("FindByID", uint(3)).Return(nil, nil)

		_, err := uc.Update(&entity.Role{ID: 3, Name: "LEAD"})
		assert.EqualError(t, err, "Role with id 3 not found")
		gateway.AssertNotCalled(t, "Save", mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		uc, gateway := newUseCase()
		gateway.On("FindByID", uint(3)).Return(&entity.Role{ID: 3, Name: "MANAGER"}, nil)
		gateway.On("Delete", entity.Role{ID: 3, Name: "MANAGER"}).Return(nil)

		require.NoError(t, uc.Delete(3))
		gateway.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		uc, gateway := newUseCase()
		gateway.On("FindByID", uint(3)).Return(nil, nil)

		err := uc.Delete(3)
		assert.EqualError(t, err, "Role with id 3 not found")
		gateway.AssertNotCalled(t, "Delete", mock.Anything)
	})
}

func TestGetAll(t *testing.T) {
	uc, gateway := newUseCase()
	gateway.On("FindAll").Return(nil, nil)

	roles, err := uc.GetAll()
	require.NoError(t, err)
	assert.NotNil(t, roles)
	assert.Empty(t, roles)
}
