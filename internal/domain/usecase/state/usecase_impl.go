package state

import (
	"strings"

	"go.uber.org/zap"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/model"
	"todo-tracker/pkg/log"
)

type stateUseCase struct {
	gateway db.StateGateway
}

func NewStateUseCase(gateway db.StateGateway) UseCase {
	return &stateUseCase{
		gateway: gateway,
	}
}

func (uc *stateUseCase) Create(state *entity.State) (*entity.State, error) {
	if state == nil {
		return nil, model.NewNullEntityError(model.EntityState)
	}
	if strings.TrimSpace(state.Name) == "" {
		return nil, model.NewEmptyNameError("state.error.empty-name")
	}

	created, err := uc.gateway.Save(entity.State{Name: state.Name})
	if err != nil {
		return nil, err
	}

	log.Info("Created state", zap.Uint("state_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (uc *stateUseCase) ReadByID(id uint) (*entity.State, error) {
	state, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, model.NewNotFoundByIDError(model.EntityState, id)
	}
	return state, nil
}

func (uc *stateUseCase) GetByName(name string) (*entity.State, error) {
	state, err := uc.gateway.FindByName(name)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, model.NewNotFoundByNameError(model.EntityState, name)
	}
	return state, nil
}

func (uc *stateUseCase) Update(state *entity.State) (*entity.State, error) {
	if state == nil {
		return nil, model.NewNullEntityError(model.EntityState)
	}
	if _, err := uc.ReadByID(state.ID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(state.Name) == "" {
		return nil, model.NewEmptyNameError("state.error.empty-name")
	}

	updated, err := uc.gateway.Save(*state)
	if err != nil {
		return nil, err
	}

	log.Info("Updated state", zap.Uint("state_id", updated.ID))
	return updated, nil
}

func (uc *stateUseCase) Delete(id uint) error {
	existing, err := uc.ReadByID(id)
	if err != nil {
		return err
	}
	if err := uc.gateway.Delete(*existing); err != nil {
		return err
	}

	log.Info("Deleted state", zap.Uint("state_id", id))
	return nil
}

func (uc *stateUseCase) GetAll() ([]entity.State, error) {
	states, err := uc.gateway.FindAllOrdered()
	if err != nil {
		return nil, err
	}
	if states == nil {
		return []entity.State{}, nil
	}
	return states, nil
}
