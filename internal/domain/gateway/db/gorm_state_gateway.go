package db

import (
	"errors"

	"gorm.io/gorm"
	"todo-tracker/internal/domain/entity"
)

type GormStateGateway struct {
	DB *gorm.DB
}

var _ StateGateway = (*GormStateGateway)(nil)

func NewGormStateGateway(db *gorm.DB) *GormStateGateway {
	return &GormStateGateway{DB: db}
}

func (gateway *GormStateGateway) Save(state entity.State) (*entity.State, error) {
	if err := gateway.DB.Save(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

func (gateway *GormStateGateway) FindByID(id uint) (*entity.State, error) {
	var state entity.State
	err := gateway.DB.First(&state, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (gateway *GormStateGateway) FindByName(name string) (*entity.State, error) {
	var state entity.State
	err := gateway.DB.Where("name = ?", name).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (gateway *GormStateGateway) FindAll() ([]entity.State, error) {
	states := make([]entity.State, 0)
	if err := gateway.DB.Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func (gateway *GormStateGateway) FindAllOrdered() ([]entity.State, error) {
	states := make([]entity.State, 0)
	if err := gateway.DB.Order("id ASC").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func (gateway *GormStateGateway) Delete(state entity.State) error {
	return gateway.DB.Delete(&entity.State{}, state.ID).Error
}
