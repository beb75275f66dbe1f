package db

import (
	"errors"

	"gorm.io/gorm"
	"todo-tracker/internal/domain/entity"
)

type GormRoleGateway struct {
	DB *gorm.DB
}

var _ RoleGateway = (*GormRoleGateway)(nil)

func NewGormRoleGateway(db *gorm.DB) *GormRoleGateway {
	return &GormRoleGateway{DB: db}
}

func (gateway *GormRoleGateway) Save(role entity.Role) (*entity.Role, error) {
	if err := gateway.DB.Save(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (gateway *GormRoleGateway) FindByID(id uint) (*entity.Role, error) {
	var role entity.Role
	err := gateway.DB.First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (gateway *GormRoleGateway) FindByName(name string) (*entity.Role, error) {
	var role entity.Role
	err := gateway.DB.Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (gateway *GormRoleGateway) FindAll() ([]entity.Role, error) {
	roles := make([]entity.Role, 0)
	if err := gateway.DB.Order("id").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (gateway *GormRoleGateway) Delete(role entity.Role) error {
	return gateway.DB.Delete(&entity.Role{}, role.ID).Error
}
