package db

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"todo-tracker/internal/domain/entity"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

// Save writes the user row only; the role is referenced through RoleID.
func (gateway *GormUserGateway) Save(user entity.User) (*entity.User, error) {
	if err := gateway.DB.Omit(clause.Associations).Save(&user).Error; err != nil {
		return nil, err
	}
	return gateway.FindByID(user.ID)
}

func (gateway *GormUserGateway) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.Preload("Role").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.Preload("Role").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) FindAll() ([]entity.User, error) {
	users := make([]entity.User, 0)
	if err := gateway.DB.Preload("Role").Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user and the collaborations pointing at it.
func (gateway *GormUserGateway) Delete(user entity.User) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collaborator_id = ?", user.ID).Delete(&collaboration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.User{}, user.ID).Error
	})
}
