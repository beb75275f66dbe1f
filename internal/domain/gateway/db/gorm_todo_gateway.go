package db

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"todo-tracker/internal/domain/entity"
)

type GormToDoGateway struct {
	DB *gorm.DB
}

var _ ToDoGateway = (*GormToDoGateway)(nil)

func NewGormToDoGateway(db *gorm.DB) *GormToDoGateway {
	return &GormToDoGateway{DB: db}
}

func (gateway *GormToDoGateway) withMembers() *gorm.DB {
	return gateway.DB.Preload("Owner.Role").Preload("Collaborators.Role")
}

// Save writes the list row only. Collaborators change through AddCollaborator and RemoveCollaborator.
func (gateway *GormToDoGateway) Save(todo entity.ToDo) (*entity.ToDo, error) {
	if err := gateway.DB.Omit(clause.Associations).Save(&todo).Error; err != nil {
		return nil, err
	}
	return gateway.FindByID(todo.ID)
}

func (gateway *GormToDoGateway) FindByID(id uint) (*entity.ToDo, error) {
	var todo entity.ToDo
	err := gateway.withMembers().First(&todo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormToDoGateway) FindAll() ([]entity.ToDo, error) {
	todos := make([]entity.ToDo, 0)
	if err := gateway.withMembers().Order("id").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormToDoGateway) FindByUserID(userID uint) ([]entity.ToDo, error) {
	shared := gateway.DB.Model(&collaboration{}).Select("todo_id").Where("collaborator_id = ?", userID)

	todos := make([]entity.ToDo, 0)
	err := gateway.withMembers().
		Where("owner_id = ?", userID).
		Or("id IN (?)", shared).
		Order("id").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormToDoGateway) AddCollaborator(todoID uint, userID uint) error {
	return gateway.DB.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&collaboration{TodoID: todoID, CollaboratorID: userID}).Error
}

func (gateway *GormToDoGateway) RemoveCollaborator(todoID uint, userID uint) error {
	return gateway.DB.
		Where("todo_id = ? AND collaborator_id = ?", todoID, userID).
		Delete(&collaboration{}).Error
}

// Delete removes the list and its collaborations. Tasks are left for the orphan cleanup.
func (gateway *GormToDoGateway) Delete(todo entity.ToDo) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", todo.ID).Delete(&collaboration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.ToDo{}, todo.ID).Error
	})
}
