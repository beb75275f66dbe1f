package db

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"todo-tracker/internal/domain/entity"
)

type GormTaskGateway struct {
	DB *gorm.DB
}

var _ TaskGateway = (*GormTaskGateway)(nil)

func NewGormTaskGateway(db *gorm.DB) *GormTaskGateway {
	return &GormTaskGateway{DB: db}
}

func (gateway *GormTaskGateway) Save(task entity.Task) (*entity.Task, error) {
	if err := gateway.DB.Omit(clause.Associations).Save(&task).Error; err != nil {
		return nil, err
	}
	return gateway.FindByID(task.ID)
}

func (gateway *GormTaskGateway) FindByID(id uint) (*entity.Task, error) {
	var task entity.Task
	err := gateway.DB.Preload("State").First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (gateway *GormTaskGateway) FindAll() ([]entity.Task, error) {
	return gateway.find(gateway.DB)
}

func (gateway *GormTaskGateway) FindByTodoID(todoID uint) ([]entity.Task, error) {
	return gateway.find(gateway.DB.Where("todo_id = ?", todoID))
}

func (gateway *GormTaskGateway) FindByStateID(stateID uint) ([]entity.Task, error) {
	return gateway.find(gateway.DB.Where("state_id = ?", stateID))
}

func (gateway *GormTaskGateway) find(query *gorm.DB) ([]entity.Task, error) {
	tasks := make([]entity.Task, 0)
	if err := query.Preload("State").Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (gateway *GormTaskGateway) Delete(task entity.Task) error {
	return gateway.DB.Delete(&entity.Task{}, task.ID).Error
}

func (gateway *GormTaskGateway) DeleteOrphans() (int64, error) {
	existing := gateway.DB.Model(&entity.ToDo{}).Select("id")
	result := gateway.DB.Where("todo_id NOT IN (?)", existing).Delete(&entity.Task{})
	return result.RowsAffected, result.Error
}
