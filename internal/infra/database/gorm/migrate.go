package gorm

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/pkg/log"
)

var (
	seedRoles  = []string{entity.RoleAdmin, entity.RoleUser}
	seedStates = []string{entity.DefaultStateName, "Doing", "Verify", "Done"}
)

// Migrate creates or updates the tables of every entity, the collaborator join table included.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Role{}, &entity.State{}, &entity.User{}, &entity.ToDo{}, &entity.Task{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Seed inserts the built-in roles and states that are missing. Safe to run on every start.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range seedRoles {
			role := entity.Role{}
			if err := tx.Where(entity.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
				return fmt.Errorf("failed to seed role %s: %w", name, err)
			}
			log.Debug("Seeded role", zap.Uint("role_id", role.ID), zap.String("name", name))
		}
		for _, name := range seedStates {
			state := entity.State{}
			if err := tx.Where(entity.State{Name: name}).FirstOrCreate(&state).Error; err != nil {
				return fmt.Errorf("failed to seed state %s: %w", name, err)
			}
			log.Debug("Seeded state", zap.Uint("state_id", state.ID), zap.String("name", name))
		}
		return nil
	})
}
