package todo

import (
	"time"

	"go.uber.org/zap"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/gateway/queue"
	"todo-tracker/internal/domain/model"
	"todo-tracker/pkg/log"
)

type todoUseCase struct {
	gateway  db.ToDoGateway
	users    db.UserGateway
	activity queue.ActivityGateway
}

func NewToDoUseCase(gateway db.ToDoGateway, users db.UserGateway, activity queue.ActivityGateway) UseCase {
	return &todoUseCase{
		gateway:  gateway,
		users:    users,
		activity: activity,
	}
}

func (uc *todoUseCase) Create(todo *entity.ToDo) (*entity.ToDo, error) {
	if todo == nil {
		return nil, model.NewNullEntityError(model.EntityToDo)
	}
	if _, err := uc.findUser(todo.OwnerID); err != nil {
		return nil, err
	}

	createdAt := todo.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	created, err := uc.gateway.Save(entity.ToDo{
		Title:     todo.Title,
		CreatedAt: createdAt,
		OwnerID:   todo.OwnerID,
	})
	if err != nil {
		return nil, err
	}

	log.Info("Created to-do", zap.Uint("todo_id", created.ID), zap.Uint("owner_id", created.OwnerID))
	queue.PublishQuietly(uc.activity, model.ActivityEvent{
		Type:   model.ActivityToDoCreated,
		TodoID: created.ID,
		UserID: created.OwnerID,
	})
	return created, nil
}

func (uc *todoUseCase) ReadByID(id uint) (*entity.ToDo, error) {
	todo, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, model.NewNotFoundByIDError(model.EntityToDo, id)
	}
	return todo, nil
}

func (uc *todoUseCase) Update(todo *entity.ToDo) (*entity.ToDo, error) {
	if todo == nil {
		return nil, model.NewNullEntityError(model.EntityToDo)
	}

	current, err := uc.ReadByID(todo.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Title = todo.Title

	saved, err := uc.gateway.Save(updated)
	if err != nil {
		return nil, err
	}

	log.Info("Updated to-do", zap.Uint("todo_id", saved.ID))
	queue.PublishQuietly(uc.activity, model.ActivityEvent{
		Type:   model.ActivityToDoUpdated,
		TodoID: saved.ID,
		UserID: saved.OwnerID,
	})
	return saved, nil
}

func (uc *todoUseCase) Delete(id uint) error {
	existing, err := uc.ReadByID(id)
	if err != nil {
		return err
	}
	if err := uc.gateway.Delete(*existing); err != nil {
		return err
	}

	log.Info("Deleted to-do", zap.Uint("todo_id", id))
	queue.PublishQuietly(uc.activity, model.ActivityEvent{
		Type:   model.ActivityToDoDeleted,
		TodoID: id,
		UserID: existing.OwnerID,
	})
	return nil
}

func (uc *todoUseCase) GetAll() ([]entity.ToDo, error) {
	todos, err := uc.gateway.FindAll()
	if err != nil {
		return nil, err
	}
	if todos == nil {
		return []entity.ToDo{}, nil
	}
	return todos, nil
}

func (uc *todoUseCase) GetByUserID(userID uint) ([]entity.ToDo, error) {
	todos, err := uc.gateway.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]struct{}, len(todos))
	visible := make([]entity.ToDo, 0, len(todos))
	for _, t := range todos {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		visible = append(visible, t)
	}
	return visible, nil
}

func (uc *todoUseCase) AddCollaborator(todoID uint, userID uint) (*entity.ToDo, error) {
	todo, err := uc.ReadByID(todoID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.findUser(userID); err != nil {
		return nil, err
	}
	if todo.HasMember(userID) {
		return todo, nil
	}

	if err := uc.gateway.AddCollaborator(todoID, userID); err != nil {
		return nil, err
	}

	log.Info("Added collaborator", zap.Uint("todo_id", todoID), zap.Uint("user_id", userID))
	queue.PublishQuietly(uc.activity, model.ActivityEvent{
		Type:   model.ActivityCollaboratorAdded,
		TodoID: todoID,
		UserID: userID,
	})
	return uc.ReadByID(todoID)
}

func (uc *todoUseCase) RemoveCollaborator(todoID uint, userID uint) (*entity.ToDo, error) {
	todo, err := uc.ReadByID(todoID)
	if err != nil {
		return nil, err
	}
	if !todo.HasCollaborator(userID) {
		return todo, nil
	}

	if err := uc.gateway.RemoveCollaborator(todoID, userID); err != nil {
		return nil, err
	}

	log.Info("Removed collaborator", zap.Uint("todo_id", todoID), zap.Uint("user_id", userID))
	queue.PublishQuietly(uc.activity, model.ActivityEvent{
		Type:   model.ActivityCollaboratorRemoved,
		TodoID: todoID,
		UserID: userID,
	})
	return uc.ReadByID(todoID)
}

func (uc *todoUseCase) findUser(id uint) (*entity.User, error) {
	user, err := uc.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.NewNotFoundByIDError(model.EntityUser, id)
	}
	return user, nil
}
