package task

import (
	"go.uber.org/zap"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/gateway/queue"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/state"
	"todo-tracker/pkg/log"
)

type taskUseCase struct {
	gateway  db.TaskGateway
	todos    db.ToDoGateway
	states   state.UseCase
	activity queue.ActivityGateway
}

func NewTaskUseCase(gateway db.TaskGateway, todos db.ToDoGateway, states state.UseCase, activity queue.ActivityGateway) UseCase {
	return &taskUseCase{
		gateway:  gateway,
		todos:    todos,
		states:   states,
		activity: activity,
	}
}

func (uc *taskUseCase) Create(task *entity.Task) (*entity.Task, error) {
	if task == nil {
		return nil, model.NewNullEntityError(model.EntityTask)
	}
	priority, err := validPriority(task.Priority)
	if err != nil {
		return nil, err
	}
	if err := uc.requireToDo(task.TodoID); err != nil {
		return nil, err
	}
	taskState, err := uc.resolveState(task.StateID)
	if err != nil {
		return nil, err
	}

	created, err := uc.gateway.Save(entity.Task{
		Name:     task.Name,
		Priority: priority,
		StateID:  taskState.ID,
		State:    *taskState,
		TodoID:   task.TodoID,
	})
	if err != nil {
		return nil, err
	}

	log.Info("Created task", zap.Uint("task_id", created.ID), zap.Uint("todo_id", created.TodoID))
	uc.publish(model.ActivityTaskCreated, *created)
	return created, nil
}

func (uc *taskUseCase) ReadByID(id uint) (*entity.Task, error) {
	task, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, model.NewNotFoundByIDError(model.EntityTask, id)
	}
	return task, nil
}

func (uc *taskUseCase) Update(task *entity.Task) (*entity.Task, error) {
	if task == nil {
		return nil, model.NewNullEntityError(model.EntityTask)
	}

	current, err := uc.ReadByID(task.ID)
	if err != nil {
		return nil, err
	}
	priority, err := validPriority(task.Priority)
	if err != nil {
		return nil, err
	}
	stateID := task.StateID
	if stateID == 0 {
		stateID = current.StateID
	}
	taskState, err := uc.states.ReadByID(stateID)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Name = task.Name
	updated.Priority = priority
	updated.StateID = taskState.ID
	updated.State = *taskState

	saved, err := uc.gateway.Save(updated)
	if err != nil {
		return nil, err
	}

	log.Info("Updated task", zap.Uint("task_id", saved.ID), zap.String("state", taskState.Name))
	uc.publish(model.ActivityTaskUpdated, *saved)
	return saved, nil
}

func (uc *taskUseCase) Delete(id uint) error {
	existing, err := uc.ReadByID(id)
	if err != nil {
		return err
	}
	if err := uc.gateway.Delete(*existing); err != nil {
		return err
	}

	log.Info("Deleted task", zap.Uint("task_id", id))
	uc.publish(model.ActivityTaskDeleted, *existing)
	return nil
}

func (uc *taskUseCase) GetAll() ([]entity.Task, error) {
	return orEmpty(uc.gateway.FindAll())
}

func (uc *taskUseCase) GetByTodoID(todoID uint) ([]entity.Task, error) {
	return orEmpty(uc.gateway.FindByTodoID(todoID))
}

func (uc *taskUseCase) GetByStateID(stateID uint) ([]entity.Task, error) {
	return orEmpty(uc.gateway.FindByStateID(stateID))
}

func (uc *taskUseCase) DeleteOrphans() (int64, error) {
	removed, err := uc.gateway.DeleteOrphans()
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		log.Info("Deleted orphan tasks", zap.Int64("count", removed))
	}
	return removed, nil
}

func (uc *taskUseCase) requireToDo(todoID uint) error {
	todo, err := uc.todos.FindByID(todoID)
	if err != nil {
		return err
	}
	if todo == nil {
		return model.NewNotFoundByIDError(model.EntityToDo, todoID)
	}
	return nil
}

// resolveState falls back to the default state when no state id is given.
func (uc *taskUseCase) resolveState(stateID uint) (*entity.State, error) {
	if stateID == 0 {
		return uc.states.GetByName(entity.DefaultStateName)
	}
	return uc.states.ReadByID(stateID)
}

func (uc *taskUseCase) publish(activityType model.ActivityType, task entity.Task) {
	queue.PublishQuietly(uc.activity, model.ActivityEvent{
		Type:   activityType,
		TodoID: task.TodoID,
		TaskID: task.ID,
	})
}

func validPriority(value entity.Priority) (entity.Priority, error) {
	priority, ok := entity.ParsePriority(string(value))
	if !ok {
		return "", model.NewInvalidPriorityError(string(value))
	}
	return priority, nil
}

func orEmpty(tasks []entity.Task, err error) ([]entity.Task, error) {
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		return []entity.Task{}, nil
	}
	return tasks, nil
}
