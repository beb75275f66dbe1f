package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/task"
)

type TaskController struct {
	api     *echo.Group
	useCase task.UseCase
}

func NewTaskController(api *echo.Group, useCase task.UseCase) *TaskController {
	return &TaskController{api: api, useCase: useCase}
}

// InitTaskRoutes initializes task routes
func (controller *TaskController) InitTaskRoutes() {
	controller.api.GET("/tasks", controller.FindAll)
	controller.api.GET("/tasks/:id", controller.FindByID)
	controller.api.GET("/tasks/todos/:todo_id", controller.FindByTodoID)
	controller.api.GET("/tasks/states/:state_id", controller.FindByStateID)
	controller.api.POST("/tasks/todos/:todo_id", controller.Create)
	controller.api.PUT("/tasks/:id", controller.Update)
	controller.api.DELETE("/tasks/:id", controller.Delete)
}

// FindAll godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} entity.Task
// @Failure 500 {object} ErrorResponse
// @Router /tasks [get]
func (controller *TaskController) FindAll(c echo.Context) error {
	tasks, err := controller.useCase.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// FindByID godoc
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} entity.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [get]
func (controller *TaskController) FindByID(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}

	found, err := controller.useCase.ReadByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// FindByTodoID godoc
// @Summary List the tasks of a to-do list
// @Description An unknown list has no tasks
// @Tags tasks
// @Produce json
// @Param todo_id path int true "To-Do ID"
// @Success 200 {array} entity.Task
// @Failure 400 {object} ErrorResponse
// @Router /tasks/todos/{todo_id} [get]
func (controller *TaskController) FindByTodoID(c echo.Context) error {
	todoID, ok := pathID(c, "todo_id")
	if !ok {
		return invalidID(c, c.Param("todo_id"))
	}

	tasks, err := controller.useCase.GetByTodoID(todoID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// FindByStateID godoc
// @Summary List the tasks in a state
// @Tags tasks
// @Produce json
// @Param state_id path int true "State ID"
// @Success 200 {array} entity.Task
// @Failure 400 {object} ErrorResponse
// @Router /tasks/states/{state_id} [get]
func (controller *TaskController) FindByStateID(c echo.Context) error {
	stateID, ok := pathID(c, "state_id")
	if !ok {
		return invalidID(c, c.Param("state_id"))
	}

	tasks, err := controller.useCase.GetByStateID(stateID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create godoc
// @Summary Add a task to a to-do list
// @Description Without a stateId the task starts in the "New" state
// @Tags tasks
// @Accept json
// @Produce json
// @Param todo_id path int true "To-Do ID"
// @Param task body model.CreateTaskDTO true "New task"
// @Success 201 {object} entity.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/todos/{todo_id} [post]
func (controller *TaskController) Create(c echo.Context) error {
	todoID, ok := pathID(c, "todo_id")
	if !ok {
		return invalidID(c, c.Param("todo_id"))
	}
	var dto model.CreateTaskDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}

	created, err := controller.useCase.Create(&entity.Task{
		Name:     dto.Name,
		Priority: entity.Priority(dto.Priority),
		StateID:  dto.StateID,
		TodoID:   todoID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a task
// @Description Changes name, priority and state; the task stays in its list
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param task body model.UpdateTaskDTO true "New values"
// @Success 200 {object} entity.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [put]
func (controller *TaskController) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}
	var dto model.UpdateTaskDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}

	updated, err := controller.useCase.Update(&entity.Task{
		ID:       id,
		Name:     dto.Name,
		Priority: entity.Priority(dto.Priority),
		StateID:  dto.StateID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /tasks/{id} [delete]
func (controller *TaskController) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}

	if err := controller.useCase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
