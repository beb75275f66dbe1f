package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/todo"
	"todo-tracker/pkg/util/numberutils"
)

type ToDoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewToDoController(api *echo.Group, useCase todo.UseCase) *ToDoController {
	return &ToDoController{api: api, useCase: useCase}
}

// InitToDoRoutes initializes to-do list routes
func (controller *ToDoController) InitToDoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.GET("/todos/:id", controller.FindByID)
	controller.api.GET("/todos/users/:user_id", controller.FindByUserID)
	controller.api.POST("/todos", controller.Create)
	controller.api.PUT("/todos/:id", controller.Update)
	controller.api.DELETE("/todos/:id", controller.Delete)
	controller.api.POST("/todos/:id/collaborators", controller.AddCollaborator)
	controller.api.DELETE("/todos/:id/collaborators", controller.RemoveCollaborator)
}

// FindAll godoc
// @Summary List to-do lists
// @Tags todos
// @Produce json
// @Success 200 {array} entity.ToDo
// @Failure 500 {object} ErrorResponse
// @Router /todos [get]
func (controller *ToDoController) FindAll(c echo.Context) error {
	todos, err := controller.useCase.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// FindByID godoc
// @Summary Get a to-do list
// @Tags todos
// @Produce json
// @Param id path int true "To-Do ID"
// @Success 200 {object} entity.ToDo
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /todos/{id} [get]
func (controller *ToDoController) FindByID(c echo.Context) error {
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

// FindByUserID godoc
// @Summary List the to-do lists a user owns or collaborates on
// @Tags todos
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} entity.ToDo
// @Failure 400 {object} ErrorResponse
// @Router /todos/users/{user_id} [get]
func (controller *ToDoController) FindByUserID(c echo.Context) error {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return invalidID(c, c.Param("user_id"))
	}

	todos, err := controller.useCase.GetByUserID(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// Create godoc
// @Summary Create a to-do list
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateToDoDTO true "Title and owner"
// @Success 201 {object} entity.ToDo
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /todos [post]
func (controller *ToDoController) Create(c echo.Context) error {
	var dto model.CreateToDoDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}

	created, err := controller.useCase.Create(&entity.ToDo{Title: dto.Title, OwnerID: dto.OwnerID})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Rename a to-do list
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "To-Do ID"
// @Param todo body model.UpdateToDoDTO true "New title"
// @Success 200 {object} entity.ToDo
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /todos/{id} [put]
func (controller *ToDoController) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}
	var dto model.UpdateToDoDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}

	updated, err := controller.useCase.Update(&entity.ToDo{ID: id, Title: dto.Title})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a to-do list
// @Description Tasks of the list are removed later by the orphan cleanup job
// @Tags todos
// @Param id path int true "To-Do ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /todos/{id} [delete]
func (controller *ToDoController) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}

	if err := controller.useCase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddCollaborator godoc
// @Summary Share a to-do list with a user
// @Tags todos
// @Produce json
// @Param id path int true "To-Do ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} entity.ToDo
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /todos/{id}/collaborators [post]
func (controller *ToDoController) AddCollaborator(c echo.Context) error {
	todoID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}
	userID, err := numberutils.ToPositiveUint(c.QueryParam("user_id"))
	if err != nil {
		return invalidID(c, c.QueryParam("user_id"))
	}

	updated, err := controller.useCase.AddCollaborator(todoID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// RemoveCollaborator godoc
// @Summary Stop sharing a to-do list with a user
// @Tags todos
// @Produce json
// @Param id path int true "To-Do ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} entity.ToDo
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /todos/{id}/collaborators [delete]
func (controller *ToDoController) RemoveCollaborator(c echo.Context) error {
	todoID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}
	userID, err := numberutils.ToPositiveUint(c.QueryParam("user_id"))
	if err != nil {
		return invalidID(c, c.QueryParam("user_id"))
	}

	updated, err := controller.useCase.RemoveCollaborator(todoID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

