package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/state"
)

type StateController struct {
	api     *echo.Group
	useCase state.UseCase
}

func NewStateController(api *echo.Group, useCase state.UseCase) *StateController {
	return &StateController{api: api, useCase: useCase}
}

// InitStateRoutes initializes state routes
func (controller *StateController) InitStateRoutes() {
	controller.api.GET("/states", controller.FindAll)
	controller.api.GET("/states/:id", controller.FindByID)
	controller.api.GET("/states/name/:name", controller.FindByName)
	controller.api.POST("/states", controller.Create)
	controller.api.PUT("/states/:id", controller.Update)
	controller.api.DELETE("/states/:id", controller.Delete)
}

// FindAll godoc
// @Summary List states ordered by id
// @Tags states
// @Produce json
// @Success 200 {array} entity.State
// @Failure 500 {object} ErrorResponse
// @Router /states [get]
func (controller *StateController) FindAll(c echo.Context) error {
	states, err := controller.useCase.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, states)
}

// FindByID godoc
// @Summary Get a state
// @Tags states
// @Produce json
// @Param id path int true "State ID"
// @Success 200 {object} entity.State
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /states/{id} [get]
func (controller *StateController) FindByID(c echo.Context) error {
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

// FindByName godoc
// @Summary Get a state by name
// @Tags states
// @Produce json
// @Param name path string true "State name"
// @Success 200 {object} entity.State
// @Failure 404 {object} ErrorResponse
// @Router /states/name/{name} [get]
func (controller *StateController) FindByName(c echo.Context) error {
	found, err := controller.useCase.GetByName(c.Param("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

// Create godoc
// @Summary Create a state
// @Tags states
// @Accept json
// @Produce json
// @Param state body model.NamedDTO true "State name"
// @Success 201 {object} entity.State
// @Failure 400 {object} ErrorResponse
// @Router /states [post]
func (controller *StateController) Create(c echo.Context) error {
	var dto model.NamedDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}

	created, err := controller.useCase.Create(&entity.State{Name: dto.Name})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Rename a state
// @Tags states
// @Accept json
// @Produce json
// @Param id path int true "State ID"
// @Param state body model.NamedDTO true "State name"
// @Success 200 {object} entity.State
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /states/{id} [put]
func (controller *StateController) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}
	var dto model.NamedDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}

	updated, err := controller.useCase.Update(&entity.State{ID: id, Name: dto.Name})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a state
// @Tags states
// @Param id path int true "State ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /states/{id} [delete]
func (controller *StateController) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}

	if err := controller.useCase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
