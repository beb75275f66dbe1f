package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/role"
)

type RoleController struct {
	api     *echo.Group
	useCase role.UseCase
}

func NewRoleController(api *echo.Group, useCase role.UseCase) *RoleController {
	return &RoleController{api: api, useCase: useCase}
}

// InitRoleRoutes initializes role routes
func (controller *RoleController) InitRoleRoutes() {
	controller.api.GET("/roles", controller.FindAll)
	controller.api.GET("/roles/:id", controller.FindByID)
	controller.api.POST("/roles", controller.Create)
	controller.api.PUT("/roles/:id", controller.Update)
	controller.api.DELETE("/roles/:id", controller.Delete)
}

// FindAll godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Success 200 {array} entity.Role
// @Failure 500 {object} ErrorResponse
// @Router /roles [get]
func (controller *RoleController) FindAll(c echo.Context) error {
	roles, err := controller.useCase.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, roles)
}

// FindByID godoc
// @Summary Get a role
// @Tags roles
// @Produce json
// @Param id path int true "Role ID"
// @Success 200 {object} entity.Role
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /roles/{id} [get]
func (controller *RoleController) FindByID(c echo.Context) error {
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

// Create godoc
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Param role body model.NamedDTO true "Role name"
// @Success 201 {object} entity.Role
// @Failure 400 {object} ErrorResponse
// @Router /roles [post]
func (controller *RoleController) Create(c echo.Context) error {
	var dto model.NamedDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}

	created, err := controller.useCase.Create(&entity.Role{Name: dto.Name})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Rename a role
// @Tags roles
// @Accept json
// @Produce json
// @Param id path int true "Role ID"
// @Param role body model.NamedDTO true "Role name"
// @Success 200 {object} entity.Role
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /roles/{id} [put]
func (controller *RoleController) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}
	var dto model.NamedDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}

	updated, err := controller.useCase.Update(&entity.Role{ID: id, Name: dto.Name})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a role
// @Tags roles
// @Param id path int true "Role ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /roles/{id} [delete]
func (controller *RoleController) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}

	if err := controller.useCase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
