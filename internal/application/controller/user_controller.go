package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/user"
	"todo-tracker/pkg/msg"
)

type UserController struct {
	api     *echo.Group
	useCase user.UseCase
}

func NewUserController(api *echo.Group, useCase user.UseCase) *UserController {
	return &UserController{api: api, useCase: useCase}
}

// InitUserRoutes initializes user routes
func (controller *UserController) InitUserRoutes() {
	controller.api.GET("/users", controller.FindAll)
	controller.api.GET("/users/:id", controller.FindByID)
	controller.api.GET("/users/email/:email", controller.FindByEmail)
	controller.api.POST("/users", controller.Register)
	controller.api.POST("/users/by-actor", controller.CreateByActor)
	controller.api.PUT("/users/:id", controller.Update)
	controller.api.DELETE("/users/:id", controller.Delete)
}

// FindAll godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} entity.User
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (controller *UserController) FindAll(c echo.Context) error {
	users, err := controller.useCase.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// FindByID godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} entity.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (controller *UserController) FindByID(c echo.Context) error {
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

// FindByEmail godoc
// @Summary Get a user by email
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} entity.User
// @Failure 404 {object} ErrorResponse
// @Router /users/email/{email} [get]
func (controller *UserController) FindByEmail(c echo.Context) error {
	email := c.Param("email")
	found, err := controller.useCase.GetUserByEmail(email)
	if err != nil {
		return respondError(c, err)
	}
	if found == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: msg.GetMessage("user.error.not-found-email", email)})
	}
	return c.JSON(http.StatusOK, found)
}

// Register godoc
// @Summary Register a user
// @Description Self-registration; the account always gets the USER role
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.CreateUserDTO true "New user"
// @Success 201 {object} entity.User
// @Failure 400 {object} ErrorResponse
// @Router /users [post]
func (controller *UserController) Register(c echo.Context) error {
	var dto model.CreateUserDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}

	created, err := controller.useCase.Create(newUser(dto))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// CreateByActor godoc
// @Summary Create a user on behalf of another user
// @Description The requested role is applied only when the actor is privileged
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.CreateUserByActorDTO true "New user, actor and requested role"
// @Success 201 {object} entity.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/by-actor [post]
func (controller *UserController) CreateByActor(c echo.Context) error {
	var dto model.CreateUserByActorDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}

	created, err := controller.useCase.CreateByActor(dto.ActorID, newUser(dto.CreateUserDTO), dto.RoleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a user
// @Description Replaces the user's fields. A role change is ignored unless the user is privileged
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body model.UpdateUserDTO true "New values"
// @Success 200 {object} entity.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [put]
func (controller *UserController) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}
	var dto model.UpdateUserDTO
	if err := c.Bind(&dto); err != nil {
		return invalidBody(c)
	}

	updated, err := controller.useCase.Update(&entity.User{
		ID:        id,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Password:  dto.Password,
	}, dto.RoleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [delete]
func (controller *UserController) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, c.Param("id"))
	}

	if err := controller.useCase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func newUser(dto model.CreateUserDTO) *entity.User {
	return &entity.User{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Password:  dto.Password,
	}
}
