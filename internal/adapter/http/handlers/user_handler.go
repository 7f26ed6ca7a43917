package handlers

import (
	"log"
	"net/http"

	request "garage_manager/internal/adapter/http/dto/request"
	response "garage_manager/internal/adapter/http/dto/response"
	"garage_manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

// UserHandler serves garage staff accounts.
type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// Login godoc
// @Summary      Staff login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginUserRequest  true  "Credentials"
// @Success      200      {object}  response.UserAuthResponse
// @Failure      401      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var payload request.LoginUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	user, token, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		log.Printf("[user][handler] login failed email=%s err=%v", payload.Email, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.UserAuthResponse{Message: "Login successful", Token: token, User: response.FromUser(user)})
}

// CreateUser godoc
// @Summary      Create a staff account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body      request.CreateUserRequest  true  "User"
// @Success      201      {object}  response.UserEnvelope
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	user, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[user][handler] create failed email=%s err=%v", payload.Email, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.UserEnvelope{Message: "User created successfully", User: response.FromUser(user)})
}

// ListByGarage godoc
// @Summary      List a garage's staff accounts
// @Tags         users
// @Produce      json
// @Security     Bearer
// @Param        garage_id  path      string  true  "Garage ID"
// @Success      200        {object}  response.UsersEnvelope
// @Failure      403        {object}  pkg.HTTPError
// @Router       /users/garage/{garage_id} [get]
func (h *UserHandler) ListByGarage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	users, err := h.usecase.ListByGarage(c.Request.Context(), actor, c.Param("garage_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.UsersEnvelope{Message: "Users retrieved", Users: response.FromUsers(users)})
}

// MyPermissions godoc
// @Summary      Permissions of the calling user
// @Tags         users
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.PermissionsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /users/me/permissions [get]
func (h *UserHandler) MyPermissions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	user, err := h.usecase.Me(c.Request.Context(), actor)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	u := response.FromUser(user)
	c.JSON(http.StatusOK, response.PermissionsResponse{UserID: u.ID, Role: u.Role, Permissions: u.Permissions})
}

// UpdatePermissions godoc
// @Summary      Replace a user's permissions
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        user_id  path      string                            true  "User ID"
// @Param        payload  body      request.UpdatePermissionsRequest  true  "Permissions"
// @Success      200      {object}  response.UserEnvelope
// @Failure      403      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /users/{user_id}/permissions [patch]
func (h *UserHandler) UpdatePermissions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdatePermissionsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	user, err := h.usecase.UpdatePermissions(c.Request.Context(), actor, c.Param("user_id"), payload.Permissions)
	if err != nil {
		log.Printf("[user][handler] permissions update failed user_id=%s err=%v", c.Param("user_id"), err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.UserEnvelope{Message: "Permissions updated successfully", User: response.FromUser(user)})
}

// DeleteUser godoc
// @Summary      Delete a staff account
// @Tags         users
// @Produce      json
// @Security     Bearer
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  response.MessageResponse
// @Failure      403      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /users/{user_id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("user_id")); err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted successfully"})
}
