package handlers

import (
	"log"
	"net/http"

	request "garage_manager/internal/adapter/http/dto/request"
	response "garage_manager/internal/adapter/http/dto/response"
	"garage_manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

// GarageHandler serves tenant sign-up, login, profile and admin approval.
type GarageHandler struct {
	usecase usecase.IGarageUseCase
}

func NewGarageHandler(uc usecase.IGarageUseCase) *GarageHandler {
	return &GarageHandler{usecase: uc}
}

// Register godoc
// @Summary      Register a garage
// @Description  Creates a pending garage and charges the subscription unless the plan is free.
// @Tags         garages
// @Accept       json
// @Produce      json
// @Param        payload  body      request.RegisterGarageRequest  true  "Garage registration"
// @Success      201      {object}  response.AuthResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /garages [post]
func (h *GarageHandler) Register(c *gin.Context) {
	var payload request.RegisterGarageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[garage][handler] register invalid payload err=%v", err)
		writeError(c, bindError(err))
		return
	}

	garage, token, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[garage][handler] register failed email=%s err=%v", payload.Email, err)
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusCreated, response.AuthResponse{
		Message: "Garage registered successfully",
		Token:   token,
		Garage:  response.FromGarage(garage),
	})
}

// Login godoc
// @Summary      Garage login
// @Tags         garages
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginGarageRequest  true  "Credentials"
// @Success      200      {object}  response.AuthResponse
// @Failure      401      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /garages/login [post]
func (h *GarageHandler) Login(c *gin.Context) {
	var payload request.LoginGarageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	garage, token, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		log.Printf("[garage][handler] login failed email=%s err=%v", payload.Email, err)
		writeError(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.AuthResponse{
		Message: "Login successful",
		Token:   token,
		Garage:  response.FromGarage(garage),
	})
}

// GetGarage godoc
// @Summary      Get a garage
// @Tags         garages
// @Produce      json
// @Security     Bearer
// @Param        garage_id  path      string  true  "Garage ID"
// @Success      200        {object}  response.GarageResponse
// @Failure      403        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Router       /garages/{garage_id} [get]
func (h *GarageHandler) GetGarage(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	garage, err := h.usecase.Get(c.Request.Context(), actor, c.Param("garage_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGarage(garage))
}

// UpdateProfile godoc
// @Summary      Update logo and bank details
// @Tags         garages
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        garage_id  path      string                              true  "Garage ID"
// @Param        payload    body      request.UpdateGarageProfileRequest  true  "Profile fields"
// @Success      200        {object}  response.GarageResponse
// @Failure      400        {object}  pkg.HTTPError
// @Router       /garages/{garage_id}/profile [patch]
func (h *GarageHandler) UpdateProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdateGarageProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	garage, err := h.usecase.UpdateProfile(c.Request.Context(), actor, c.Param("garage_id"), payload.ToInput())
	if err != nil {
		log.Printf("[garage][handler] profile update failed garage_id=%s err=%v", c.Param("garage_id"), err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGarage(garage))
}

// ListPending godoc
// @Summary      List garages awaiting approval
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.GaragesEnvelope
// @Router       /admin/garages/pending [get]
func (h *GarageHandler) ListPending(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	garages, err := h.usecase.ListPending(c.Request.Context(), actor)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.GaragesEnvelope{Message: "Garages retrieved", Garages: response.FromGarages(garages)})
}

// Approve godoc
// @Summary      Approve a garage
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        garage_id  path      string  true  "Garage ID"
// @Success      200        {object}  response.GarageResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /admin/garages/{garage_id}/approve [patch]
func (h *GarageHandler) Approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	garage, err := h.usecase.Approve(c.Request.Context(), actor, c.Param("garage_id"))
	if err != nil {
		log.Printf("[garage][handler] approve failed garage_id=%s err=%v", c.Param("garage_id"), err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGarage(garage))
}

// Reject godoc
// @Summary      Reject and delete a garage registration
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        garage_id  path      string  true  "Garage ID"
// @Success      200        {object}  response.MessageResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /admin/garages/{garage_id}/reject [delete]
func (h *GarageHandler) Reject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.usecase.Reject(c.Request.Context(), actor, c.Param("garage_id")); err != nil {
		log.Printf("[garage][handler] reject failed garage_id=%s err=%v", c.Param("garage_id"), err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Garage deleted successfully"})
}
