package handlers

import (
	"log"
	"net/http"

	request "garage_manager/internal/adapter/http/dto/request"
	response "garage_manager/internal/adapter/http/dto/response"
	"garage_manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EngineerHandler struct {
	usecase usecase.IEngineerUseCase
}

func NewEngineerHandler(uc usecase.IEngineerUseCase) *EngineerHandler {
	return &EngineerHandler{usecase: uc}
}

// CreateEngineer godoc
// @Summary      Add an engineer to a garage
// @Tags         engineers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body      request.CreateEngineerRequest  true  "Engineer"
// @Success      201      {object}  entities.Engineer
// @Failure      400      {object}  pkg.HTTPError
// @Router       /engineers [post]
func (h *EngineerHandler) CreateEngineer(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateEngineerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	engineer, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[engineer][handler] create failed garage_id=%s err=%v", payload.GarageID, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, engineer)
}

// ListEngineers godoc
// @Summary      List engineers of a garage
// @Tags         engineers
// @Produce      json
// @Security     Bearer
// @Param        garage_id  path      string  true  "Garage ID"
// @Success      200        {array}   entities.Engineer
// @Router       /engineers/garage/{garage_id} [get]
func (h *EngineerHandler) ListEngineers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	engineers, err := h.usecase.ListByGarage(c.Request.Context(), actor, c.Param("garage_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.Engineers(engineers))
}
