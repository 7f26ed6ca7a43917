package handlers

import (
	"log"
	"net/http"

	request "garage_manager/internal/adapter/http/dto/request"
	response "garage_manager/internal/adapter/http/dto/response"
	"garage_manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

// AddPart godoc
// @Summary      Add a part to the garage stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body      request.AddPartRequest  true  "Part"
// @Success      201      {object}  response.InventoryPartResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /inventory [post]
func (h *InventoryHandler) AddPart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.AddPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	part, err := h.usecase.AddPart(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[inventory][handler] add failed garage_id=%s err=%v", payload.GarageID, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInventoryPart(part))
}

// ListParts godoc
// @Summary      List the stock of a garage
// @Tags         inventory
// @Produce      json
// @Security     Bearer
// @Param        garage_id  path      string  true  "Garage ID"
// @Success      200        {array}   response.InventoryPartResponse
// @Router       /inventory/{garage_id} [get]
func (h *InventoryHandler) ListParts(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	parts, err := h.usecase.ListByGarage(c.Request.Context(), actor, c.Param("garage_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.InventoryParts(parts))
}

// UpdatePart godoc
// @Summary      Update a part
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        part_id  path      string                     true  "Part ID"
// @Param        payload  body      request.UpdatePartRequest  true  "Fields to change"
// @Success      200      {object}  response.InventoryPartResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /inventory/part/{part_id} [put]
func (h *InventoryHandler) UpdatePart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdatePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	part, err := h.usecase.UpdatePart(c.Request.Context(), actor, c.Param("part_id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryPart(part))
}

// DeletePart godoc
// @Summary      Delete a part
// @Tags         inventory
// @Produce      json
// @Security     Bearer
// @Param        part_id  path      string  true  "Part ID"
// @Success      200      {object}  response.MessageResponse
// @Router       /inventory/part/{part_id} [delete]
func (h *InventoryHandler) DeletePart(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.usecase.DeletePart(c.Request.Context(), actor, c.Param("part_id")); err != nil {
		log.Printf("[inventory][handler] delete failed part_id=%s err=%v", c.Param("part_id"), err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Part deleted successfully"})
}
