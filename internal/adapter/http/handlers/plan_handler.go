package handlers

import (
	"log"
	"net/http"

	request "garage_manager/internal/adapter/http/dto/request"
	response "garage_manager/internal/adapter/http/dto/response"
	"garage_manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PlanHandler serves the plan catalogue and subscription renewal.
type PlanHandler struct {
	usecase usecase.IPlanUseCase
}

func NewPlanHandler(uc usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{usecase: uc}
}

// ListPlans godoc
// @Summary      List subscription plans
// @Tags         plans
// @Produce      json
// @Success      200  {object}  response.PlansEnvelope
// @Router       /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.PlansEnvelope{Message: "Plans retrieved", Plans: response.FromPlans(plans)})
}

// GetPlan godoc
// @Summary      Get a subscription plan
// @Tags         plans
// @Produce      json
// @Param        plan_id  path      string  true  "Plan ID"
// @Success      200      {object}  response.PlanResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /plans/{plan_id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.usecase.Get(c.Request.Context(), c.Param("plan_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(plan))
}

// CreatePlan godoc
// @Summary      Create a subscription plan
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body      request.PlanRequest  true  "Plan"
// @Success      201      {object}  response.PlanEnvelope
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /admin/plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	plan, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[plan][handler] create failed name=%s err=%v", payload.Name, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.PlanEnvelope{Message: "Plan created successfully", Plan: response.FromPlan(plan)})
}

// UpdatePlan godoc
// @Summary      Replace a subscription plan
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        plan_id  path      string               true  "Plan ID"
// @Param        payload  body      request.PlanRequest  true  "Plan"
// @Success      200      {object}  response.PlanEnvelope
// @Failure      404      {object}  pkg.HTTPError
// @Router       /admin/plans/{plan_id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	plan, err := h.usecase.Update(c.Request.Context(), actor, c.Param("plan_id"), payload.ToInput())
	if err != nil {
		log.Printf("[plan][handler] update failed plan_id=%s err=%v", c.Param("plan_id"), err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.PlanEnvelope{Message: "Plan updated successfully", Plan: response.FromPlan(plan)})
}

// DeletePlan godoc
// @Summary      Delete a subscription plan
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        plan_id  path      string  true  "Plan ID"
// @Success      200      {object}  response.MessageResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /admin/plans/{plan_id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("plan_id")); err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Plan deleted successfully"})
}

// RenewSubscription godoc
// @Summary      Renew a lapsed subscription
// @Description  Charges the plan amount through Mercado Pago. Public because an expired garage cannot log in.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        payload  body      request.RenewSubscriptionRequest  true  "Renewal"
// @Success      200      {object}  response.RenewalResponse
// @Success      202      {object}  response.RenewalResponse
// @Failure      402      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /subscriptions/renew [post]
func (h *PlanHandler) RenewSubscription(c *gin.Context) {
	var payload request.RenewSubscriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	res, err := h.usecase.RenewSubscription(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[plan][handler] renew failed garage_id=%s plan_id=%s err=%v", payload.GarageID, payload.PlanID, err)
		writeError(c, mapDomainError(err))
		return
	}
	status := http.StatusOK
	if !res.Completed {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromRenewal(res))
}

// CompleteRenewal godoc
// @Summary      Settle a pending renewal
// @Description  Applies the plan once the provider reports the stored payment approved.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CompleteRenewalRequest  true  "Pending payment"
// @Success      200      {object}  response.RenewalResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /subscriptions/complete [post]
func (h *PlanHandler) CompleteRenewal(c *gin.Context) {
	var payload request.CompleteRenewalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	res, err := h.usecase.CompleteRenewal(c.Request.Context(), payload.GarageID, payload.PaymentID)
	if err != nil {
		log.Printf("[plan][handler] complete failed garage_id=%s payment_id=%s err=%v", payload.GarageID, payload.PaymentID, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRenewal(res))
}

// SubscriptionStatus godoc
// @Summary      Subscription status of a garage
// @Tags         subscriptions
// @Produce      json
// @Security     Bearer
// @Param        garage_id  path      string  true  "Garage ID"
// @Success      200        {object}  response.SubscriptionStatusResponse
// @Failure      403        {object}  pkg.HTTPError
// @Router       /subscriptions/{garage_id} [get]
func (h *PlanHandler) SubscriptionStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	s, err := h.usecase.SubscriptionStatus(c.Request.Context(), actor, c.Param("garage_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptionStatus(s))
}
