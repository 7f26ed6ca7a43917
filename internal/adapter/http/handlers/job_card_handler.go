package handlers

import (
	"log"
	"net/http"

	request "garage_manager/internal/adapter/http/dto/request"
	response "garage_manager/internal/adapter/http/dto/response"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

// JobCardHandler serves the job card lifecycle: intake, engineer assignment,
// work logging, quality check and hand-off to billing.
type JobCardHandler struct {
	usecase usecase.IJobCardUseCase
}

func NewJobCardHandler(uc usecase.IJobCardUseCase) *JobCardHandler {
	return &JobCardHandler{usecase: uc}
}

// CreateJobCard godoc
// @Summary      Open a job card
// @Tags         jobcards
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body      request.CreateJobCardRequest  true  "Intake form"
// @Success      201      {object}  response.JobCardEnvelope
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /jobcards [post]
func (h *JobCardHandler) CreateJobCard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateJobCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[jobcard][handler] create invalid payload err=%v", err)
		writeError(c, bindError(err))
		return
	}

	jc, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[jobcard][handler] create failed garage_id=%s err=%v", payload.GarageID, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.NewJobCardEnvelope("Job card created successfully", jc))
}

// ListJobCards godoc
// @Summary      List job cards of a garage
// @Tags         jobcards
// @Produce      json
// @Security     Bearer
// @Param        garage_id  path      string  true  "Garage ID"
// @Success      200        {array}   response.JobCardResponse
// @Router       /jobcards/garage/{garage_id} [get]
func (h *JobCardHandler) ListJobCards(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	cards, err := h.usecase.ListByGarage(c.Request.Context(), actor, c.Param("garage_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.JobCards(cards))
}

// GetJobCard godoc
// @Summary      Get a job card
// @Tags         jobcards
// @Produce      json
// @Security     Bearer
// @Param        job_card_id  path      string  true  "Job card ID"
// @Success      200          {object}  response.JobCardResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /jobcards/{job_card_id} [get]
func (h *JobCardHandler) GetJobCard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	jc, err := h.usecase.Get(c.Request.Context(), actor, c.Param("job_card_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobCard(jc))
}

// UpdateJobCard godoc
// @Summary      Replace the intake details of a job card
// @Tags         jobcards
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        job_card_id  path      string                   true  "Job card ID"
// @Param        payload      body      entities.JobCardDetails  true  "Details"
// @Success      200          {object}  response.JobCardEnvelope
// @Router       /jobcards/{job_card_id} [put]
func (h *JobCardHandler) UpdateJobCard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload entities.JobCardDetails
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	jc, err := h.usecase.UpdateDetails(c.Request.Context(), actor, c.Param("job_card_id"), payload)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewJobCardEnvelope("Job card updated successfully", jc))
}

// DeleteJobCard godoc
// @Summary      Delete a job card
// @Tags         jobcards
// @Produce      json
// @Security     Bearer
// @Param        job_card_id  path      string  true  "Job card ID"
// @Success      200          {object}  response.MessageResponse
// @Router       /jobcards/{job_card_id} [delete]
func (h *JobCardHandler) DeleteJobCard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("job_card_id")); err != nil {
		log.Printf("[jobcard][handler] delete failed id=%s err=%v", c.Param("job_card_id"), err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Job card deleted successfully"})
}

// AssignEngineers godoc
// @Summary      Assign engineers to a job card
// @Tags         jobcards
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        job_card_id  path      string                          true  "Job card ID"
// @Param        payload      body      request.AssignEngineersRequest  true  "Engineer IDs"
// @Success      200          {object}  response.JobCardEnvelope
// @Router       /jobcards/{job_card_id}/engineers [put]
func (h *JobCardHandler) AssignEngineers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.AssignEngineersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	jc, err := h.usecase.AssignEngineers(c.Request.Context(), actor, c.Param("job_card_id"), payload.EngineerIDs)
	if err != nil {
		log.Printf("[jobcard][handler] assign failed id=%s err=%v", c.Param("job_card_id"), err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewJobCardEnvelope("Engineers assigned successfully", jc))
}

// UpdateStatus godoc
// @Summary      Change the job status
// @Tags         jobcards
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        job_card_id  path      string                          true  "Job card ID"
// @Param        payload      body      request.UpdateJobStatusRequest  true  "Status"
// @Success      200          {object}  response.JobCardEnvelope
// @Router       /jobcards/{job_card_id}/status [patch]
func (h *JobCardHandler) UpdateStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	jc, err := h.usecase.UpdateStatus(c.Request.Context(), actor, c.Param("job_card_id"), payload.Status)
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewJobCardEnvelope("Job status updated", jc))
}

// LogWorkProgress godoc
// @Summary      Log parts, labour and remarks
// @Tags         jobcards
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        job_card_id  path      string                       true  "Job card ID"
// @Param        payload      body      request.WorkProgressRequest  true  "Work progress"
// @Success      200          {object}  response.JobCardEnvelope
// @Router       /jobcards/{job_card_id}/work [put]
func (h *JobCardHandler) LogWorkProgress(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.WorkProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[jobcard][handler] work invalid payload id=%s err=%v", c.Param("job_card_id"), err)
		writeError(c, bindError(err))
		return
	}

	jc, err := h.usecase.LogWorkProgress(c.Request.Context(), actor, c.Param("job_card_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewJobCardEnvelope("Work progress updated", jc))
}

// QualityCheck godoc
// @Summary      Record the quality check
// @Tags         jobcards
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        job_card_id  path      string                       true   "Job card ID"
// @Param        payload      body      request.QualityCheckRequest  false  "Notes"
// @Success      200          {object}  response.JobCardEnvelope
// @Failure      409          {object}  pkg.HTTPError
// @Router       /jobcards/{job_card_id}/quality-check [put]
func (h *JobCardHandler) QualityCheck(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.QualityCheckRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, bindError(err))
			return
		}
	}

	jc, err := h.usecase.QualityCheck(c.Request.Context(), actor, c.Param("job_card_id"), payload.Notes)
	if err != nil {
		log.Printf("[jobcard][handler] quality check failed id=%s err=%v", c.Param("job_card_id"), err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewJobCardEnvelope("Quality check completed", jc))
}

// MarkForBilling godoc
// @Summary      Flag a job card as ready for billing
// @Tags         jobcards
// @Produce      json
// @Security     Bearer
// @Param        job_card_id  path      string  true  "Job card ID"
// @Success      200          {object}  response.JobCardEnvelope
// @Router       /jobcards/{job_card_id}/generate-bill [put]
func (h *JobCardHandler) MarkForBilling(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	jc, err := h.usecase.MarkForBilling(c.Request.Context(), actor, c.Param("job_card_id"))
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewJobCardEnvelope("Job card marked for billing", jc))
}
