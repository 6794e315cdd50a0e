package controllers

import (
	"errors"
	"io"
	"net/http"

	"loireply/models"
	"loireply/services/dispatcher"

	"github.com/gin-gonic/gin"
)

type DispatchController struct {
	svc *dispatcher.Service
}

func NewDispatchController(svc *dispatcher.Service) *DispatchController {
	return &DispatchController{svc: svc}
}

type sendEmailsDTO struct {
	EmailID string `json:"emailId"`
}

// @Summary Drain outbox
// @Description Trigger a dispatcher pass. With emailId, only that entry is processed; otherwise up to 10 pending entries, oldest first.
// @Tags emails
// @Accept json
// @Produce json
// @Param data body sendEmailsDTO false "Optional single entry"
// @Success 200 {object} models.DrainResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /emails/send [post]
func (dc *DispatchController) SendEmails(c *gin.Context) {
	var dto sendEmailsDTO
	// body is optional; batch mode when absent
	if err := c.ShouldBindJSON(&dto); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := dc.svc.DrainOutbox(c.Request.Context(), dto.EmailID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.DrainResponse{
		Success:   true,
		Processed: len(results),
		Results:   results,
	})
}
