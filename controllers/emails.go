package controllers

import (
	"errors"
	"net/http"

	"loireply/models"
	"loireply/services/outbox"

	"github.com/gin-gonic/gin"
)

type EmailController struct {
	svc *outbox.Service
}

func NewEmailController(svc *outbox.Service) *EmailController {
	return &EmailController{svc: svc}
}

// @Summary Queue email
// @Description Queue an outbound email in the outbox. The dispatcher delivers it on its next pass.
// @Description to_email may contain several comma-separated recipients; all of them share one visible To: header.
// @Tags emails
// @Accept json
// @Produce json
// @Param data body models.QueueEmailRequest true "Email data"
// @Success 202 {object} models.EmailOutbox
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /emails [post]
func (ec *EmailController) QueueEmail(c *gin.Context) {
	var dto models.QueueEmailRequest
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ec.svc.Queue(c.Request.Context(), outbox.QueueRequest{
		UserID:      c.GetString("user_id"),
		ToEmail:     dto.ToEmail,
		FromEmail:   dto.FromEmail,
		Subject:     dto.Subject,
		Body:        dto.Body,
		ReplyToID:   dto.ReplyToID,
		Attachments: dto.Attachments,
	})
	if err != nil {
		if errors.Is(err, outbox.ErrNoRecipients) || errors.Is(err, outbox.ErrNoSender) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusAccepted, entry)
}

// @Summary List outbox
// @Description List the caller's outbox entries, newest first. Failed entries carry their error message.
// @Tags emails
// @Produce json
// @Success 200 {array} models.EmailOutbox
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /emails/outbox [get]
func (ec *EmailController) ListOutbox(c *gin.Context) {
	list, err := ec.svc.ListOutbox(c.Request.Context(), c.GetString("user_id"), 50, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary List sent emails
// @Tags emails
// @Produce json
// @Success 200 {array} models.SentEmail
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /emails/sent [get]
func (ec *EmailController) ListSent(c *gin.Context) {
	list, err := ec.svc.ListSent(c.Request.Context(), c.GetString("user_id"), 50, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get outbox entry
// @Tags emails
// @Produce json
// @Param id path string true "Outbox entry ID"
// @Success 200 {object} models.EmailOutbox
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /emails/outbox/{id} [get]
func (ec *EmailController) GetOutboxEntry(c *gin.Context) {
	entry, err := ec.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, outbox.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Outbox entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// @Summary Requeue failed entry
// @Description Reset a failed outbox entry to pending. Failed entries are never retried automatically.
// @Tags emails
// @Produce json
// @Param id path string true "Outbox entry ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /emails/outbox/{id}/requeue [post]
func (ec *EmailController) RequeueEntry(c *gin.Context) {
	err := ec.svc.Requeue(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Entry requeued"})
	case errors.Is(err, outbox.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Outbox entry not found"})
	case errors.Is(err, outbox.ErrNotFailed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
