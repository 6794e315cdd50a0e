package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"loireply/services/replies"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReplyController struct {
	svc *replies.Service
	log *zap.Logger
}

func NewReplyController(svc *replies.Service, log *zap.Logger) *ReplyController {
	return &ReplyController{svc: svc, log: log}
}

// @Summary Track email reply
// @Description Match an inbound email to a previously sent one and record the reply edge. Recording is idempotent per (sent email, received email) pair.
// @Tags replies
// @Accept json
// @Produce json
// @Param data body replies.InboundEmail true "Inbound email"
// @Success 200 {object} models.TrackReplyResponse
// @Failure 404 {object} models.TrackReplyResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /internal/track-reply [post]
func (rc *ReplyController) TrackReply(c *gin.Context) {
	var inbound replies.InboundEmail
	if err := c.ShouldBindJSON(&inbound); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cor, err := rc.svc.Correlate(c.Request.Context(), inbound)
	if err != nil {
		if errors.Is(err, replies.ErrNoMatch) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "No sent emails found to match this reply",
				"sender":  replies.ExtractAddress(inbound.From),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to track reply",
			"details": err.Error(),
		})
		return
	}

	if cor.AlreadyRecorded {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Reply already recorded",
			"reply_id": cor.ReplyID,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Reply tracked successfully",
		"reply_id":      cor.ReplyID,
		"sent_email_id": cor.SentEmailID,
		"sender":        cor.Sender,
	})
}

// @Summary Process inbound email
// @Description Accept an inbound email and correlate it with sent mail in the background. The correlation result is logged, never awaited; a correlation failure must not block the caller.
// @Tags replies
// @Accept json
// @Produce json
// @Param data body replies.InboundEmail true "Inbound email"
// @Success 202 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /internal/inbound [post]
func (rc *ReplyController) ProcessInbound(c *gin.Context) {
	var inbound replies.InboundEmail
	if err := c.ShouldBindJSON(&inbound); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if inbound.ID == "" {
		inbound.ID = uuid.NewString()
	}
	if inbound.ReceivedAt.IsZero() {
		inbound.ReceivedAt = time.Now()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		cor, err := rc.svc.Correlate(ctx, inbound)
		switch {
		case errors.Is(err, replies.ErrNoMatch):
			rc.log.Info("inbound email matched no sent email",
				zap.String("received_email_id", inbound.ID))
		case err != nil:
			rc.log.Warn("reply tracking failed",
				zap.String("received_email_id", inbound.ID), zap.Error(err))
		default:
			rc.log.Info("reply tracked",
				zap.String("reply_id", cor.ReplyID),
				zap.String("sent_email_id", cor.SentEmailID))
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"message": "Email accepted for processing"})
}
