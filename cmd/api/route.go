package main

import (
	"loireply/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine,
	emailController *controllers.EmailController,
	dispatchController *controllers.DispatchController,
	replyController *controllers.ReplyController,
	authMiddleware, serviceMiddleware gin.HandlerFunc,
) {
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.POST("/emails", emailController.QueueEmail)
		protected.GET("/emails/outbox", emailController.ListOutbox)
		protected.GET("/emails/sent", emailController.ListSent)
		protected.GET("/emails/outbox/:id", emailController.GetOutboxEntry)
		protected.POST("/emails/outbox/:id/requeue", emailController.RequeueEntry)
		protected.POST("/emails/send", dispatchController.SendEmails)
	}

	internal := router.Group("/internal")
	internal.Use(serviceMiddleware)
	{
		internal.POST("/track-reply", replyController.TrackReply)
		internal.POST("/inbound", replyController.ProcessInbound)
	}
}
