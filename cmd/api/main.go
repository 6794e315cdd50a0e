// @title LoiReply Email Pipeline API
// @version 1.0
// @description Email delivery and reply correlation service: outbox draining with SES/Gmail fallback, sent log, reply tracking.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"loireply/cmd/api/middleware"
	"loireply/controllers"
	_ "loireply/docs"
	"loireply/mailer"
	"loireply/models"
	"loireply/services/dispatcher"
	"loireply/services/outbox"
	"loireply/services/replies"
	"loireply/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load(".env", "../../.env", "../.env")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	db, err := storage.NewConnection(storage.Config{
		Host:     os.Getenv("MYSQL_HOST"),
		Port:     os.Getenv("MYSQL_PORT"),
		User:     os.Getenv("MYSQL_USER"),
		Password: os.Getenv("MYSQL_PASSWORD"),
		DBName:   os.Getenv("MYSQL_DB"),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.EmailOutbox{},
		&models.SentEmail{},
		&models.EmailReply{},
		&models.AmazonSESSettings{},
		&models.GoogleSMTPEmail{},
	); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	sesConfig := mailer.SESConfig{
		Host: envOr("SES_SMTP_HOST", "email-smtp.us-east-1.amazonaws.com"),
	}
	newSES := func(st models.AmazonSESSettings) mailer.Mailer {
		return mailer.NewSES(sesConfig, st.SMTPUsername, st.SMTPPassword, st.SMTPPort)
	}
	newGmail := func(st models.GoogleSMTPEmail) mailer.Mailer {
		return mailer.NewGmail(st.Address, st.AppPassword)
	}

	outboxService := outbox.New(db)
	dispatchService := dispatcher.New(db, newSES, newGmail, logger)
	replyService := replies.New(db, logger)

	emailController := controllers.NewEmailController(outboxService)
	dispatchController := controllers.NewDispatchController(dispatchService)
	replyController := controllers.NewReplyController(replyService, logger)

	interval := time.Duration(envIntOr("OUTBOX_INTERVAL_SECONDS", 30)) * time.Second
	worker := dispatcher.NewWorker(dispatchService, interval, logger)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go worker.Start(ctx)

	router := gin.Default()
	SetupRoutes(router,
		emailController, dispatchController, replyController,
		middleware.AuthMiddleware(),
		middleware.ServiceAuthMiddleware(os.Getenv("SERVICE_TOKEN")),
	)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{Addr: ":8080", Handler: router}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	<-ctx.Done()
	_ = srv.Shutdown(context.Background())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
