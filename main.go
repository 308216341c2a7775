package main

import (
	"context"
	"log"
	"strings"
	"time"

	"marketplace/config"
	"marketplace/controllers"
	"marketplace/database"
	"marketplace/kafka"
	"marketplace/logger"
	"marketplace/repository"
	"marketplace/routes"
	"marketplace/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[Marketplace] Failed to load config:", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("[Marketplace] Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatal("[Marketplace] Failed to ensure indexes:", err)
	}
	cancel()

	productRepo := repository.NewMongoProductRepo(db)
	orderRepo := repository.NewMongoOrderRepo(db)
	userRepo := repository.NewMongoUserRepo(db)

	stripeSvc := services.NewStripeService(cfg.StripeSecretKey, cfg.StripeWebhookKey)
	producer := kafka.NewPaymentEventProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.PaymentEventTopic, logger.Log)
	defer producer.Close()

	checkoutSvc := services.NewCheckoutService(productRepo, orderRepo, stripeSvc, cfg.ServerURL, cfg.StripeFeePriceID, logger.Log)
	userSvc := services.NewUserService(userRepo, cfg.ServerURL, logger.Log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	pc := controllers.NewPaymentController(checkoutSvc, stripeSvc, orderRepo, producer, logger.Log)
	ac := controllers.NewAuthController(userSvc)
	routes.Register(r, pc, ac, cfg.JWTSecret)

	log.Println("[Marketplace] Running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[Marketplace] Server failed:", err)
	}
}
