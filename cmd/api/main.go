package main

import (
	"context"
	"log"
	"time"

	"courier-connect/internal/core/cache"
	"courier-connect/internal/core/config"
	"courier-connect/internal/core/logger"
	"courier-connect/internal/core/server"
	accessibilityadapter "courier-connect/internal/features/accessibility/adapters"
	accessibilityhandler "courier-connect/internal/features/accessibility/handler"
	accessibilityservice "courier-connect/internal/features/accessibility/service"
	authadapter "courier-connect/internal/features/auth/adapters"
	authhandler "courier-connect/internal/features/auth/handler"
	authservice "courier-connect/internal/features/auth/service"
	messageadapter "courier-connect/internal/features/messages/adapters"
	messagehandler "courier-connect/internal/features/messages/handler"
	messageservice "courier-connect/internal/features/messages/service"
	paymentadapter "courier-connect/internal/features/payments/adapters"
	paymentdomain "courier-connect/internal/features/payments/domain"
	paymenthandler "courier-connect/internal/features/payments/handler"
	paymentservice "courier-connect/internal/features/payments/service"
	requestadapter "courier-connect/internal/features/requests/adapters"
	requesthandler "courier-connect/internal/features/requests/handler"
	requestservice "courier-connect/internal/features/requests/service"
	trackingadapter "courier-connect/internal/features/tracking/adapters"
	trackinghandler "courier-connect/internal/features/tracking/handler"
	"courier-connect/internal/features/tracking/ports"
	trackingservice "courier-connect/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title Courier Connect API
// @version 1.0
// @description Peer-to-peer delivery marketplace: requesters post delivery requests, travelers carry them.
// @contact.name API Support
// @contact.email support@courierconnect.io
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Snapshot store
	store, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Auth
	authenticator := authadapter.NewStubAuthenticator(cfg.Auth.SimulatedLatency())
	sessionRepo := authadapter.NewRedisSessionRepository(store)
	tokenCodec := authadapter.NewJWTCodec(cfg.Auth.Secret)
	sessionService := authservice.NewSessionService(authenticator, sessionRepo, tokenCodec, cfg.Auth.SessionTTL())
	sessionHandler := authhandler.NewSessionHandler(sessionService)

	// Accessibility preferences
	preferenceRepo := accessibilityadapter.NewRedisPreferenceRepository(store)
	preferenceService := accessibilityservice.NewPreferenceService(preferenceRepo)
	preferenceHandler := accessibilityhandler.NewPreferenceHandler(preferenceService)

	// Payments and escrow
	paymentRepo := paymentadapter.NewMemoryPaymentRepository(paymentadapter.SeedPayments()...)
	paymentSvc := paymentservice.NewPaymentService(paymentRepo)
	escrow := paymentservice.NewEscrowService(paymentSvc, paymentdomain.MethodCreditCard)
	paymentHdl := paymenthandler.NewPaymentHandler(paymentSvc)

	// Tracking
	progressRepo := trackingadapter.NewRedisProgressRepository(store)
	var locations ports.LocationProvider
	if cfg.Tracking.FeedURL != "" {
		locations = trackingadapter.NewHTTPFeedProvider(cfg.Tracking.FeedURL)
		l.Info("Using HTTP location feed", zap.String("feed_url", cfg.Tracking.FeedURL))
	} else {
		locations = trackingadapter.NewSimulatedFeedProvider()
		l.Info("No location feed configured, using simulated route")
	}
	trackingSvc := trackingservice.NewTrackingService(progressRepo, locations, cfg.Tracking.PollInterval())
	defer trackingSvc.Close()
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	// Delivery requests
	requestRepo := requestadapter.NewMemoryRequestRepository(requestadapter.SeedRequests()...)
	requestSvc := requestservice.NewRequestService(requestRepo, escrow, trackingSvc.Recorder())
	requestHdl := requesthandler.NewRequestHandler(requestSvc)

	// Messages
	messageRepo := messageadapter.NewMemoryMessageRepository(messageadapter.SeedMessages()...)
	messageSvc := messageservice.NewMessageService(messageRepo)
	messageHdl := messagehandler.NewMessageHandler(messageSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/auth/login", sessionHandler.Login)
	srv.App.Post("/auth/register", sessionHandler.Register)

	authenticated := srv.App.Group("", authhandler.RequireSession(sessionService))
	authenticated.Post("/auth/logout", sessionHandler.Logout)
	authenticated.Get("/auth/me", sessionHandler.Me)

	authenticated.Get("/preferences", preferenceHandler.GetPreferences)
	authenticated.Patch("/preferences", preferenceHandler.UpdatePreferences)

	authenticated.Get("/requests", requestHdl.Browse)
	authenticated.Post("/requests", requestHdl.Create)
	authenticated.Get("/requests/:id", requestHdl.Get)
	authenticated.Post("/requests/:id/accept", requestHdl.Accept)
	authenticated.Post("/requests/:id/advance", requestHdl.Advance)
	authenticated.Post("/requests/:id/cancel", requestHdl.Cancel)

	authenticated.Get("/tracking/:deliveryID", trackingHdl.Track)
	authenticated.Post("/tracking/:deliveryID/advance", trackingHdl.Advance)

	authenticated.Post("/messages", messageHdl.Send)
	authenticated.Get("/messages/unread", messageHdl.Unread)
	authenticated.Get("/messages/:peerID", messageHdl.Conversation)
	authenticated.Post("/messages/:peerID/read", messageHdl.MarkRead)

	authenticated.Get("/payments", paymentHdl.List)
	authenticated.Get("/payments/summary", paymentHdl.Summary)
	authenticated.Post("/payments/:id/hold", paymentHdl.Hold)
	authenticated.Post("/payments/:id/complete", paymentHdl.Complete)
	authenticated.Post("/payments/:id/refund", paymentHdl.Refund)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
