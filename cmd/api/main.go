package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/wibes/draw-api/internal/card"
	"github.com/wibes/draw-api/internal/config"
	"github.com/wibes/draw-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/wibes/draw-api/internal/infrastructure/jwt"
	s3infra "github.com/wibes/draw-api/internal/infrastructure/s3"
	"github.com/wibes/draw-api/internal/infrastructure/sns"
	"github.com/wibes/draw-api/internal/prize"
	transporthttp "github.com/wibes/draw-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// Token issuance is load-bearing for every flow, so a missing secret is fatal.
	jwtProvider, err := jwtinfra.NewProvider(cfg.JWTSecret, time.Duration(cfg.JWTExpiryDays)*24*time.Hour)
	if err != nil {
		log.Fatalf("JWT provider: %v", err)
	}

	// S3-backed card store.
	s3Client := s3infra.NewClient(cfg)
	cards := card.NewGenerator(s3infra.NewStore(s3Client, cfg.S3BucketName))

	// SNS SMS sender (optional — graceful fallback).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	deps := &transporthttp.Deps{
		ParticipantRepo:  dynamo.NewParticipantRepo(dynamoClient, cfg.DynamoTables.Participants),
		RegistrationRepo: dynamo.NewRegistrationRepo(dynamoClient, cfg.DynamoTables.Registrations),
		Cards:            cards,
		JWTProvider:      jwtProvider,
		PrizeTable:       prize.NewTable(cfg.PrizeBands),
		SMSSender:        smsSender,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
