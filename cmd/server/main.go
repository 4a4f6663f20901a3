package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"uplevelsite/internal/config"
	"uplevelsite/internal/service"
	"uplevelsite/internal/transport/rest"
)

func main() {
	log.Println("started")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	log.Printf("Config:")
	log.Printf("  Model:     %s", cfg.AnthropicModel)
	if cfg.ChatEnabled() {
		log.Println("  Anthropic: configured ✓")
	} else {
		log.Println("  Anthropic: NOT SET (chat disabled)")
	}
	if cfg.EmailEnabled() {
		log.Println("  Resend:    configured ✓")
	} else {
		log.Println("  Resend:    NOT SET (email disabled)")
	}
	if cfg.LoggingEnabled() {
		log.Println("  Webhook:   configured ✓")
	} else {
		log.Println("  Webhook:   NOT SET (lead logging disabled)")
	}

	// Initialize services
	chat := service.NewClaudeClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	sheets := service.NewSheetsClient(cfg.LeadWebhookURL)
	notify := service.NewNotifyService(cfg, sheets)
	extractor := service.NewExtractorService(chat)
	reports := service.NewReportService()
	assessments := service.NewAssessmentService()
	wizard := service.NewWizardService(chat, extractor, reports, notify, cfg.AbandonTimeout)

	// Create router with container
	container := &rest.Container{
		Chat:        chat,
		Extractor:   extractor,
		Reports:     reports,
		Notify:      notify,
		Wizard:      wizard,
		Assessments: assessments,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /api/chat")
		log.Println("  POST /api/extract-process-data")
		log.Println("  POST /api/generate-pdf")
		log.Println("  POST /api/send-email")
		log.Println("  POST /api/send-assessment-email")
		log.Println("  POST /api/send-abandon-alert")
		log.Println("  POST /api/wizard/start")
		log.Println("  POST /api/wizard/{sessionId}/message")
		log.Println("  GET  /api/wizard/{sessionId}/result")
		log.Println("  POST /api/assessment/submit")
		log.Println("  GET  /api/health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
