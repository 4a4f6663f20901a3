package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"uplevelsite/internal/service"
	"uplevelsite/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	Chat        service.ChatCompleter
	Extractor   service.Extractor
	Reports     service.Renderer
	Notify      *service.NotifyService
	Wizard      *service.WizardService
	Assessments *service.AssessmentService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	chatHandler := handler.NewChatHandler(c.Chat)
	extractHandler := handler.NewExtractHandler(c.Extractor)
	pdfHandler := handler.NewPDFHandler(c.Reports)
	emailHandler := handler.NewEmailHandler(c.Notify, c.Assessments)
	wizardHandler := handler.NewWizardHandler(c.Wizard)
	assessmentHandler := handler.NewAssessmentHandler(c.Assessments, c.Notify)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/chat", chatHandler.Complete).Methods("POST", "OPTIONS")
	api.HandleFunc("/extract-process-data", extractHandler.Extract).Methods("POST", "OPTIONS")
	api.HandleFunc("/generate-pdf", pdfHandler.Generate).Methods("POST", "OPTIONS")
	api.HandleFunc("/send-email", emailHandler.SendProcess).Methods("POST", "OPTIONS")
	api.HandleFunc("/send-assessment-email", emailHandler.SendAssessment).Methods("POST", "OPTIONS")
	api.HandleFunc("/send-abandon-alert", emailHandler.SendAbandonAlert).Methods("POST", "OPTIONS")

	// Server-side wizard sessions
	api.HandleFunc("/wizard/start", wizardHandler.Start).Methods("POST", "OPTIONS")
	api.HandleFunc("/wizard/{sessionId}/message", wizardHandler.Message).Methods("POST", "OPTIONS")
	api.HandleFunc("/wizard/{sessionId}/result", wizardHandler.Result).Methods("GET", "OPTIONS")

	api.HandleFunc("/assessment/submit", assessmentHandler.Submit).Methods("POST", "OPTIONS")

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
