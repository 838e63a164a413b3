package main

import (
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user/startup-sim/config"
	"github.com/user/startup-sim/internal/sim"
	"github.com/user/startup-sim/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	flag.Parse()

	// Set up logger
	logger := setupLogger()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize simulation manager
	manager := sim.NewManager(cfg)
	manager.SetLogger(logger)

	// Set up HTTP server
	server := setupHTTPServer(cfg, manager, logger)

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	// Start the auto-advance system if configured
	if cfg.Game.AutoAdvanceInterval > 0 {
		autoAdvance := sim.NewAutoAdvanceSystem(manager, time.Duration(cfg.Game.AutoAdvanceInterval)*time.Minute)
		autoAdvance.Start()
		defer autoAdvance.Stop()
		logger.Info("Auto-advance system started",
			zap.Int("interval_minutes", cfg.Game.AutoAdvanceInterval))
	}

	// Wait for shutdown signal
	waitForShutdown(logger)
}

func setupLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}

// statusForError maps core errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, sim.ErrCompanyNotFound),
		errors.Is(err, sim.ErrDecisionNotFound),
		errors.Is(err, sim.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, sim.ErrCompanyExists):
		return http.StatusConflict
	case errors.Is(err, sim.ErrInvalidOption),
		errors.Is(err, sim.ErrUnknownDecisionType),
		errors.Is(err, sim.ErrInvalidBusinessType),
		errors.Is(err, sim.ErrInvalidFundingType),
		errors.Is(err, sim.ErrDecisionCompleted):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusForError(err), map[string]string{"error": err.Error()})
}

func setupHTTPServer(cfg config.Config, manager *sim.Manager, logger *zap.Logger) *http.Server {
	// Create router
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	router.Handle("/metrics", promhttp.Handler())

	// Create a company
	router.Post("/companies", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID  string `json:"user_id"`
			Name    string `json:"name"`
			Type    string `json:"type"`
			Funding string `json:"funding"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if req.UserID == "" || req.Name == "" {
			http.Error(w, "user_id and name are required", http.StatusBadRequest)
			return
		}
		if !types.ValidBusinessType(types.BusinessType(req.Type)) {
			http.Error(w, "invalid business type", http.StatusBadRequest)
			return
		}
		if !types.ValidFundingType(types.FundingType(req.Funding)) {
			http.Error(w, "invalid funding type", http.StatusBadRequest)
			return
		}

		company, err := manager.CreateCompany(req.UserID, req.Name,
			types.BusinessType(req.Type), types.FundingType(req.Funding))
		if err != nil {
			logger.Error("Failed to create company", zap.Error(err))
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, company)
	})

	// Get a company
	router.Get("/companies/{company_id}", func(w http.ResponseWriter, r *http.Request) {
		company, err := manager.GetCompany(chi.URLParam(r, "company_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, company)
	})

	// Advance to the next quarter
	router.Post("/companies/{company_id}/advance", func(w http.ResponseWriter, r *http.Request) {
		companyID := chi.URLParam(r, "company_id")
		result, err := manager.AdvanceQuarter(companyID)
		if err != nil {
			logger.Error("Failed to advance quarter",
				zap.String("company_id", companyID),
				zap.Error(err))
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	})

	// Submit a batch of decisions for the current quarter
	router.Post("/companies/{company_id}/decisions", func(w http.ResponseWriter, r *http.Request) {
		companyID := chi.URLParam(r, "company_id")
		var req struct {
			Decisions []types.DecisionSubmission `json:"decisions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		for _, sub := range req.Decisions {
			if !types.ValidDecisionType(sub.Type) {
				http.Error(w, "invalid decision type", http.StatusBadRequest)
				return
			}
			if sub.DecisionID == "" {
				http.Error(w, "decision_id is required", http.StatusBadRequest)
				return
			}
		}

		result, err := manager.SubmitDecisions(companyID, req.Decisions)
		if err != nil {
			logger.Error("Failed to submit decisions",
				zap.String("company_id", companyID),
				zap.Error(err))
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	})

	// Resolve a single pending decision
	router.Post("/companies/{company_id}/decisions/{decision_id}/resolve", func(w http.ResponseWriter, r *http.Request) {
		companyID := chi.URLParam(r, "company_id")
		decisionID := chi.URLParam(r, "decision_id")
		var req struct {
			OptionID string `json:"option_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if req.OptionID == "" {
			http.Error(w, "option_id is required", http.StatusBadRequest)
			return
		}

		company, event, err := manager.ResolveDecision(companyID, decisionID, req.OptionID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"company": company,
			"event":   event,
		})
	})

	// Resolve an event
	router.Post("/companies/{company_id}/events/{event_id}/resolve", func(w http.ResponseWriter, r *http.Request) {
		event, err := manager.ResolveEvent(chi.URLParam(r, "company_id"), chi.URLParam(r, "event_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, event)
	})

	// Toggle auto-management
	router.Post("/companies/{company_id}/auto", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Enabled bool `json:"enabled"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if err := manager.SetAutoManaged(chi.URLParam(r, "company_id"), req.Enabled); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	// Feeds
	router.Get("/companies/{company_id}/competitors", func(w http.ResponseWriter, r *http.Request) {
		comps, err := manager.CompetitorsOf(chi.URLParam(r, "company_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, comps)
	})

	router.Get("/companies/{company_id}/financials", func(w http.ResponseWriter, r *http.Request) {
		records, err := manager.FinancialRecordsOf(chi.URLParam(r, "company_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, records)
	})

	router.Get("/companies/{company_id}/events", func(w http.ResponseWriter, r *http.Request) {
		events, err := manager.EventsOf(chi.URLParam(r, "company_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, events)
	})

	router.Get("/companies/{company_id}/decisions", func(w http.ResponseWriter, r *http.Request) {
		decisions, err := manager.DecisionsOf(chi.URLParam(r, "company_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, decisions)
	})

	router.Get("/companies/{company_id}/decisions/pending", func(w http.ResponseWriter, r *http.Request) {
		decisions, err := manager.PendingDecisionsOf(chi.URLParam(r, "company_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, decisions)
	})

	router.Get("/companies/{company_id}/advice", func(w http.ResponseWriter, r *http.Request) {
		advice, err := manager.AdviceOf(chi.URLParam(r, "company_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, advice)
	})

	// Create HTTP server
	return &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
}

func waitForShutdown(logger *zap.Logger) {
	// Set up channel for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	sig := <-sigChan
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	// Perform cleanup
	logger.Info("Shutting down")
}
