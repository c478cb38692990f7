package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"

	"github.com/benvon/zen-planner/internal/config"
	"github.com/benvon/zen-planner/internal/handlers"
	"github.com/benvon/zen-planner/internal/logger"
	"github.com/benvon/zen-planner/internal/middleware"
	"github.com/benvon/zen-planner/internal/services/ai"
	"github.com/benvon/zen-planner/internal/telemetry"
)

const serviceName = "zen-planner-gateway"

var version = "dev"

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug mode for LLM API logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		if syncErr := zapLogger.Sync(); syncErr != nil {
			_ = syncErr
		}
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("frontend_url", cfg.FrontendURL),
		zap.String("ai_model", cfg.AIModel),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	// Initialize OpenTelemetry if enabled
	if cfg.OTELEnabled {
		if cfg.OTELEndpoint == "" {
			zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		} else {
			tp, err := telemetry.InitTracer(context.Background(), serviceName, cfg.OTELEndpoint)
			if err != nil {
				zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
			} else {
				zapLogger.Info("otel_tracer_initialized",
					zap.String("endpoint", cfg.OTELEndpoint),
				)
				defer func() {
					shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer shutdownCancel()
					if err := telemetry.Shutdown(shutdownCtx, tp); err != nil {
						zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
					}
				}()
			}
		}
	}

	// Initialize AI provider. The server still starts without a key so
	// the health probes stay up; the relay endpoints report the missing
	// configuration instead.
	var aiProvider ai.Provider
	if cfg.OpenAIKey == "" {
		zapLogger.Warn("openai_key_not_configured_ai_features_disabled")
	} else {
		aiProvider = ai.NewOpenAIProviderWithLogger(
			cfg.OpenAIKey,
			cfg.AIBaseURL,
			cfg.AIModel,
			zapLogger,
			debugMode,
		)
	}

	chatLimiter := middleware.NewRateLimiter("chat", middleware.ChatRequestsPerMinute, time.Minute)
	analyzeLimiter := middleware.NewRateLimiter("analyze", middleware.AnalyzeRequestsPerMinute, time.Minute)

	advisorHandler := handlers.NewAdvisorHandler(aiProvider, chatLimiter, zapLogger)
	analyzeHandler := handlers.NewAnalyzeHandler(aiProvider, analyzeLimiter, zapLogger)
	healthHandler := handlers.NewHealthHandler(version, zapLogger)

	r := mux.NewRouter()

	// Middleware, outermost first
	if cfg.OTELEnabled {
		r.Use(otelmux.Middleware(serviceName))
		zapLogger.Info("otel_middleware_enabled")
	}
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ErrorHandler(zapLogger))
	r.Use(middleware.Logging(zapLogger))

	healthHandler.RegisterRoutes(r)

	apiRouter := r.PathPrefix("/api").Subrouter()
	advisorHandler.RegisterRoutes(apiRouter)
	analyzeHandler.RegisterRoutes(apiRouter)

	// Catch-all OPTIONS handler for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting",
			zap.String("port", cfg.ServerPort),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}
