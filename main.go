package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"dovela/internal/analysis"
	"dovela/internal/auth"
	"dovela/internal/batch"
	"dovela/internal/config"
	"dovela/internal/history"
	"dovela/internal/logging"
	"dovela/internal/metrics"
	"dovela/internal/repo"
	"dovela/internal/report"
	"dovela/internal/validation"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(router *mux.Router, db *sql.DB, cfg config.Config) {
	userRepo := repo.NewPostgresDB(db)

	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: userRepo}
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	analysisH := analysis.NewHandler()
	validationH := validation.NewHandler()
	reportH := &report.Handler{}
	batchH := batch.NewHandler(cfg.SweepWorkers)
	historyH := history.NewHandler(userRepo)

	secureApi.HandleFunc("/tools/dowel/analyze", analysisH.Analyze).Methods("POST")
	secureApi.HandleFunc("/tools/dowel/validate", validationH.Check).Methods("POST")
	secureApi.HandleFunc("/tools/dowel/field", analysisH.Field).Methods("POST")
	secureApi.HandleFunc("/tools/dowel/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/dowel/sweep", batchH.Sweep).Methods("POST")
	secureApi.HandleFunc("/tools/dowel/sweep/import", batchH.Import).Methods("POST")

	secureApi.HandleFunc("/history", historyH.Save).Methods("POST")
	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/history/{id:[0-9]+}", historyH.Get).Methods("GET")
	secureApi.HandleFunc("/history/{id:[0-9]+}", historyH.Delete).Methods("DELETE")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("configuration", zap.Error(err))
	}
	if err := logging.Initialize(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		logging.Fatal("logger", zap.Error(err))
	}
	defer logging.Sync()

	db := auth.InitDB(cfg.DatabaseURL)
	defer db.Close()

	router := mux.NewRouter()
	// Inside the router so the middleware sees the matched route template.
	router.Use(metrics.Middleware)
	HandleList(router, db, cfg)
	handler := CORS(router)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	logging.Info("starting server", zap.String("addr", cfg.Addr))
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile); err != nil && err != http.ErrServerClosed {
			logging.Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logging.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Fatal("server shutdown", zap.Error(err))
	}
	logging.Info("server stopped")

	wg.Wait()
}
