package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Shu5555/jinro-app/internal/api/handler"
	"github.com/Shu5555/jinro-app/internal/api/middleware"
	"github.com/Shu5555/jinro-app/internal/services/distribution"
	"github.com/Shu5555/jinro-app/internal/services/lottery"
	"github.com/Shu5555/jinro-app/internal/services/reveal"
	"github.com/Shu5555/jinro-app/internal/services/vote"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	DistributionService *distribution.Service
	RevealService       *reveal.Service
	VoteService         *vote.Service
	LotteryService      *lottery.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	catalogHandler := handler.NewCatalogHandler()
	distributionHandler := handler.NewDistributionHandler(cfg.DistributionService, cfg.RevealService)
	sessionHandler := handler.NewSessionHandler(cfg.VoteService)
	lotteryHandler := handler.NewLotteryHandler(cfg.LotteryService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Catalog routes
	api.HandleFunc("/catalog/convert", catalogHandler.Convert).Methods(http.MethodPost)

	// Distribution routes
	api.HandleFunc("/distributions", distributionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/distributions/{id}", distributionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/distributions/{id}/reveal", distributionHandler.Reveal).Methods(http.MethodPost)
	api.HandleFunc("/reveal", distributionHandler.RevealPayload).Methods(http.MethodPost)

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/votes/{voter}", sessionHandler.CastVote).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{id}/tally", sessionHandler.Tally).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/chat/{player}", sessionHandler.PostMessage).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/chat/{player}", sessionHandler.GetMessages).Methods(http.MethodGet)

	// Lottery routes
	api.HandleFunc("/lottery/coin", lotteryHandler.Coin).Methods(http.MethodPost)
	api.HandleFunc("/lottery/draw", lotteryHandler.Draw).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
