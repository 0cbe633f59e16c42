package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Shu5555/jinro-app/internal/api/apierr"
	"github.com/Shu5555/jinro-app/internal/api/request"
	"github.com/Shu5555/jinro-app/internal/api/response"
	"github.com/Shu5555/jinro-app/internal/services/lottery"
)

// LotteryHandler handles the coin toss and draw-lots endpoints
type LotteryHandler struct {
	lotteryService *lottery.Service
}

// NewLotteryHandler creates a new lottery handler
func NewLotteryHandler(lotteryService *lottery.Service) *LotteryHandler {
	return &LotteryHandler{lotteryService: lotteryService}
}

// Coin handles POST /api/v1/lottery/coin
func (h *LotteryHandler) Coin(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.CoinToss{Result: h.lotteryService.CoinToss()})
}

// Draw handles POST /api/v1/lottery/draw
func (h *LotteryHandler) Draw(w http.ResponseWriter, r *http.Request) {
	var req request.DrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequest("Invalid request body"))
		return
	}

	winner, err := h.lotteryService.Draw(req.Candidates)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DrawResult{Winner: winner})
}
