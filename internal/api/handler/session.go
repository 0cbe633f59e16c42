package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Shu5555/jinro-app/internal/api/apierr"
	"github.com/Shu5555/jinro-app/internal/api/request"
	"github.com/Shu5555/jinro-app/internal/api/response"
	"github.com/Shu5555/jinro-app/internal/model"
	"github.com/Shu5555/jinro-app/internal/services/vote"
)

// GMPassphraseHeader carries the GM passphrase on GM-only endpoints
const GMPassphraseHeader = "X-GM-Passphrase"

// SessionHandler handles voting session endpoints
type SessionHandler struct {
	voteService *vote.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(voteService *vote.Service) *SessionHandler {
	return &SessionHandler{voteService: voteService}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequest("Invalid request body"))
		return
	}
	if req.GMPassphrase == "" {
		WriteError(w, apierr.NewInvalidRequest("gm_passphrase is required"))
		return
	}

	session, err := h.voteService.CreateSession(r.Context(), req.Participants, req.GMPassphrase)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(session))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	session, err := h.voteService.GetSession(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// CastVote handles PUT /api/v1/sessions/{id}/votes/{voter}
func (h *SessionHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.SessionID(vars["id"])
	voter := vars["voter"]

	var req request.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequest("Invalid request body"))
		return
	}

	if err := h.voteService.CastVote(r.Context(), id, voter, req.Target); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Tally handles GET /api/v1/sessions/{id}/tally (GM only)
func (h *SessionHandler) Tally(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	tally, err := h.voteService.Tally(r.Context(), id, r.Header.Get(GMPassphraseHeader))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Tally{Votes: tally})
}

// PostMessage handles POST /api/v1/sessions/{id}/chat/{player}
func (h *SessionHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.SessionID(vars["id"])
	player := vars["player"]

	var req request.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequest("Invalid request body"))
		return
	}

	msg, err := h.voteService.PostMessage(r.Context(), id, req.From, player, req.Text)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ChatMessageFromModel(*msg))
}

// GetMessages handles GET /api/v1/sessions/{id}/chat/{player}
func (h *SessionHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.SessionID(vars["id"])
	player := vars["player"]

	messages, err := h.voteService.Messages(r.Context(), id, player)
	if err != nil {
		WriteError(w, err)
		return
	}

	history := response.ChatHistory{
		Room:     model.ChatRoomID(model.GMName, player),
		Messages: make([]response.ChatMessage, 0, len(messages)),
	}
	for _, m := range messages {
		history.Messages = append(history.Messages, response.ChatMessageFromModel(m))
	}

	response.JSON(w, http.StatusOK, history)
}
