package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Shu5555/jinro-app/internal/api/apierr"
	"github.com/Shu5555/jinro-app/internal/api/request"
	"github.com/Shu5555/jinro-app/internal/api/response"
	"github.com/Shu5555/jinro-app/internal/catalog"
	"github.com/Shu5555/jinro-app/internal/model"
	"github.com/Shu5555/jinro-app/internal/services/assign"
	"github.com/Shu5555/jinro-app/internal/services/distribution"
	"github.com/Shu5555/jinro-app/internal/services/reveal"
)

// DistributionHandler handles generation and reveal endpoints
type DistributionHandler struct {
	distributionService *distribution.Service
	revealService       *reveal.Service
}

// NewDistributionHandler creates a new distribution handler
func NewDistributionHandler(distributionService *distribution.Service, revealService *reveal.Service) *DistributionHandler {
	return &DistributionHandler{
		distributionService: distributionService,
		revealService:       revealService,
	}
}

// Create handles POST /api/v1/distributions
func (h *DistributionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDistributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequest("Invalid request body"))
		return
	}

	cat, err := buildCatalog(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	assignReq, err := buildAssignRequest(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.distributionService.Generate(r.Context(), cat, assignReq)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.DistributionFromModel(result.Distribution, result.Payload))
}

// Get handles GET /api/v1/distributions/{id}
func (h *DistributionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.DistributionID(mux.Vars(r)["id"])

	payload, err := h.distributionService.GetPayload(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Payload{ID: string(id), Payload: payload})
}

// Reveal handles POST /api/v1/distributions/{id}/reveal
func (h *DistributionHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	id := model.DistributionID(mux.Vars(r)["id"])

	var req request.RevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequest("Invalid request body"))
		return
	}
	if req.Password == "" {
		WriteError(w, apierr.NewInvalidRequest("password is required"))
		return
	}

	assignment, err := h.revealService.RevealByID(r.Context(), id, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AssignmentFromModel(assignment))
}

// RevealPayload handles POST /api/v1/reveal, for payloads carried in a
// shared URL rather than stored server-side
func (h *DistributionHandler) RevealPayload(w http.ResponseWriter, r *http.Request) {
	var req request.RevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequest("Invalid request body"))
		return
	}
	if req.Payload == "" || req.Password == "" {
		WriteError(w, apierr.NewInvalidRequest("payload and password are required"))
		return
	}

	assignment, err := h.revealService.RevealPayload(req.Payload, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AssignmentFromModel(assignment))
}

// buildCatalog constructs a validated catalog from the request's role
// sheet or structured records
func buildCatalog(req request.CreateDistributionRequest) (*catalog.Catalog, error) {
	if req.RolesCSV != "" {
		cat, err := catalog.Load(strings.NewReader(req.RolesCSV))
		if err != nil {
			return nil, err
		}
		return cat, nil
	}

	if len(req.Roles) == 0 {
		return nil, apierr.NewInvalidRequest("roles_csv or roles is required")
	}

	roles := make([]model.Role, 0, len(req.Roles))
	for _, rec := range req.Roles {
		team, ok := model.ParseTeam(rec.Team)
		if !ok {
			return nil, apierr.NewInvalidRequest(fmt.Sprintf("unknown team %q for role %q", rec.Team, rec.Name))
		}
		roles = append(roles, model.Role{
			Name:             rec.Name,
			Team:             team,
			Category:         rec.Category,
			Ability:          rec.Ability,
			WinCondition:     rec.WinCondition,
			FortuneResult:    rec.FortuneResult,
			RelatedRoleName:  rec.RelatedRole,
			RelatedRoleCount: rec.RelatedRoleCount,
			Author:           rec.Author,
		})
	}
	return catalog.New(roles)
}

// buildAssignRequest converts the wire-level count requests
func buildAssignRequest(req request.CreateDistributionRequest) (assign.Request, error) {
	counts := make([]assign.CountRequest, 0, len(req.Counts))
	for _, c := range req.Counts {
		team, ok := model.ParseTeam(c.Team)
		if !ok {
			return assign.Request{}, apierr.NewInvalidRequest(fmt.Sprintf("unknown team %q in counts", c.Team))
		}
		counts = append(counts, assign.CountRequest{
			Team:     team,
			Category: c.Category,
			Count:    c.Count,
		})
	}
	return assign.Request{
		Participants: req.Participants,
		Counts:       counts,
	}, nil
}
