package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Shu5555/jinro-app/internal/api/apierr"
	"github.com/Shu5555/jinro-app/internal/api/request"
	"github.com/Shu5555/jinro-app/internal/api/response"
	"github.com/Shu5555/jinro-app/internal/catalog"
)

// CatalogHandler handles role-sheet conversion endpoints
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Convert handles POST /api/v1/catalog/convert
func (h *CatalogHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req request.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequest("Invalid request body"))
		return
	}
	if req.SurveyCSV == "" {
		WriteError(w, apierr.NewInvalidRequest("survey_csv is required"))
		return
	}

	roles, err := catalog.ConvertSurvey(strings.NewReader(req.SurveyCSV))
	if err != nil {
		WriteError(w, apierr.NewInvalidRequest(err.Error()))
		return
	}

	resp := response.ConvertResponse{Roles: make([]response.Role, 0, len(roles))}
	for _, role := range roles {
		resp.Roles = append(resp.Roles, response.RoleFromModel(role))
	}

	response.JSON(w, http.StatusOK, resp)
}
