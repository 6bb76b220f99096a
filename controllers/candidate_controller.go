package controllers

import (
	"log"
	"net/http"
	"strconv"

	"amoria_server/helpers"
	"amoria_server/services"
)

// CandidateController handles HTTP requests for the swipe-screen candidate pool
type CandidateController struct {
	CandidateService *services.CandidateService
}

// NewCandidateController creates a new CandidateController instance
func NewCandidateController(candidateService *services.CandidateService) *CandidateController {
	return &CandidateController{CandidateService: candidateService}
}

// GetMatchCandidates returns the ranked candidate pool for the viewer
func (cc *CandidateController) GetMatchCandidates(w http.ResponseWriter, r *http.Request) {
	viewerID := r.URL.Query().Get("userId")
	if viewerID == "" {
		writeServiceError(w, services.ErrNotAuthenticated)
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	candidates, err := cc.CandidateService.GetMatchCandidates(r.Context(), viewerID, limit)
	if err != nil {
		log.Printf("failed to fetch candidates for %s: %v", viewerID, err)
		writeServiceError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"candidates": candidates,
	})
}
