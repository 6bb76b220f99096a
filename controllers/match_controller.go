package controllers

import (
	"net/http"

	"amoria_server/helpers"
	"amoria_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles HTTP requests for existing matches
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// GetMatches lists the user's matches with the other participant's profile
func (mc *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeServiceError(w, services.ErrNotAuthenticated)
		return
	}

	matches, err := mc.MatchService.GetMatches(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
	})
}

// GetMatchByID resolves a single match by its uuid
func (mc *MatchController) GetMatchByID(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	match, err := mc.MatchService.GetMatchByID(r.Context(), matchID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, match)
}
