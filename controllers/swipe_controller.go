package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"amoria_server/helpers"
	"amoria_server/services"
)

// SwipeController handles HTTP requests for swipe decisions
type SwipeController struct {
	SwipeService *services.SwipeService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(swipeService *services.SwipeService) *SwipeController {
	return &SwipeController{SwipeService: swipeService}
}

// CreateSwipe records a like/pass decision and reports whether it produced a
// match
func (sc *SwipeController) CreateSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ActorID  string `json:"actorId"`
		TargetID string `json:"targetId"`
		Action   string `json:"action"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.ActorID == "" {
		writeServiceError(w, services.ErrNotAuthenticated)
		return
	}
	if request.TargetID == "" || request.Action == "" {
		http.Error(w, "targetId and action are required", http.StatusBadRequest)
		return
	}

	result, err := sc.SwipeService.CreateSwipe(r.Context(), request.ActorID, request.TargetID, request.Action)
	if err != nil {
		log.Printf("failed to process swipe %s -> %s: %v", request.ActorID, request.TargetID, err)
		writeServiceError(w, err)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, result)
}
