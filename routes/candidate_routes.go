package routes

import (
	"amoria_server/controllers"
	"amoria_server/services"

	"github.com/gorilla/mux"
)

// RegisterCandidateRoutes sets up routes for the candidate pool under /api/candidates
func RegisterCandidateRoutes(r *mux.Router, candidateService *services.CandidateService) {
	controller := controllers.NewCandidateController(candidateService)

	candidateRouter := r.PathPrefix("/api/candidates").Subrouter()
	candidateRouter.HandleFunc("", controller.GetMatchCandidates).Methods("GET")
}
