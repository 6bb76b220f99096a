package routes

import (
	"amoria_server/controllers"
	"amoria_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for media presigned URLs under /api/s3
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service) {
	controller := controllers.NewS3Controller(s3Service)

	s3Router := r.PathPrefix("/api/s3").Subrouter()
	s3Router.HandleFunc("/uploadUrl", controller.GenerateUploadURL).Methods("POST")
	s3Router.HandleFunc("/readUrl", controller.GenerateReadURL).Methods("GET")
}
