package controllers

import (
	"encoding/json"
	"net/http"

	"amoria_server/helpers"
	"amoria_server/services"
)

// S3Controller handles HTTP requests for media presigned URLs
type S3Controller struct {
	S3Service *services.S3Service
}

// NewS3Controller creates a new S3Controller instance
func NewS3Controller(s3Service *services.S3Service) *S3Controller {
	return &S3Controller{S3Service: s3Service}
}

// GenerateUploadURL returns a presigned PUT URL for an avatar upload
func (sc *S3Controller) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.FileName == "" || request.FileType == "" {
		http.Error(w, "fileName and fileType are required", http.StatusBadRequest)
		return
	}

	uploadURL, key, err := sc.S3Service.GenerateUploadURL(r.Context(), request.FileName, request.FileType)
	if err != nil {
		http.Error(w, "Failed to generate upload URL", http.StatusInternalServerError)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"uploadUrl": uploadURL,
		"key":       key,
	})
}

// GenerateReadURL returns a presigned GET URL for a stored object
func (sc *S3Controller) GenerateReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}

	readURL, err := sc.S3Service.GenerateReadURL(r.Context(), key)
	if err != nil {
		http.Error(w, "Failed to generate read URL", http.StatusInternalServerError)
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"readUrl": readURL,
	})
}
