package routes

import (
	"localaid_server/controllers"
	"localaid_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up presigned media URL routes under /api/media
func RegisterS3Routes(r *mux.Router, s3 *services.S3Service) {
	controller := controllers.NewS3Controller(s3)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()

	mediaRouter.HandleFunc("/upload-url", controller.HandleGenerateUploadURL).Methods("GET")
	mediaRouter.HandleFunc("/read-url", controller.HandleGenerateReadURL).Methods("GET")
}
