package routes

import (
	"localaid_server/controllers"
	"localaid_server/services"
	"localaid_server/socket"

	"github.com/gorilla/mux"
)

// RegisterPostRoutes sets up routes for post operations under /api/posts
func RegisterPostRoutes(r *mux.Router, posts *services.PostService, notifications *services.NotificationService, s3 *services.S3Service, router *socket.EventRouter) {
	controller := controllers.NewPostController(posts, notifications, s3, router)

	postRouter := r.PathPrefix("/api/posts").Subrouter()

	postRouter.HandleFunc("", controller.HandleListPosts).Methods("GET")
	postRouter.HandleFunc("", controller.HandleCreatePost).Methods("POST")
	postRouter.HandleFunc("/user/{userId}", controller.HandleListUserPosts).Methods("GET")
	postRouter.HandleFunc("/{id}", controller.HandleGetPost).Methods("GET")
	postRouter.HandleFunc("/{id}/status", controller.HandleUpdateStatus).Methods("PATCH")
	postRouter.HandleFunc("/{id}", controller.HandleDeletePost).Methods("DELETE")
}
