package routes

import (
	"localaid_server/controllers"
	"localaid_server/services"
	"localaid_server/socket"

	"github.com/gorilla/mux"
)

// RegisterHelperRoutes sets up routes for helper offers under /api/helpers
func RegisterHelperRoutes(r *mux.Router, helpers *services.HelperService, posts *services.PostService, router *socket.EventRouter) {
	controller := controllers.NewHelperController(helpers, posts, router)

	helperRouter := r.PathPrefix("/api/helpers").Subrouter()

	helperRouter.HandleFunc("", controller.HandleOffer).Methods("POST")
	helperRouter.HandleFunc("/post/{postId}", controller.HandleListForPost).Methods("GET")
	helperRouter.HandleFunc("/{id}", controller.HandleUpdateStatus).Methods("PATCH")
	helperRouter.HandleFunc("/{id}", controller.HandleWithdraw).Methods("DELETE")
}
