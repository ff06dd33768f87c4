package routes

import (
	"localaid_server/controllers"
	"localaid_server/services"
	"localaid_server/socket"

	"github.com/gorilla/mux"
)

// RegisterNotificationRoutes sets up routes under /api/notifications
func RegisterNotificationRoutes(r *mux.Router, notifications *services.NotificationService, router *socket.EventRouter) {
	controller := controllers.NewNotificationController(notifications, router)

	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()

	// /read must be registered before the {username} wildcard
	notificationRouter.HandleFunc("/read", controller.HandleMarkRead).Methods("PUT")
	notificationRouter.HandleFunc("/{username}", controller.HandleListNotifications).Methods("GET")
	notificationRouter.HandleFunc("", controller.HandleCreateNotification).Methods("POST")
}
