package routes

import (
	"localaid_server/controllers"
	"localaid_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat history under /api/messages
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/messages").Subrouter()

	chatRouter.HandleFunc("/{postId}", controller.HandleGetMessages).Methods("GET")
}
