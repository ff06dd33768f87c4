package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"localaid_server/services"
	"localaid_server/socket"

	"github.com/gorilla/mux"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{ChatService: service}
}

// HandleGetMessages - GET /api/messages/{postId}?userA&userB. History for
// the pair's room, oldest first. The room id is derived here with the same
// keying the socket side uses, so both ends always read the same room.
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]
	userA := r.URL.Query().Get("userA")
	userB := r.URL.Query().Get("userB")

	if userA == "" || userB == "" {
		http.Error(w, `{"error": "Both users must be specified"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	roomID := socket.RoomID(postID, userA, userB)
	messages, err := c.ChatService.GetRoomMessages(context.TODO(), roomID, limit)
	if err != nil {
		log.Printf("❌ Error fetching messages: %v", err)
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}
