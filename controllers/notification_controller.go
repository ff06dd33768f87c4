package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"localaid_server/models"
	"localaid_server/services"
	"localaid_server/socket"

	"github.com/gorilla/mux"
)

// NotificationController handles the notification ledger REST surface
type NotificationController struct {
	NotificationService *services.NotificationService
	Router              *socket.EventRouter
}

// NewNotificationController initializes the notification controller
func NewNotificationController(service *services.NotificationService, router *socket.EventRouter) *NotificationController {
	return &NotificationController{NotificationService: service, Router: router}
}

// HandleListNotifications - GET /api/notifications/{username}. Most recent
// 50; this is how clients catch up on pushes they missed while offline.
func (c *NotificationController) HandleListNotifications(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	notifications, err := c.NotificationService.ListFor(context.TODO(), username, services.DefaultNotificationLimit)
	if err != nil {
		log.Printf("❌ Error fetching notifications: %v", err)
		http.Error(w, `{"error": "Failed to fetch notifications"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notifications)
}

// HandleMarkRead - PUT /api/notifications/read {notificationIds}. Idempotent
// bulk flip.
func (c *NotificationController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		NotificationIDs []string `json:"notificationIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.NotificationService.MarkRead(context.TODO(), request.NotificationIDs); err != nil {
		log.Printf("❌ Error marking notifications as read: %v", err)
		http.Error(w, `{"error": "Failed to mark notifications as read"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Notifications marked as read"})
}

// HandleCreateNotification - POST /api/notifications. Direct producer
// endpoint: persists and attempts a targeted push in one step.
func (c *NotificationController) HandleCreateNotification(w http.ResponseWriter, r *http.Request) {
	var notification models.Notification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	stored, err := c.Router.NotifyUser(context.TODO(), notification)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		http.Error(w, `{"error": "Failed to create notification"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(stored)
}
