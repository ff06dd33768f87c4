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

// UserController handles profile reads and updates. Profile mutations
// broadcast userProfileUpdated so every client can refresh cached views of
// the user.
type UserController struct {
	UserService *services.UserService
	S3Service   *services.S3Service
	Router      *socket.EventRouter
}

// NewUserController creates a new instance of UserController
func NewUserController(users *services.UserService, s3 *services.S3Service, router *socket.EventRouter) *UserController {
	return &UserController{UserService: users, S3Service: s3, Router: router}
}

// HandleGetUser - GET /api/users/{id}
func (c *UserController) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := c.UserService.GetUser(context.TODO(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, `{"error": "User not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "Failed to fetch user"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// HandleUpdateProfile - PATCH /api/users/{id} (name, locationName, avatar)
func (c *UserController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	var request struct {
		Name         string `json:"name"`
		LocationName string `json:"locationName"`
		Avatar       string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	user, err := c.UserService.UpdateProfile(context.TODO(), userID, map[string]string{
		"name":         request.Name,
		"locationName": request.LocationName,
		"avatar":       request.Avatar,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			http.Error(w, `{"error": "User not found"}`, http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			http.Error(w, `{"error": "Failed to update profile"}`, http.StatusInternalServerError)
		}
		return
	}

	c.Router.BroadcastAll(socket.EventUserProfileUpdated, models.ProfileUpdate{UserID: user.ID, User: *user})
	log.Printf("📣 Profile update broadcast for %s", user.Name)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// HandleUploadAvatar - POST /api/users/{id}/avatar (multipart). Stores the
// file in S3 and records its key as the user's avatar reference.
func (c *UserController) HandleUploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(16 << 20); err != nil {
		http.Error(w, `{"error": "Invalid multipart form"}`, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, `{"error": "No file uploaded"}`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	key, err := c.S3Service.UploadMedia(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		log.Printf("❌ Avatar upload failed: %v", err)
		http.Error(w, `{"error": "Failed to upload avatar"}`, http.StatusInternalServerError)
		return
	}

	user, err := c.UserService.UpdateProfile(context.TODO(), userID, map[string]string{"avatar": key})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, `{"error": "User not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "Failed to update avatar"}`, http.StatusInternalServerError)
		return
	}

	c.Router.BroadcastAll(socket.EventUserProfileUpdated, models.ProfileUpdate{UserID: user.ID, User: *user})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
