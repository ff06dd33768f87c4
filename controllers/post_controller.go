package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"localaid_server/models"
	"localaid_server/services"
	"localaid_server/socket"

	"github.com/gorilla/mux"
)

// PostController handles the posts REST surface and the feed broadcasts it
// triggers.
type PostController struct {
	PostService         *services.PostService
	NotificationService *services.NotificationService
	S3Service           *services.S3Service
	Router              *socket.EventRouter
}

// NewPostController initializes the post controller
func NewPostController(posts *services.PostService, notifications *services.NotificationService, s3 *services.S3Service, router *socket.EventRouter) *PostController {
	return &PostController{PostService: posts, NotificationService: notifications, S3Service: s3, Router: router}
}

// HandleListPosts - GET /api/posts?longitude&latitude
func (c *PostController) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	var longitude, latitude *float64
	if lonStr, latStr := r.URL.Query().Get("longitude"), r.URL.Query().Get("latitude"); lonStr != "" && latStr != "" {
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		lat, latErr := strconv.ParseFloat(latStr, 64)
		if lonErr != nil || latErr != nil {
			http.Error(w, `{"error": "Invalid coordinates"}`, http.StatusBadRequest)
			return
		}
		longitude, latitude = &lon, &lat
	}

	posts, err := c.PostService.ListPosts(context.TODO(), longitude, latitude)
	if err != nil {
		log.Printf("❌ Error fetching posts: %v", err)
		http.Error(w, `{"error": "Failed to fetch posts"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

// HandleCreatePost - POST /api/posts (multipart). Persists the post, fans
// out NEW_POST notifications to every other user and broadcasts postCreated.
func (c *PostController) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, `{"error": "Invalid multipart form"}`, http.StatusBadRequest)
		return
	}

	post := models.Post{
		Type:        r.FormValue("type"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		User:        r.FormValue("user"),
		UserID:      r.FormValue("userId"),
	}
	// A malformed coordinate must not silently store the post at (0, 0),
	// where geo-filtered feeds near the origin would surface it.
	if lonStr := r.FormValue("longitude"); lonStr != "" {
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			http.Error(w, `{"error": "Invalid coordinates"}`, http.StatusBadRequest)
			return
		}
		post.Longitude = lon
	}
	if latStr := r.FormValue("latitude"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			http.Error(w, `{"error": "Invalid coordinates"}`, http.StatusBadRequest)
			return
		}
		post.Latitude = lat
	}

	// Optional media part; kind decided by content type, as with the
	// original uploads.
	if file, header, err := r.FormFile("media"); err == nil {
		defer file.Close()
		contentType := header.Header.Get("Content-Type")
		key, err := c.S3Service.UploadMedia(r.Context(), header.Filename, contentType, file)
		if err != nil {
			log.Printf("❌ Media upload failed: %v", err)
			http.Error(w, `{"error": "Failed to upload media"}`, http.StatusInternalServerError)
			return
		}
		if strings.HasPrefix(contentType, "video/") {
			post.Video = key
		} else {
			post.Image = key
		}
	}

	created, err := c.PostService.CreatePost(context.TODO(), post)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("❌ Error creating post: %v", err)
		http.Error(w, `{"error": "Failed to create post"}`, http.StatusInternalServerError)
		return
	}

	// Durable fan-out first, then best-effort pushes to whoever is online.
	notifications, err := c.NotificationService.FanOutNewPost(context.TODO(), *created)
	if err != nil {
		log.Printf("⚠️ NEW_POST fan-out failed for %s: %v", created.ID, err)
	}
	for _, n := range notifications {
		c.Router.PushToUser(n.Recipient, socket.EventNotification, n)
	}
	c.Router.BroadcastAll(socket.EventPostCreated, created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// HandleGetPost - GET /api/posts/{id}
func (c *PostController) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := c.PostService.GetPost(context.TODO(), postID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, `{"error": "Post not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "Failed to fetch post"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(post)
}

// HandleListUserPosts - GET /api/posts/user/{userId}
func (c *PostController) HandleListUserPosts(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	posts, err := c.PostService.ListPostsByUser(context.TODO(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch user posts"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

// HandleUpdateStatus - PATCH /api/posts/{id}/status. Open and closed swap
// freely; closed is not terminal.
func (c *PostController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var request struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	post, err := c.PostService.UpdateStatus(context.TODO(), postID, request.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			http.Error(w, `{"error": "Invalid status"}`, http.StatusBadRequest)
		case errors.Is(err, services.ErrNotFound):
			http.Error(w, `{"error": "Post not found"}`, http.StatusNotFound)
		default:
			http.Error(w, `{"error": "Failed to update post"}`, http.StatusInternalServerError)
		}
		return
	}

	c.Router.BroadcastAll(socket.EventPostUpdated, post)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(post)
}

// HandleDeletePost - DELETE /api/posts/{id}
func (c *PostController) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := c.PostService.DeletePost(context.TODO(), postID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, `{"error": "Post not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "Failed to delete post"}`, http.StatusInternalServerError)
		return
	}

	c.Router.BroadcastAll(socket.EventPostDeleted, postID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Post deleted"})
}
