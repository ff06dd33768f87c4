package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"localaid_server/models"
	"localaid_server/services"
	"localaid_server/socket"

	"github.com/gorilla/mux"
)

// HelperController handles the helper-offer lifecycle
type HelperController struct {
	HelperService *services.HelperService
	PostService   *services.PostService
	Router        *socket.EventRouter
}

// NewHelperController initializes the helper controller
func NewHelperController(helpers *services.HelperService, posts *services.PostService, router *socket.EventRouter) *HelperController {
	return &HelperController{HelperService: helpers, PostService: posts, Router: router}
}

// HandleOffer - POST /api/helpers. A duplicate (postId, helperId) pair is
// rejected with the existing record untouched. The post creator gets a
// HELP_OFFER notification.
func (c *HelperController) HandleOffer(w http.ResponseWriter, r *http.Request) {
	var request struct {
		PostID     string `json:"postId"`
		HelperID   string `json:"helperId"`
		HelperName string `json:"helperName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	offer, err := c.HelperService.Offer(context.TODO(), request.PostID, request.HelperID, request.HelperName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateHelper):
			http.Error(w, `{"error": "You are already a helper for this post"}`, http.StatusBadRequest)
		case errors.Is(err, services.ErrNotFound):
			http.Error(w, `{"error": "Post not found"}`, http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("❌ Error adding helper: %v", err)
			http.Error(w, `{"error": "Failed to add helper"}`, http.StatusInternalServerError)
		}
		return
	}

	if post, err := c.PostService.GetPost(context.TODO(), offer.PostID); err == nil {
		_, err := c.Router.NotifyUser(context.TODO(), models.Notification{
			Recipient: post.User,
			Sender:    offer.HelperName,
			Type:      models.NotificationTypeHelpOffer,
			PostID:    post.ID,
			Message:   fmt.Sprintf("%s offered to help on %q", offer.HelperName, post.Title),
		})
		if err != nil {
			log.Printf("⚠️ HELP_OFFER notification failed: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(offer)
}

// HandleListForPost - GET /api/helpers/post/{postId}
func (c *HelperController) HandleListForPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	offers, err := c.HelperService.ListForPost(context.TODO(), postID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch helpers"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offers)
}

// HandleUpdateStatus - PATCH /api/helpers/{id} {status}. Acceptance and
// rejection notify the helper over the ledger-plus-push path.
func (c *HelperController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	helperOfferID := mux.Vars(r)["id"]

	var request struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	offer, err := c.HelperService.UpdateStatus(context.TODO(), helperOfferID, request.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			http.Error(w, `{"error": "Invalid status"}`, http.StatusBadRequest)
		case errors.Is(err, services.ErrNotFound):
			http.Error(w, `{"error": "Helper not found"}`, http.StatusNotFound)
		default:
			http.Error(w, `{"error": "Failed to update helper status"}`, http.StatusInternalServerError)
		}
		return
	}

	if notificationType := statusNotificationType(offer.Status); notificationType != "" {
		if post, err := c.PostService.GetPost(context.TODO(), offer.PostID); err == nil {
			_, err := c.Router.NotifyUser(context.TODO(), models.Notification{
				Recipient: offer.HelperName,
				Sender:    post.User,
				Type:      notificationType,
				PostID:    post.ID,
				Message:   fmt.Sprintf("Your offer to help on %q was %s", post.Title, offer.Status),
			})
			if err != nil {
				log.Printf("⚠️ %s notification failed: %v", notificationType, err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offer)
}

// HandleWithdraw - DELETE /api/helpers/{id}
func (c *HelperController) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	helperOfferID := mux.Vars(r)["id"]

	if err := c.HelperService.Withdraw(context.TODO(), helperOfferID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, `{"error": "Helper not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "Failed to remove helper"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Helper removed successfully"})
}

func statusNotificationType(status string) string {
	switch status {
	case models.HelperStatusAccepted:
		return models.NotificationTypeHelperAccepted
	case models.HelperStatusRejected:
		return models.NotificationTypeHelperRejected
	default:
		return ""
	}
}
