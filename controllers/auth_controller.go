package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"localaid_server/services"
)

// AuthController handles registration and login
type AuthController struct {
	UserService *services.UserService
}

// NewAuthController initializes the auth controller
func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{UserService: users}
}

// HandleRegister - POST /api/auth/register
func (c *AuthController) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	_, err := c.UserService.Register(context.TODO(), request.Name, request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			http.Error(w, `{"error": "All fields required"}`, http.StatusBadRequest)
		case errors.Is(err, services.ErrEmailTaken):
			http.Error(w, `{"error": "Email already registered"}`, http.StatusBadRequest)
		default:
			log.Printf("❌ Registration failed: %v", err)
			http.Error(w, `{"error": "Registration failed"}`, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "User registered"})
}

// HandleLogin - POST /api/auth/login
func (c *AuthController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	token, user, err := c.UserService.Login(context.TODO(), request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			http.Error(w, `{"error": "All fields required"}`, http.StatusBadRequest)
		case errors.Is(err, services.ErrInvalidCredentials):
			http.Error(w, `{"error": "Invalid credentials"}`, http.StatusBadRequest)
		default:
			log.Printf("❌ Login failed: %v", err)
			http.Error(w, `{"error": "Login failed"}`, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}
