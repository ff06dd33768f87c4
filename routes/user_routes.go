package routes

import (
	"localaid_server/controllers"
	"localaid_server/services"
	"localaid_server/socket"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for user profiles under /api/users
func RegisterUserRoutes(r *mux.Router, users *services.UserService, s3 *services.S3Service, router *socket.EventRouter) {
	controller := controllers.NewUserController(users, s3, router)

	userRouter := r.PathPrefix("/api/users").Subrouter()

	userRouter.HandleFunc("/{id}", controller.HandleGetUser).Methods("GET")
	userRouter.HandleFunc("/{id}", controller.HandleUpdateProfile).Methods("PATCH")
	userRouter.HandleFunc("/{id}/avatar", controller.HandleUploadAvatar).Methods("POST")
}

// RegisterAuthRoutes sets up routes for registration and login under /api/auth
func RegisterAuthRoutes(r *mux.Router, users *services.UserService) {
	controller := controllers.NewAuthController(users)

	authRouter := r.PathPrefix("/api/auth").Subrouter()

	authRouter.HandleFunc("/register", controller.HandleRegister).Methods("POST")
	authRouter.HandleFunc("/login", controller.HandleLogin).Methods("POST")
}
