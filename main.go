package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"localaid_server/routes"
	"localaid_server/services"
	"localaid_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	s3Service := &services.S3Service{Client: services.InitializeS3Client()}

	// Initialize Services
	postService := &services.PostService{Dynamo: dynamoService}
	chatService := &services.ChatService{Dynamo: dynamoService}
	notificationService := &services.NotificationService{Dynamo: dynamoService}
	helperService := &services.HelperService{Dynamo: dynamoService}
	userService := &services.UserService{Dynamo: dynamoService}

	// The connection registry lives for the process; the socket server and
	// event router are built around it.
	registry := socket.NewRegistry()
	socketServer, eventRouter := socket.NewSocketServer(registry, chatService, postService, notificationService)

	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "API is running!")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Mount the live-connection endpoint
	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterPostRoutes(r, postService, notificationService, s3Service, eventRouter)
	routes.RegisterChatRoutes(r, chatService)
	routes.RegisterNotificationRoutes(r, notificationService, eventRouter)
	routes.RegisterHelperRoutes(r, helperService, postService, eventRouter)
	routes.RegisterUserRoutes(r, userService, s3Service, eventRouter)
	routes.RegisterAuthRoutes(r, userService)
	routes.RegisterS3Routes(r, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
