package socket

import (
	"context"
	"log"

	"localaid_server/models"
	"localaid_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// UserConnectedPayload is the wire payload of the "userConnected" event.
type UserConnectedPayload struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// NewSocketServer builds the Socket.IO server, wires the client -> server
// event handlers and returns it together with the event router backing them.
func NewSocketServer(registry *Registry, chat *services.ChatService, posts *services.PostService, notifications *services.NotificationService) (*socketio.Server, *EventRouter) {
	server := socketio.NewServer(nil)

	router := &EventRouter{
		Registry:      registry,
		Sockets:       server,
		Chat:          chat,
		Posts:         posts,
		Notifications: notifications,
	}

	RegisterHandlers(server, router)
	return server, router
}

// RegisterHandlers attaches the live-connection protocol to the server.
func RegisterHandlers(server *socketio.Server, router *EventRouter) {
	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	// Both authenticate and userConnected bind the user's name to this
	// socket; deployed clients emit one or the other depending on view.
	server.OnEvent("/", "authenticate", func(c socketio.Conn, username string) {
		router.Registry.Register(username, c)
	})

	server.OnEvent("/", "userConnected", func(c socketio.Conn, data UserConnectedPayload) {
		router.Registry.Register(data.UserName, c)
	})

	server.OnEvent("/", "joinRoom", func(c socketio.Conn, roomID string) {
		if roomID == "" {
			log.Println("❌ Invalid roomId in join request")
			return
		}
		c.Join(roomID)
		// Ack so the client's chat view can leave its connecting state.
		c.Emit(EventJoinedRoom, roomID)
		log.Printf("👥 Socket %s joined room %s", c.ID(), roomID)
	})

	server.OnEvent("/", "sendMessage", func(c socketio.Conn, in models.SendMessageInput) {
		if _, err := router.DispatchMessage(context.Background(), in); err != nil {
			log.Printf("❌ sendMessage failed: %v", err)
		}
	})

	// Relay for client-produced notifications (the helper-offer flow posts
	// these): persist and push on to the recipient.
	server.OnEvent("/", "notification", func(c socketio.Conn, n models.Notification) {
		if _, err := router.NotifyUser(context.Background(), n); err != nil {
			log.Printf("❌ notification relay failed: %v", err)
		}
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Printf("⚠️ Socket error: %v", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
		router.Registry.UnregisterConn(c.ID())
	})
}
