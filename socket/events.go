package socket

import (
	"context"
	"fmt"
	"log"

	"localaid_server/models"
	"localaid_server/services"
)

// Server -> client event names. These are the wire contract with deployed
// clients; renaming one breaks them.
const (
	EventReceiveMessage     = "receiveMessage"
	EventNotification       = "notification"
	EventPostsUpdated       = "postsUpdated"
	EventPostCreated        = "postCreated"
	EventPostUpdated        = "postUpdated"
	EventPostDeleted        = "postDeleted"
	EventUserProfileUpdated = "userProfileUpdated"
	EventJoinedRoom         = "joinedRoom"
)

const defaultNamespace = "/"

// Broadcaster is the slice of *socketio.Server the router uses.
type Broadcaster interface {
	BroadcastToRoom(namespace string, room string, event string, args ...interface{}) bool
	BroadcastToNamespace(namespace string, event string, args ...interface{}) bool
}

// EventRouter delivers domain events to live connections: room broadcasts
// for chat, targeted pushes through the registry, and global broadcasts for
// feed-affecting changes. Targeted pushes are always paired with a durable
// notification write, and no broadcast happens unless the write succeeded.
type EventRouter struct {
	Registry      *Registry
	Sockets       Broadcaster
	Chat          *services.ChatService
	Posts         *services.PostService
	Notifications *services.NotificationService
}

// BroadcastRoom delivers an event to every connection joined to a room.
func (er *EventRouter) BroadcastRoom(roomID, event string, payload interface{}) {
	er.Sockets.BroadcastToRoom(defaultNamespace, roomID, event, payload)
}

// BroadcastAll delivers an event to every connected client. Used when the
// interested set is unknowable server-side (any client may be viewing the
// feed).
func (er *EventRouter) BroadcastAll(event string, payload ...interface{}) {
	er.Sockets.BroadcastToNamespace(defaultNamespace, event, payload...)
}

// PushToUser delivers an event to one user's current connection. Returns
// false when the user is offline, which is not an error: the durable record
// written alongside the push covers recovery.
func (er *EventRouter) PushToUser(username, event string, payload interface{}) bool {
	conn, ok := er.Registry.Resolve(username)
	if !ok {
		log.Printf("📭 %s offline, %s push dropped", username, event)
		return false
	}
	conn.Emit(event, payload)
	return true
}

// DispatchMessage runs the message-send pipeline: persist the message, then
// broadcast it to the room, then persist a notification for the receiver and
// attempt a targeted push. The message write completes before the broadcast,
// so a client that re-fetches history on receipt always sees the pushed
// message. A failed write aborts the whole pipeline.
func (er *EventRouter) DispatchMessage(ctx context.Context, in models.SendMessageInput) (*models.Message, error) {
	message, err := er.Chat.SaveMessage(ctx, models.Message{
		RoomID:   in.RoomID,
		PostID:   in.PostID,
		Sender:   in.Sender,
		Receiver: in.Receiver,
		Text:     in.Text,
	})
	if err != nil {
		return nil, err
	}

	er.BroadcastRoom(in.RoomID, EventReceiveMessage, message)

	post, err := er.Posts.GetPost(ctx, in.PostID)
	if err != nil {
		// The message is durable and delivered; only the courtesy
		// notification is lost.
		log.Printf("⚠️ Post %s lookup failed after message %s: %v", in.PostID, message.MessageID, err)
		return message, nil
	}

	notification, err := er.Notifications.Append(ctx, models.Notification{
		Recipient: in.Receiver,
		Sender:    in.Sender,
		Type:      models.NotificationTypeMessage,
		PostID:    in.PostID,
		Message:   fmt.Sprintf("New message on %q from %s", post.Title, in.Sender),
	})
	if err != nil {
		log.Printf("⚠️ Failed to store message notification: %v", err)
		return message, nil
	}

	er.PushToUser(in.Receiver, EventNotification, notification)
	return message, nil
}

// NotifyUser persists a notification and attempts a targeted push. The write
// happens first; an offline recipient just means the push half is skipped.
func (er *EventRouter) NotifyUser(ctx context.Context, n models.Notification) (*models.Notification, error) {
	stored, err := er.Notifications.Append(ctx, n)
	if err != nil {
		return nil, err
	}
	er.PushToUser(stored.Recipient, EventNotification, stored)
	return stored, nil
}
