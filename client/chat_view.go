package client

import (
	"localaid_server/models"
	"localaid_server/socket"
)

// ChatViewState tracks a chat view's connection lifecycle.
type ChatViewState int

const (
	ChatClosed ChatViewState = iota
	ChatConnecting
	ChatJoined
)

// ChatView is the reconciled transcript for one open conversation. The
// explicit state machine closes the race where a message push lands before
// the room join completes: pushes received while connecting are buffered
// and flushed on the join ack instead of dropped.
type ChatView struct {
	roomID   string
	state    ChatViewState
	messages []models.Message
	pending  []models.Message
}

// OpenChatView starts a view for the conversation between two users on a
// post. The room id is derived with the shared keying, so either participant
// opening the view lands in the same room. State starts at connecting; the
// caller emits joinRoom and feeds the ack back via JoinAck.
func OpenChatView(postID, userA, userB string) *ChatView {
	return &ChatView{
		roomID: socket.RoomID(postID, userA, userB),
		state:  ChatConnecting,
	}
}

// RoomID returns the room this view is bound to.
func (v *ChatView) RoomID() string { return v.roomID }

// State returns the current lifecycle state.
func (v *ChatView) State() ChatViewState { return v.state }

// JoinAck handles the joinedRoom ack. Acks for other rooms are ignored.
// Messages buffered while connecting are flushed into the transcript.
func (v *ChatView) JoinAck(roomID string) {
	if v.state != ChatConnecting || roomID != v.roomID {
		return
	}
	v.state = ChatJoined
	for _, m := range v.pending {
		v.appendIfAbsent(m)
	}
	v.pending = nil
}

// LoadHistory merges the REST-fetched transcript. Messages that were pushed
// before the fetch returned are kept; history and pushes overlap, so the
// merge dedupes by message id.
func (v *ChatView) LoadHistory(history []models.Message) {
	pushed := v.messages
	v.messages = append([]models.Message(nil), history...)
	for _, m := range pushed {
		v.appendIfAbsent(m)
	}
}

// ApplyPush reconciles a receiveMessage push. Messages for other rooms are
// dropped from this view — they remain durable and surface as a
// notification instead. Returns true when the view accepted the message.
func (v *ChatView) ApplyPush(m models.Message) bool {
	if m.RoomID != v.roomID {
		return false
	}
	switch v.state {
	case ChatJoined:
		return v.appendIfAbsent(m)
	case ChatConnecting:
		v.pending = append(v.pending, m)
		return true
	default:
		return false
	}
}

// Close tears the view down; further pushes are dropped.
func (v *ChatView) Close() {
	v.state = ChatClosed
	v.pending = nil
}

// Messages returns the transcript, oldest first.
func (v *ChatView) Messages() []models.Message {
	return v.messages
}

func (v *ChatView) appendIfAbsent(m models.Message) bool {
	for _, existing := range v.messages {
		if existing.MessageID == m.MessageID {
			return false
		}
	}
	v.messages = append(v.messages, m)
	return true
}
