package models

// Message is one chat message in a room. Append-only: messages are never
// edited or deleted once stored.
type Message struct {
	RoomID    string `dynamodbav:"roomId" json:"roomId"`       // ✅ Partition Key
	CreatedAt string `dynamodbav:"createdAt" json:"timestamp"` // ✅ Sort Key, RFC3339
	MessageID string `dynamodbav:"messageId" json:"_id"`
	PostID    string `dynamodbav:"postId" json:"postId"`
	Sender    string `dynamodbav:"sender" json:"sender"`
	Receiver  string `dynamodbav:"receiver" json:"receiver"`
	Text      string `dynamodbav:"text" json:"text"`
}

// SendMessageInput is the wire payload of the "sendMessage" socket event.
type SendMessageInput struct {
	PostID   string `json:"postId"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Text     string `json:"text"`
	RoomID   string `json:"roomId"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
