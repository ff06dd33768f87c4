package models

// Notification is one entry in the per-user notification ledger. Created by
// server-side event producers; only the read flag is ever mutated.
type Notification struct {
	Recipient      string `dynamodbav:"recipient" json:"recipient"` // ✅ Partition Key
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"` // ✅ Sort Key, RFC3339
	NotificationID string `dynamodbav:"notificationId" json:"_id"`
	Sender         string `dynamodbav:"sender" json:"sender"`
	Type           string `dynamodbav:"type" json:"type"`
	PostID         string `dynamodbav:"postId" json:"postId"`
	Message        string `dynamodbav:"message" json:"message"`
	Read           bool   `dynamodbav:"read" json:"read"`
}

// NotificationsTable is the DynamoDB table name for notifications
const NotificationsTable = "Notifications"

// NotificationIDIndex is the GSI resolving a notificationId back to its
// (recipient, createdAt) key for the bulk mark-read path.
const NotificationIDIndex = "notificationId-index"
