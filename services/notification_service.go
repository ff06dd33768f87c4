package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"localaid_server/models"
	"localaid_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DefaultNotificationLimit bounds the initial bell/menu fetch.
const DefaultNotificationLimit = 50

// NotificationService owns the durable notification ledger. Every targeted
// push is paired with one of these records, so offline recipients recover
// the event on their next fetch.
type NotificationService struct {
	Dynamo DynamoAPI
}

// Append creates an unread notification
func (ns *NotificationService) Append(ctx context.Context, n models.Notification) (*models.Notification, error) {
	if n.Recipient == "" || n.Sender == "" || n.Type == "" || n.PostID == "" || n.Message == "" {
		return nil, fmt.Errorf("%w: recipient, sender, type, postId and message are required", ErrInvalidInput)
	}

	n.NotificationID = uuid.New().String()
	n.CreatedAt = time.Now().UTC().Format(sortKeyTimeFormat)
	n.Read = false

	if err := ns.Dynamo.PutItem(ctx, models.NotificationsTable, n); err != nil {
		return nil, fmt.Errorf("failed to store notification: %w", err)
	}
	log.Printf("🔔 Notification %s (%s) stored for %s", n.NotificationID, n.Type, n.Recipient)
	return &n, nil
}

// ListFor returns the most recent notifications for a recipient, newest
// first. This is the reconciliation path for pushes missed while offline.
func (ns *NotificationService) ListFor(ctx context.Context, recipient string, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}

	keyCondition := "recipient = :recipient"
	expressionValues := map[string]types.AttributeValue{
		":recipient": &types.AttributeValueMemberS{Value: recipient},
	}

	items, err := ns.Dynamo.QueryItemsWithOptions(ctx, models.NotificationsTable, keyCondition, expressionValues, nil, int32(limit), true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	var notifications []models.Notification
	if err := attributevalue.UnmarshalListOfMaps(items, &notifications); err != nil {
		return nil, fmt.Errorf("failed to parse notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips the read flag for each given notification id. Idempotent:
// re-marking a read notification rewrites the same value, and unknown ids
// are skipped.
func (ns *NotificationService) MarkRead(ctx context.Context, notificationIDs []string) error {
	for _, id := range notificationIDs {
		keyCondition := "notificationId = :id"
		expressionValues := map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		}

		items, err := ns.Dynamo.QueryItemsWithIndex(ctx, models.NotificationsTable, models.NotificationIDIndex, keyCondition, expressionValues, nil, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve notification %s: %w", id, err)
		}
		if len(items) == 0 {
			log.Printf("⚠️ Notification %s not found, skipping", id)
			continue
		}

		key := map[string]types.AttributeValue{
			"recipient": &types.AttributeValueMemberS{Value: utils.ExtractString(items[0], "recipient")},
			"createdAt": &types.AttributeValueMemberS{Value: utils.ExtractString(items[0], "createdAt")},
		}
		updateExpression := "SET #read = :true"
		updateValues := map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		}
		updateNames := map[string]string{
			"#read": "read", // read is a DynamoDB reserved word
		}

		if _, err := ns.Dynamo.UpdateItem(ctx, models.NotificationsTable, updateExpression, key, updateValues, updateNames); err != nil {
			return fmt.Errorf("failed to mark notification %s read: %w", id, err)
		}
	}
	return nil
}

// FanOutNewPost stores one NEW_POST notification per user other than the
// creator and returns them so the caller can attempt targeted pushes.
// The creator never receives one.
func (ns *NotificationService) FanOutNewPost(ctx context.Context, post models.Post) ([]models.Notification, error) {
	var users []models.User
	err := ns.Dynamo.ScanWithFilter(ctx, models.UsersTable, nil, map[string]string{"name": post.User}, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to list users for fan-out: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}

	createdAt := time.Now().UTC().Format(sortKeyTimeFormat)
	notifications := make([]models.Notification, 0, len(users))
	writeRequests := make([]types.WriteRequest, 0, len(users))
	for _, user := range users {
		n := models.Notification{
			Recipient:      user.Name,
			CreatedAt:      createdAt,
			NotificationID: uuid.New().String(),
			Sender:         post.User,
			Type:           models.NotificationTypeNewPost,
			PostID:         post.ID,
			Message:        fmt.Sprintf("New post: %q by %s", post.Title, post.User),
		}

		item, err := attributevalue.MarshalMap(n)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification: %w", err)
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
		notifications = append(notifications, n)
	}

	if err := ns.Dynamo.BatchWriteItems(ctx, models.NotificationsTable, writeRequests); err != nil {
		return nil, fmt.Errorf("failed to write notifications: %w", err)
	}
	log.Printf("🔔 NEW_POST fan-out for %s reached %d users", post.ID, len(notifications))
	return notifications, nil
}
