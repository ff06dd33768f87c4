package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"localaid_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChatService struct
type ChatService struct {
	Dynamo DynamoAPI
}

// SaveMessage validates and stores a chat message. The durable write must
// succeed before any broadcast happens; callers treat an error as a signal
// to emit nothing.
func (s *ChatService) SaveMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	if message.RoomID == "" || message.PostID == "" || message.Sender == "" || message.Receiver == "" || message.Text == "" {
		return nil, fmt.Errorf("%w: postId, sender, receiver, text and roomId are required", ErrInvalidInput)
	}

	if message.MessageID == "" {
		message.MessageID = uuid.New().String()
	}
	message.CreatedAt = time.Now().UTC().Format(sortKeyTimeFormat)

	log.Printf("📩 Storing message %s in room %s", message.MessageID, message.RoomID)
	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return &message, nil
}

// GetRoomMessages fetches the latest messages for a room, returned oldest
// first so the newest message lands at the bottom of the transcript.
func (s *ChatService) GetRoomMessages(ctx context.Context, roomID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 100
	}
	log.Printf("🔍 Fetching latest %d messages for room %s", limit, roomID)

	keyCondition := "#roomId = :roomId"
	expressionValues := map[string]types.AttributeValue{
		":roomId": &types.AttributeValueMemberS{Value: roomID},
	}
	expressionNames := map[string]string{
		"#roomId": "roomId",
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, int32(limit), true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	// Query returned newest first; reverse into ascending timestamp order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
