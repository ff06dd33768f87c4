package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"localaid_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// HelperService struct
type HelperService struct {
	Dynamo DynamoAPI
}

// Offer records a pending helper offer for a post. The (postId, helperId)
// pair is the table key, so a second offer by the same user is rejected and
// the existing record is left untouched.
func (hs *HelperService) Offer(ctx context.Context, postID, helperID, helperName string) (*models.HelperOffer, error) {
	if postID == "" || helperID == "" || helperName == "" {
		return nil, fmt.Errorf("%w: postId, helperId and helperName are required", ErrInvalidInput)
	}

	// The post must exist before anyone can offer on it.
	postKey := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: postID},
	}
	if _, err := hs.Dynamo.GetItem(ctx, models.PostsTable, postKey); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	offerKey := map[string]types.AttributeValue{
		"postId":   &types.AttributeValueMemberS{Value: postID},
		"helperId": &types.AttributeValueMemberS{Value: helperID},
	}
	if _, err := hs.Dynamo.GetItem(ctx, models.HelpersTable, offerKey); err == nil {
		return nil, ErrDuplicateHelper
	} else if !errors.Is(err, ErrItemNotFound) {
		return nil, err
	}

	offer := models.HelperOffer{
		PostID:        postID,
		HelperID:      helperID,
		HelperOfferID: uuid.New().String(),
		HelperName:    helperName,
		Status:        models.HelperStatusPending,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := hs.Dynamo.PutItem(ctx, models.HelpersTable, offer); err != nil {
		return nil, fmt.Errorf("failed to store helper offer: %w", err)
	}
	log.Printf("🤝 %s offered to help on post %s", helperName, postID)
	return &offer, nil
}

// ListForPost returns all helper offers for a post, newest first
func (hs *HelperService) ListForPost(ctx context.Context, postID string) ([]models.HelperOffer, error) {
	keyCondition := "postId = :postId"
	expressionValues := map[string]types.AttributeValue{
		":postId": &types.AttributeValueMemberS{Value: postID},
	}

	items, err := hs.Dynamo.QueryItems(ctx, models.HelpersTable, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch helpers: %w", err)
	}

	var offers []models.HelperOffer
	if err := attributevalue.UnmarshalListOfMaps(items, &offers); err != nil {
		return nil, fmt.Errorf("failed to parse helpers: %w", err)
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Timestamp > offers[j].Timestamp
	})
	return offers, nil
}

// UpdateStatus moves an offer to accepted or rejected
func (hs *HelperService) UpdateStatus(ctx context.Context, helperOfferID, status string) (*models.HelperOffer, error) {
	if status != models.HelperStatusAccepted && status != models.HelperStatusRejected && status != models.HelperStatusPending {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	offer, err := hs.getByOfferID(ctx, helperOfferID)
	if err != nil {
		return nil, err
	}

	key := map[string]types.AttributeValue{
		"postId":   &types.AttributeValueMemberS{Value: offer.PostID},
		"helperId": &types.AttributeValueMemberS{Value: offer.HelperID},
	}
	updateExpression := "SET #status = :status"
	expressionValues := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: status},
	}
	expressionNames := map[string]string{
		"#status": "status",
	}

	attrs, err := hs.Dynamo.UpdateItem(ctx, models.HelpersTable, updateExpression, key, expressionValues, expressionNames)
	if err != nil {
		return nil, fmt.Errorf("failed to update helper status: %w", err)
	}

	var updated models.HelperOffer
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated helper: %w", err)
	}
	log.Printf("✅ Helper offer %s set to %s", helperOfferID, status)
	return &updated, nil
}

// Withdraw removes a helper offer by its route id
func (hs *HelperService) Withdraw(ctx context.Context, helperOfferID string) error {
	offer, err := hs.getByOfferID(ctx, helperOfferID)
	if err != nil {
		return err
	}

	key := map[string]types.AttributeValue{
		"postId":   &types.AttributeValueMemberS{Value: offer.PostID},
		"helperId": &types.AttributeValueMemberS{Value: offer.HelperID},
	}
	if err := hs.Dynamo.DeleteItem(ctx, models.HelpersTable, key); err != nil {
		return fmt.Errorf("failed to delete helper offer: %w", err)
	}
	log.Printf("🗑️ Helper offer %s withdrawn", helperOfferID)
	return nil
}

func (hs *HelperService) getByOfferID(ctx context.Context, helperOfferID string) (*models.HelperOffer, error) {
	keyCondition := "helperOfferId = :id"
	expressionValues := map[string]types.AttributeValue{
		":id": &types.AttributeValueMemberS{Value: helperOfferID},
	}

	items, err := hs.Dynamo.QueryItemsWithIndex(ctx, models.HelpersTable, models.HelperOfferIDIndex, keyCondition, expressionValues, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve helper offer %s: %w", helperOfferID, err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}

	var offer models.HelperOffer
	if err := attributevalue.UnmarshalMap(items[0], &offer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal helper offer: %w", err)
	}
	return &offer, nil
}
