package services

import (
	"context"
	"testing"

	"localaid_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func postItem(t *testing.T) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(models.Post{ID: "p1", Title: "Need groceries", User: "alice", UserID: "u1"})
	require.NoError(t, err)
	return item
}

func TestOfferStoresPendingOffer(t *testing.T) {
	store := new(mockDynamo)
	store.On("GetItem", mock.Anything, models.PostsTable, mock.Anything).Return(postItem(t), nil)
	store.On("GetItem", mock.Anything, models.HelpersTable, mock.Anything).Return(nil, ErrItemNotFound)

	var stored models.HelperOffer
	store.On("PutItem", mock.Anything, models.HelpersTable, mock.AnythingOfType("models.HelperOffer")).
		Run(func(args mock.Arguments) {
			stored = args.Get(2).(models.HelperOffer)
		}).Return(nil)

	hs := &HelperService{Dynamo: store}
	offer, err := hs.Offer(context.Background(), "p1", "u3", "carol")

	require.NoError(t, err)
	assert.Equal(t, models.HelperStatusPending, offer.Status)
	assert.NotEmpty(t, offer.HelperOfferID)
	assert.Equal(t, "carol", stored.HelperName)
}

func TestOfferDuplicateRejected(t *testing.T) {
	store := new(mockDynamo)
	existing, err := attributevalue.MarshalMap(models.HelperOffer{PostID: "p1", HelperID: "u3", Status: models.HelperStatusPending})
	require.NoError(t, err)

	store.On("GetItem", mock.Anything, models.PostsTable, mock.Anything).Return(postItem(t), nil)
	store.On("GetItem", mock.Anything, models.HelpersTable, mock.Anything).Return(existing, nil)

	hs := &HelperService{Dynamo: store}
	_, err = hs.Offer(context.Background(), "p1", "u3", "carol")

	assert.ErrorIs(t, err, ErrDuplicateHelper)
	// The existing record is untouched.
	store.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestOfferUnknownPost(t *testing.T) {
	store := new(mockDynamo)
	store.On("GetItem", mock.Anything, models.PostsTable, mock.Anything).Return(nil, ErrItemNotFound)

	hs := &HelperService{Dynamo: store}
	_, err := hs.Offer(context.Background(), "missing", "u3", "carol")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	store := new(mockDynamo)
	hs := &HelperService{Dynamo: store}

	_, err := hs.UpdateStatus(context.Background(), "offer-1", "maybe")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWithdrawUnknownOffer(t *testing.T) {
	store := new(mockDynamo)
	store.On("QueryItemsWithIndex", mock.Anything, models.HelpersTable, models.HelperOfferIDIndex, mock.Anything, mock.Anything, mock.Anything, int32(1)).
		Return([]map[string]types.AttributeValue{}, nil)

	hs := &HelperService{Dynamo: store}
	err := hs.Withdraw(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}
