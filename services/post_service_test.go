package services

import (
	"context"
	"testing"

	"localaid_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePostRejectsInvalidType(t *testing.T) {
	store := new(mockDynamo)
	ps := &PostService{Dynamo: store}

	_, err := ps.CreatePost(context.Background(), models.Post{
		Type:        "Party",
		Title:       "t",
		Description: "d",
		User:        "alice",
		UserID:      "u1",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	store.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePostRejectsMissingFields(t *testing.T) {
	store := new(mockDynamo)
	ps := &PostService{Dynamo: store}

	_, err := ps.CreatePost(context.Background(), models.Post{Type: models.PostTypeHelp})

	assert.ErrorIs(t, err, ErrInvalidInput)
	store.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePostAppliesDefaults(t *testing.T) {
	store := new(mockDynamo)
	var stored models.Post
	store.On("PutItem", mock.Anything, models.PostsTable, mock.AnythingOfType("models.Post")).
		Run(func(args mock.Arguments) {
			stored = args.Get(2).(models.Post)
		}).Return(nil)

	ps := &PostService{Dynamo: store}
	created, err := ps.CreatePost(context.Background(), models.Post{
		Type:        models.PostTypeHelp,
		Title:       "Need groceries",
		Description: "Can someone pick up milk?",
		User:        "alice",
		UserID:      "u1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.PostStatusOpen, created.Status)
	assert.True(t, created.IsPublic)
	assert.NotEmpty(t, created.Time)
	assert.Equal(t, created.ID, stored.ID)
}

func TestListPostsSortsByDistanceAndCutsRadius(t *testing.T) {
	store := new(mockDynamo)
	posts := []models.Post{
		// ~1.1km north of the query point
		{ID: "far-ish", Latitude: 52.52, Longitude: 13.405, IsPublic: true},
		// at the query point
		{ID: "near", Latitude: 52.51, Longitude: 13.405, IsPublic: true},
		// way outside the 2km radius
		{ID: "out", Latitude: 53.0, Longitude: 13.405, IsPublic: true},
	}
	store.On("ScanWithFilter", mock.Anything, models.PostsTable, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(4).(*[]models.Post)
			*out = posts
		}).Return(nil)

	ps := &PostService{Dynamo: store}
	lon, lat := 13.405, 52.51
	got, err := ps.ListPosts(context.Background(), &lon, &lat)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "near", got[0].ID)
	assert.Equal(t, "far-ish", got[1].ID)
	assert.LessOrEqual(t, got[1].Distance, NearbyRadiusKm)
}

func TestListPostsWithoutCoordsNewestFirst(t *testing.T) {
	store := new(mockDynamo)
	posts := []models.Post{
		{ID: "old", Time: "2026-01-01T00:00:00Z", IsPublic: true},
		{ID: "new", Time: "2026-02-01T00:00:00Z", IsPublic: true},
	}
	store.On("ScanWithFilter", mock.Anything, models.PostsTable, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(4).(*[]models.Post)
			*out = posts
		}).Return(nil)

	ps := &PostService{Dynamo: store}
	got, err := ps.ListPosts(context.Background(), nil, nil)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
}

func TestUpdateStatusRejectsInvalidValue(t *testing.T) {
	store := new(mockDynamo)
	ps := &PostService{Dynamo: store}

	// "active" is reserved; it is never accepted at this boundary.
	_, err := ps.UpdateStatus(context.Background(), "p1", models.PostStatusActive)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ps.UpdateStatus(context.Background(), "p1", "archived")
	assert.ErrorIs(t, err, ErrInvalidInput)

	store.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusUnknownPost(t *testing.T) {
	store := new(mockDynamo)
	store.On("GetItem", mock.Anything, models.PostsTable, mock.Anything).Return(nil, ErrItemNotFound)

	ps := &PostService{Dynamo: store}
	_, err := ps.UpdateStatus(context.Background(), "missing", models.PostStatusClosed)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusClosedPostCanReopen(t *testing.T) {
	store := new(mockDynamo)
	closed := models.Post{ID: "p1", Status: models.PostStatusClosed, Title: "t", User: "alice", UserID: "u1", Type: models.PostTypeHelp}
	closedItem, err := attributevalue.MarshalMap(closed)
	require.NoError(t, err)

	reopened := closed
	reopened.Status = models.PostStatusOpen
	reopenedItem, err := attributevalue.MarshalMap(reopened)
	require.NoError(t, err)

	store.On("GetItem", mock.Anything, models.PostsTable, mock.Anything).Return(closedItem, nil)
	store.On("UpdateItem", mock.Anything, models.PostsTable, "SET #status = :status", mock.Anything, mock.Anything, mock.Anything).
		Return(reopenedItem, nil)

	ps := &PostService{Dynamo: store}
	got, err := ps.UpdateStatus(context.Background(), "p1", models.PostStatusOpen)

	require.NoError(t, err)
	assert.Equal(t, models.PostStatusOpen, got.Status)
}

func TestDeletePostUnknownID(t *testing.T) {
	store := new(mockDynamo)
	store.On("GetItem", mock.Anything, models.PostsTable, mock.Anything).Return(nil, ErrItemNotFound)

	ps := &PostService{Dynamo: store}
	err := ps.DeletePost(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	store.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything, mock.Anything)
}
