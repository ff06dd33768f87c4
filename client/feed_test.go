package client

import (
	"testing"

	"localaid_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedCreatedPrependsOnce(t *testing.T) {
	f := NewFeed(false)
	f.Reset([]models.Post{{ID: "p1"}, {ID: "p2"}})

	refetch := f.ApplyCreated(models.Post{ID: "p3"})
	assert.False(t, refetch)
	require.Len(t, f.Posts(), 3)
	assert.Equal(t, "p3", f.Posts()[0].ID)

	// The push echo of an optimistically inserted post must not duplicate it.
	refetch = f.ApplyCreated(models.Post{ID: "p3"})
	assert.False(t, refetch)
	assert.Len(t, f.Posts(), 3)
}

func TestFeedGeoFilteredDegradesToRefetch(t *testing.T) {
	f := NewFeed(true)
	f.Reset([]models.Post{{ID: "p1"}})

	refetch := f.ApplyCreated(models.Post{ID: "p2"})
	assert.True(t, refetch)
	// The view is untouched until the caller refetches.
	assert.Len(t, f.Posts(), 1)
}

func TestFeedUpdatedReplacesInPlace(t *testing.T) {
	f := NewFeed(false)
	f.Reset([]models.Post{{ID: "p1", Status: models.PostStatusOpen}, {ID: "p2"}})

	f.ApplyUpdated(models.Post{ID: "p1", Status: models.PostStatusClosed})

	require.Len(t, f.Posts(), 2)
	assert.Equal(t, models.PostStatusClosed, f.Posts()[0].Status)
	assert.Equal(t, "p1", f.Posts()[0].ID)
}

func TestFeedUpdatedUnknownPostIgnored(t *testing.T) {
	f := NewFeed(false)
	f.Reset([]models.Post{{ID: "p1"}})

	f.ApplyUpdated(models.Post{ID: "p9"})

	assert.Len(t, f.Posts(), 1)
}

func TestFeedDeletedRemoves(t *testing.T) {
	f := NewFeed(false)
	f.Reset([]models.Post{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}})

	f.ApplyDeleted("p2")

	require.Len(t, f.Posts(), 2)
	assert.Equal(t, "p1", f.Posts()[0].ID)
	assert.Equal(t, "p3", f.Posts()[1].ID)

	f.ApplyDeleted("p2") // repeat is a no-op
	assert.Len(t, f.Posts(), 2)
}

func TestFeedPostsUpdatedAlwaysRefetches(t *testing.T) {
	assert.True(t, NewFeed(false).ApplyPostsUpdated())
	assert.True(t, NewFeed(true).ApplyPostsUpdated())
}
