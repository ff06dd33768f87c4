package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"localaid_server/models"
	"localaid_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// NearbyRadiusKm bounds the geo-filtered feed, matching the original 2km
// product rule.
const NearbyRadiusKm = 2.0

// PostService struct
type PostService struct {
	Dynamo DynamoAPI
}

// CreatePost validates and stores a new post. Defaults: status open, public,
// creation time now. Validation failures abort before any write.
func (ps *PostService) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	if !models.ValidPostType(post.Type) {
		return nil, fmt.Errorf("%w: type must be one of Help, Service, Alert", ErrInvalidInput)
	}
	if post.Title == "" || post.Description == "" || post.User == "" || post.UserID == "" {
		return nil, fmt.Errorf("%w: title, description, user and userId are required", ErrInvalidInput)
	}

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.Status == "" {
		post.Status = models.PostStatusOpen
	}
	post.Time = time.Now().UTC().Format(time.RFC3339)
	post.IsPublic = true

	log.Printf("📌 Storing post %s (%s) by %s", post.ID, post.Type, post.User)
	if err := ps.Dynamo.PutItem(ctx, models.PostsTable, post); err != nil {
		return nil, fmt.Errorf("failed to store post: %w", err)
	}
	return &post, nil
}

// GetPost retrieves a post by id
func (ps *PostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: postID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.PostsTable, key)
	if err != nil {
		if err == ErrItemNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var post models.Post
	if err := attributevalue.UnmarshalMap(item, &post); err != nil {
		return nil, fmt.Errorf("failed to unmarshal post: %w", err)
	}
	return &post, nil
}

// ListPosts returns public posts. With coordinates, posts within
// NearbyRadiusKm sorted nearest-first; without, newest-first. DynamoDB has
// no geo index, so distances are computed in-process over the scan.
func (ps *PostService) ListPosts(ctx context.Context, longitude, latitude *float64) ([]models.Post, error) {
	var posts []models.Post
	err := ps.Dynamo.ScanWithFilter(ctx, models.PostsTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractBool(item, "isPublic")
	}, nil, &posts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	if longitude != nil && latitude != nil {
		nearby := make([]models.Post, 0, len(posts))
		for _, p := range posts {
			d := utils.CalculateDistance(*latitude, *longitude, p.Latitude, p.Longitude)
			if d <= NearbyRadiusKm {
				p.Distance = math.Round(d*100) / 100
				nearby = append(nearby, p)
			}
		}
		sort.SliceStable(nearby, func(i, j int) bool {
			return nearby[i].Distance < nearby[j].Distance
		})
		log.Printf("✅ Found %d posts within %.1fkm", len(nearby), NearbyRadiusKm)
		return nearby, nil
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Time > posts[j].Time
	})
	return posts, nil
}

// ListPostsByUser returns a user's public posts, newest first
func (ps *PostService) ListPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	err := ps.Dynamo.ScanWithFilter(ctx, models.PostsTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "userId") == userID && utils.ExtractBool(item, "isPublic")
	}, nil, &posts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user posts: %w", err)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Time > posts[j].Time
	})
	return posts, nil
}

// UpdateStatus transitions a post between open and closed. Closed posts can
// reopen; "active" is reserved and never produced here.
func (ps *PostService) UpdateStatus(ctx context.Context, postID, status string) (*models.Post, error) {
	if status != models.PostStatusOpen && status != models.PostStatusClosed {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Existence check first so an unknown id is a not-found, not a write.
	if _, err := ps.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: postID},
	}
	updateExpression := "SET #status = :status"
	expressionValues := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: status},
	}
	expressionNames := map[string]string{
		"#status": "status", // status is a DynamoDB reserved word
	}

	attrs, err := ps.Dynamo.UpdateItem(ctx, models.PostsTable, updateExpression, key, expressionValues, expressionNames)
	if err != nil {
		return nil, fmt.Errorf("failed to update post status: %w", err)
	}

	var post models.Post
	if err := attributevalue.UnmarshalMap(attrs, &post); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated post: %w", err)
	}
	log.Printf("✅ Post %s status set to %s", postID, status)
	return &post, nil
}

// DeletePost removes a post by id
func (ps *PostService) DeletePost(ctx context.Context, postID string) error {
	if _, err := ps.GetPost(ctx, postID); err != nil {
		return err
	}

	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: postID},
	}
	if err := ps.Dynamo.DeleteItem(ctx, models.PostsTable, key); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	log.Printf("🗑️ Post %s deleted", postID)
	return nil
}
