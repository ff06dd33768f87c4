package models

// Post defines the structure for bulletin-board posts
type Post struct {
	ID          string  `dynamodbav:"id" json:"_id"`
	Type        string  `dynamodbav:"type" json:"type"`
	Status      string  `dynamodbav:"status" json:"status"`
	Title       string  `dynamodbav:"title" json:"title"`
	Description string  `dynamodbav:"description" json:"description"`
	Image       string  `dynamodbav:"image,omitempty" json:"image,omitempty"`
	Video       string  `dynamodbav:"video,omitempty" json:"video,omitempty"`
	User        string  `dynamodbav:"user" json:"user"`     // creator display name
	UserID      string  `dynamodbav:"userId" json:"userId"` // creator id
	Time        string  `dynamodbav:"time" json:"time"`     // RFC3339
	Longitude   float64 `dynamodbav:"longitude" json:"longitude"`
	Latitude    float64 `dynamodbav:"latitude" json:"latitude"`
	IsPublic    bool    `dynamodbav:"isPublic" json:"isPublic"`
	Distance    float64 `dynamodbav:"-" json:"distance,omitempty"` // computed km, not stored
}

// PostsTable is the DynamoDB table name for posts
const PostsTable = "Posts"
