package models

// User defines the structure for user accounts
type User struct {
	ID           string `dynamodbav:"id" json:"id"`
	Name         string `dynamodbav:"name" json:"name"`
	Email        string `dynamodbav:"email" json:"email"`
	PasswordHash string `dynamodbav:"passwordHash" json:"-"`
	Avatar       string `dynamodbav:"avatar,omitempty" json:"avatar,omitempty"`
	LocationName string `dynamodbav:"locationName,omitempty" json:"locationName,omitempty"`
}

// ProfileUpdate is the wire payload of the "userProfileUpdated" broadcast.
// It is sent to every client; each one applies it only when the subject
// matches its own held identity.
type ProfileUpdate struct {
	UserID string `json:"userId"`
	User   User   `json:"user"`
}

// UsersTable is the DynamoDB table name for user accounts
const UsersTable = "Users"
