package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"localaid_server/models"
	"localaid_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService handles accounts, login tokens and profile updates
type UserService struct {
	Dynamo DynamoAPI
}

// Register creates a user account with a bcrypt password hash
func (us *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	if existing, err := us.GetUserByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := us.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return nil, fmt.Errorf("failed to store user: %w", err)
	}
	log.Printf("✅ Registered user %s (%s)", name, user.ID)
	return &user, nil
}

// Login verifies credentials and issues a 7-day JWT
func (us *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := us.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := SignToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// SignToken issues a JWT carrying the user's identity claims
func SignToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"exp":    time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// GetUser retrieves a user by id
func (us *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := us.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail returns the user with the given email, or nil when absent
func (us *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	err := us.Dynamo.ScanWithFilter(ctx, models.UsersTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "email") == email
	}, nil, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// UpdateProfile updates name, locationName and avatar and returns the new
// user record; empty fields are left unchanged.
func (us *UserService) UpdateProfile(ctx context.Context, userID string, updates map[string]string) (*models.User, error) {
	if _, err := us.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	allowed := map[string]bool{"name": true, "locationName": true, "avatar": true}
	updateExpression := "SET"
	expressionValues := map[string]types.AttributeValue{}
	expressionNames := map[string]string{}
	for field, value := range updates {
		if !allowed[field] || value == "" {
			continue
		}
		updateExpression += " #" + field + " = :" + field + ","
		expressionNames["#"+field] = field
		expressionValues[":"+field] = &types.AttributeValueMemberS{Value: value}
	}
	if len(expressionValues) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: userID},
	}
	attrs, err := us.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, key, expressionValues, expressionNames)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(attrs, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated user: %w", err)
	}
	log.Printf("✅ Profile updated for %s", userID)
	return &user, nil
}
