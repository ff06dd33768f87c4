package services

import (
	"context"
	"testing"

	"localaid_server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	store := new(mockDynamo)
	store.On("ScanWithFilter", mock.Anything, models.UsersTable, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	var stored models.User
	store.On("PutItem", mock.Anything, models.UsersTable, mock.AnythingOfType("models.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(2).(models.User)
		}).Return(nil)

	us := &UserService{Dynamo: store}
	user, err := us.Register(context.Background(), "alice", "alice@example.com", "hunter2")

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	store := new(mockDynamo)
	store.On("ScanWithFilter", mock.Anything, models.UsersTable, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(4).(*[]models.User)
			*out = []models.User{{ID: "u1", Email: "alice@example.com"}}
		}).Return(nil)

	us := &UserService{Dynamo: store}
	_, err := us.Register(context.Background(), "alice", "alice@example.com", "hunter2")

	assert.ErrorIs(t, err, ErrEmailTaken)
	store.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginIssuesTokenWithIdentityClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)

	store := new(mockDynamo)
	store.On("ScanWithFilter", mock.Anything, models.UsersTable, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(4).(*[]models.User)
			*out = []models.User{{ID: "u1", Name: "alice", Email: "alice@example.com", PasswordHash: string(hash)}}
		}).Return(nil)

	us := &UserService{Dynamo: store}
	token, user, err := us.Login(context.Background(), "alice@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "u1", claims["userId"])
	assert.Equal(t, "alice", claims["name"])
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)

	store := new(mockDynamo)
	store.On("ScanWithFilter", mock.Anything, models.UsersTable, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(4).(*[]models.User)
			*out = []models.User{{ID: "u1", Email: "alice@example.com", PasswordHash: string(hash)}}
		}).Return(nil)

	us := &UserService{Dynamo: store}
	_, _, err = us.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	store := new(mockDynamo)
	store.On("ScanWithFilter", mock.Anything, models.UsersTable, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	us := &UserService{Dynamo: store}
	_, _, err := us.Login(context.Background(), "nobody@example.com", "hunter2")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
