package client

import (
	"testing"

	"localaid_server/models"

	"github.com/stretchr/testify/assert"
)

func TestProfileStoreAppliesOwnUpdateByTopLevelID(t *testing.T) {
	ps := NewProfileStore(models.User{ID: "u1", Name: "alice"})

	applied := ps.Apply(models.ProfileUpdate{
		UserID: "u1",
		User:   models.User{Name: "alice b", LocationName: "Kreuzberg"},
	})

	assert.True(t, applied)
	assert.Equal(t, "alice b", ps.User().Name)
	assert.Equal(t, "Kreuzberg", ps.User().LocationName)
}

func TestProfileStoreAppliesUpdateByEmbeddedUserID(t *testing.T) {
	ps := NewProfileStore(models.User{ID: "u1", Name: "alice"})

	// Some clients omit the top-level userId and only carry the user object.
	applied := ps.Apply(models.ProfileUpdate{
		User: models.User{ID: "u1", Avatar: "https://cdn/avatars/u1.png"},
	})

	assert.True(t, applied)
	assert.Equal(t, "https://cdn/avatars/u1.png", ps.User().Avatar)
}

func TestProfileStoreIgnoresOtherUsersUpdates(t *testing.T) {
	ps := NewProfileStore(models.User{ID: "u1", Name: "alice"})

	applied := ps.Apply(models.ProfileUpdate{
		UserID: "u2",
		User:   models.User{ID: "u2", Name: "bob"},
	})

	assert.False(t, applied)
	assert.Equal(t, "alice", ps.User().Name)
}

func TestProfileStoreEmptyFieldsLeaveProfileUnchanged(t *testing.T) {
	ps := NewProfileStore(models.User{ID: "u1", Name: "alice", Avatar: "old.png"})

	applied := ps.Apply(models.ProfileUpdate{
		UserID: "u1",
		User:   models.User{Name: "alice the helper"},
	})

	assert.True(t, applied)
	assert.Equal(t, "alice the helper", ps.User().Name)
	assert.Equal(t, "old.png", ps.User().Avatar)
}
