package client

import "localaid_server/models"

// ProfileStore is the reconciled view of the signed-in user's own profile.
// userProfileUpdated is a broadcast, so every client sees every update; the
// store applies only events whose subject matches the held identity,
// checking both identity fields the wire can carry (the top-level userId
// and the id inside the embedded user object).
type ProfileStore struct {
	user models.User
}

// NewProfileStore holds the profile fetched at login.
func NewProfileStore(user models.User) *ProfileStore {
	return &ProfileStore{user: user}
}

// Apply reconciles a userProfileUpdated push. Returns true when the event
// addressed this user and was applied.
func (ps *ProfileStore) Apply(update models.ProfileUpdate) bool {
	held := models.NormalizeIdentity(&ps.user)
	if update.UserID != held.ID {
		subject := models.NormalizeIdentity(&update.User)
		if !models.SameUser(subject, held) {
			return false
		}
	}

	if update.User.Name != "" {
		ps.user.Name = update.User.Name
	}
	if update.User.Avatar != "" {
		ps.user.Avatar = update.User.Avatar
	}
	if update.User.LocationName != "" {
		ps.user.LocationName = update.User.LocationName
	}
	return true
}

// User returns the current profile view.
func (ps *ProfileStore) User() models.User {
	return ps.user
}
