package models

// Identity is the canonical user reference. Existing clients send a user as
// either an embedded object or a bare name string, and an id as either "id"
// or the legacy "_id" alias. Every inbound shape is collapsed here, at the
// boundary, so nothing deeper in the system branches on shape.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// NormalizeIdentity maps any accepted user shape into a canonical Identity.
// Accepted shapes: Identity, *User, User, a map decoded from JSON, or a bare
// name string.
func NormalizeIdentity(v interface{}) Identity {
	switch u := v.(type) {
	case Identity:
		return u
	case *User:
		if u == nil {
			return Identity{}
		}
		return Identity{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
	case User:
		return Identity{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
	case string:
		return Identity{Name: u}
	case map[string]interface{}:
		id := stringField(u, "id")
		if id == "" {
			id = stringField(u, "_id")
		}
		if id == "" {
			id = stringField(u, "userId")
		}
		name := stringField(u, "name")
		if name == "" {
			name = stringField(u, "userName")
		}
		return Identity{ID: id, Name: name, Avatar: stringField(u, "avatar")}
	default:
		return Identity{}
	}
}

// SameUser reports whether two identities refer to the same user. IDs win
// when both sides carry one; otherwise the display name decides, since
// messages and notifications reference users by name.
func SameUser(a, b Identity) bool {
	if a.ID != "" && b.ID != "" {
		return a.ID == b.ID
	}
	return a.Name != "" && a.Name == b.Name
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
