package socket

// RoomID derives the shared conversation id for a post and two participants.
// Names are sorted before concatenating, so both sides compute the same room
// no matter who initiates. This must match the id clients join with, or
// messages land in mismatched rooms.
func RoomID(postID, userA, userB string) string {
	first, second := userA, userB
	if second < first {
		first, second = second, first
	}
	return postID + "_" + first + "_" + second
}
