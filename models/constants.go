package models

// Post types
const (
	PostTypeHelp    = "Help"
	PostTypeService = "Service"
	PostTypeAlert   = "Alert"
)

// Post statuses. StatusActive exists in the schema but no route transitions
// into it; it is reserved for the helper-acceptance flow.
const (
	PostStatusOpen   = "open"
	PostStatusActive = "active"
	PostStatusClosed = "closed"
)

// Notification types
const (
	NotificationTypeHelpOffer      = "HELP_OFFER"
	NotificationTypeMessage        = "MESSAGE"
	NotificationTypeHelperAccepted = "HELPER_ACCEPTED"
	NotificationTypeHelperRejected = "HELPER_REJECTED"
	NotificationTypeNewPost        = "NEW_POST"
)

// Helper offer statuses
const (
	HelperStatusPending  = "pending"
	HelperStatusAccepted = "accepted"
	HelperStatusRejected = "rejected"
)

// ValidPostType reports whether t is one of the accepted post types.
func ValidPostType(t string) bool {
	return t == PostTypeHelp || t == PostTypeService || t == PostTypeAlert
}
