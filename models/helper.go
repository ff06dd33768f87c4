package models

// HelperOffer associates a post with a candidate helper. The (postId,
// helperId) pair is the table's primary key, so at most one offer can exist
// per user per post.
type HelperOffer struct {
	PostID        string `dynamodbav:"postId" json:"postId"`     // ✅ Partition Key
	HelperID      string `dynamodbav:"helperId" json:"helperId"` // ✅ Sort Key
	HelperOfferID string `dynamodbav:"helperOfferId" json:"_id"`
	HelperName    string `dynamodbav:"helperName" json:"helperName"`
	Status        string `dynamodbav:"status" json:"status"`
	Timestamp     string `dynamodbav:"timestamp" json:"timestamp"` // RFC3339
}

// HelpersTable is the DynamoDB table name for helper offers
const HelpersTable = "Helpers"

// HelperOfferIDIndex is the GSI resolving a helperOfferId back to its
// (postId, helperId) key for the status and withdraw routes.
const HelperOfferIDIndex = "helperOfferId-index"
