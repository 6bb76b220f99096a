package models

// Swipe is an append-only record of a like/pass decision. Every swipe call
// inserts a new row; duplicates for the same (actor, target) pair are kept
// as interaction history.
type Swipe struct {
	SwipeID   string `dynamodbav:"swipeId" json:"swipeId"` // Partition Key (uuid)
	ActorID   string `dynamodbav:"actorId" json:"actorId"`
	TargetID  string `dynamodbav:"targetId" json:"targetId"`
	Action    string `dynamodbav:"action" json:"action"` // like or pass
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// SwipeResult is returned by the swipe recorder; MatchID is set only when a
// mutual like was detected.
type SwipeResult struct {
	IsMatch bool   `json:"isMatch"`
	MatchID string `json:"matchId,omitempty"`
}

// SwipesTable is the DynamoDB table name for swipe history
const SwipesTable = "Swipes"

// ActorIDIndex is the GSI used to list all swipes made by one user
const ActorIDIndex = "actorId-index"
