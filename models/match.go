package models

// Match is an undirected pairing of two users, stored with the smaller id
// first. The (userId1, userId2) key is the uniqueness guarantee: a second
// concurrent creation attempt fails the conditional put instead of writing
// a duplicate row.
type Match struct {
	UserID1       string `dynamodbav:"userId1" json:"userId1"` // Partition Key, userId1 < userId2
	UserID2       string `dynamodbav:"userId2" json:"userId2"` // Sort Key
	MatchID       string `dynamodbav:"matchId" json:"matchId"` // uuid, indexed via GSI
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
	LastMessageAt string `dynamodbav:"lastMessageAt,omitempty" json:"lastMessageAt,omitempty"` // updated by chat
}

// MatchSummary is the matched-user view returned to the client: the match
// row joined with the other participant's profile basics.
type MatchSummary struct {
	MatchID       string `json:"matchId"`
	CreatedAt     string `json:"createdAt"`
	LastMessageAt string `json:"lastMessageAt,omitempty"`
	UserID        string `json:"userId"`
	Name          string `json:"name,omitempty"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
	Bio           string `json:"bio,omitempty"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// UserID2Index is the GSI used to list matches where the user is the second id
const UserID2Index = "userId2-index"

// MatchIDIndex is the GSI used to look a match up by its uuid
const MatchIDIndex = "matchId-index"
