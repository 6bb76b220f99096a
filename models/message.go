package models

// Message is a chat message inside a match conversation
type Message struct {
	MatchID   string `dynamodbav:"matchId" json:"matchId"`     // Partition Key
	MessageID string `dynamodbav:"messageId" json:"messageId"` // Sort Key (uuid)
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Content   string `dynamodbav:"content" json:"content"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	IsUnread  bool   `dynamodbav:"isUnread" json:"isUnread"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
