package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"amoria_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChatService stores and reads messages inside match conversations. It also
// owns the match last-activity stamp, since chat is what drives it.
type ChatService struct {
	Dynamo  DynamoAPI
	Matches *MatchService
}

// SendMessage stores a new message and bumps the match's last-activity time
func (s *ChatService) SendMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	if message.MatchID == "" || message.SenderID == "" || message.Content == "" {
		return nil, fmt.Errorf("matchId, senderId and content are required")
	}

	if message.MessageID == "" {
		message.MessageID = uuid.NewString()
	}
	message.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	message.IsUnread = true

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	// The message is durable at this point; a failed activity stamp is only
	// logged.
	if s.Matches != nil {
		if err := s.Matches.TouchLastMessage(ctx, message.MatchID, time.Now()); err != nil {
			log.Printf("failed to update match activity for %s: %v", message.MatchID, err)
		}
	}

	return &message, nil
}

// GetMessagesByMatchID fetches messages for a match, newest first
func (s *ChatService) GetMessagesByMatchID(ctx context.Context, matchID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 50
	}

	keyCondition := "matchId = :matchId"
	expressionValues := map[string]types.AttributeValue{
		":matchId": &types.AttributeValueMemberS{Value: matchID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, nil, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt > messages[j].CreatedAt
	})
	return messages, nil
}

// MarkMessagesAsRead marks the messages the user received in a match as read
func (s *ChatService) MarkMessagesAsRead(ctx context.Context, matchID, userID string) error {
	messages, err := s.GetMessagesByMatchID(ctx, matchID, 100)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if message.SenderID == userID || !message.IsUnread {
			continue
		}

		key := map[string]types.AttributeValue{
			"matchId":   &types.AttributeValueMemberS{Value: matchID},
			"messageId": &types.AttributeValueMemberS{Value: message.MessageID},
		}
		updateExpression := "SET isUnread = :isUnread"
		expressionValues := map[string]types.AttributeValue{
			":isUnread": &types.AttributeValueMemberBOOL{Value: false},
		}

		if _, err := s.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression, key, expressionValues, nil); err != nil {
			log.Printf("failed to mark message %s as read: %v", message.MessageID, err)
		}
	}
	return nil
}
