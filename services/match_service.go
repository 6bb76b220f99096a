package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"amoria_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MatchService serves the matches screen: the user's mutual matches joined
// with the other participant's profile basics.
type MatchService struct {
	Dynamo DynamoAPI
}

// GetMatches lists the user's matches, newest first. The user can sit on
// either side of the canonical pair, so both sides are queried.
func (ms *MatchService) GetMatches(ctx context.Context, userID string) ([]models.MatchSummary, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	matches, err := ms.matchesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.MatchSummary, 0, len(matches))
	for _, match := range matches {
		otherID := match.UserID1
		if otherID == userID {
			otherID = match.UserID2
		}

		summary := models.MatchSummary{
			MatchID:       match.MatchID,
			CreatedAt:     match.CreatedAt,
			LastMessageAt: match.LastMessageAt,
			UserID:        otherID,
		}

		// Skip profile enrichment failures rather than losing the match row
		if profile, err := ms.getProfile(ctx, otherID); err == nil && profile != nil {
			summary.Name = profile.Name
			summary.AvatarURL = profile.AvatarURL
			summary.Bio = profile.Bio
		}

		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt > summaries[j].CreatedAt
	})
	return summaries, nil
}

// GetMatchByID resolves a match through the matchId GSI
func (ms *MatchService) GetMatchByID(ctx context.Context, matchID string) (*models.Match, error) {
	keyCondition := "matchId = :matchId"
	expressionValues := map[string]types.AttributeValue{
		":matchId": &types.AttributeValueMemberS{Value: matchID},
	}

	items, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, models.MatchIDIndex, keyCondition, expressionValues, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to look up match %s: %w", matchID, err)
	}
	if len(items) == 0 {
		return nil, ErrMatchNotFound
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(items[0], &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// TouchLastMessage stamps the match's last-activity time; called by the chat
// layer when a message lands.
func (ms *MatchService) TouchLastMessage(ctx context.Context, matchID string, at time.Time) error {
	match, err := ms.GetMatchByID(ctx, matchID)
	if err != nil {
		return err
	}

	key := map[string]types.AttributeValue{
		"userId1": &types.AttributeValueMemberS{Value: match.UserID1},
		"userId2": &types.AttributeValueMemberS{Value: match.UserID2},
	}
	updateExpression := "SET lastMessageAt = :lastMessageAt"
	expressionValues := map[string]types.AttributeValue{
		":lastMessageAt": &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339)},
	}

	if _, err := ms.Dynamo.UpdateItem(ctx, models.MatchesTable, updateExpression, key, expressionValues, nil); err != nil {
		return fmt.Errorf("failed to update match activity: %w", err)
	}
	return nil
}

func (ms *MatchService) matchesForUser(ctx context.Context, userID string) ([]models.Match, error) {
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}

	side1, err := ms.Dynamo.QueryItems(ctx, models.MatchesTable, "userId1 = :userId", expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	side2, err := ms.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, models.UserID2Index, "userId2 = :userId", expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches by second id: %w", err)
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(append(side1, side2...), &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}
	return matches, nil
}

func (ms *MatchService) getProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := ms.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil || item == nil {
		return nil, err
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
