package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"amoria_server/models"
	"amoria_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// matchPairCondition is the storage-level uniqueness constraint on the
// canonical (userId1, userId2) key. It is the source of truth for "at most
// one match per pair"; the reciprocity fast path is only an optimization.
const matchPairCondition = "attribute_not_exists(userId1) AND attribute_not_exists(userId2)"

// SwipeService records swipe decisions and materializes matches on mutual
// likes.
type SwipeService struct {
	Dynamo DynamoAPI
}

// CreateSwipe appends a swipe row and, for likes, runs match detection.
// The swipe insert is durable on its own: a failure past that point does not
// roll it back, and retrying match detection is idempotent.
func (ss *SwipeService) CreateSwipe(ctx context.Context, actorID, targetID, action string) (models.SwipeResult, error) {
	if actorID == "" || targetID == "" || actorID == targetID {
		return models.SwipeResult{}, fmt.Errorf("invalid swipe participants: actor=%q target=%q", actorID, targetID)
	}
	if !models.IsValidSwipeAction(action) {
		return models.SwipeResult{}, ErrInvalidSwipeAction
	}

	swipe := models.Swipe{
		SwipeID:   uuid.NewString(),
		ActorID:   actorID,
		TargetID:  targetID,
		Action:    action,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := ss.Dynamo.PutItem(ctx, models.SwipesTable, swipe); err != nil {
		return models.SwipeResult{}, fmt.Errorf("failed to record swipe: %w", err)
	}

	if action == models.ActionPass {
		return models.SwipeResult{IsMatch: false}, nil
	}

	mutual, err := ss.hasReciprocalLike(ctx, actorID, targetID)
	if err != nil {
		return models.SwipeResult{}, fmt.Errorf("failed to check reciprocity: %w", err)
	}
	if !mutual {
		return models.SwipeResult{IsMatch: false}, nil
	}

	matchID, err := ss.createMatch(ctx, actorID, targetID)
	if err != nil {
		return models.SwipeResult{}, fmt.Errorf("failed to create match: %w", err)
	}

	log.Printf("match %s created between %s and %s", matchID, actorID, targetID)
	return models.SwipeResult{IsMatch: true, MatchID: matchID}, nil
}

// hasReciprocalLike checks whether target has already liked actor. Any
// existing like row satisfies the check, duplicates included.
func (ss *SwipeService) hasReciprocalLike(ctx context.Context, actorID, targetID string) (bool, error) {
	keyCondition := "actorId = :actorId"
	expressionValues := map[string]types.AttributeValue{
		":actorId": &types.AttributeValueMemberS{Value: targetID},
	}

	items, err := ss.Dynamo.QueryItemsWithIndex(ctx, models.SwipesTable, models.ActorIDIndex, keyCondition, expressionValues, nil, 1000)
	if err != nil {
		return false, err
	}

	for _, item := range items {
		var swipe models.Swipe
		if err := attributevalue.UnmarshalMap(item, &swipe); err != nil {
			continue
		}
		if swipe.TargetID == actorID && swipe.Action == models.ActionLike {
			return true, nil
		}
	}
	return false, nil
}

// createMatch inserts the match row keyed by the canonical ordered pair.
// When the conditional put loses a race (or the pair already matched), the
// existing row's id is returned instead of an error.
func (ss *SwipeService) createMatch(ctx context.Context, actorID, targetID string) (string, error) {
	userID1, userID2 := CanonicalPair(actorID, targetID)

	match := models.Match{
		UserID1:   userID1,
		UserID2:   userID2,
		MatchID:   uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	err := ss.Dynamo.PutItemWithCondition(ctx, models.MatchesTable, match, matchPairCondition)
	if err == nil {
		return match.MatchID, nil
	}
	if !IsConditionalCheckFailed(err) {
		return "", err
	}

	log.Printf("match between %s and %s already exists, returning existing id", userID1, userID2)
	return ss.getExistingMatchID(ctx, userID1, userID2)
}

func (ss *SwipeService) getExistingMatchID(ctx context.Context, userID1, userID2 string) (string, error) {
	key := map[string]types.AttributeValue{
		"userId1": &types.AttributeValueMemberS{Value: userID1},
		"userId2": &types.AttributeValueMemberS{Value: userID2},
	}
	item, err := ss.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return "", fmt.Errorf("failed to fetch existing match: %w", err)
	}
	if item == nil {
		return "", ErrMatchNotFound
	}
	return utils.ExtractString(item, "matchId"), nil
}

// CanonicalPair orders two user ids with the smaller one first so a pair
// always maps to the same storage key.
func CanonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
