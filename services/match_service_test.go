package services

import (
	"context"
	"testing"
	"time"

	"amoria_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMatchesMergesBothSides(t *testing.T) {
	profiles := map[string]models.Profile{
		"alice": {UserID: "alice", Name: "Alice", AvatarURL: "https://cdn/alice.jpg"},
		"cara":  {UserID: "cara", Name: "Cara"},
	}

	fake := &fakeDynamo{
		queryItemsFn: func(ctx context.Context, tableName, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
			// bob sits on the first side of this pair
			return marshalItems(t, models.Match{
				UserID1: "bob", UserID2: "cara", MatchID: "m2", CreatedAt: "2026-02-01T10:00:00Z",
			}), nil
		},
		queryItemsWithIndexFn: func(ctx context.Context, tableName, indexName, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
			// and on the second side of this one
			return marshalItems(t, models.Match{
				UserID1: "alice", UserID2: "bob", MatchID: "m1", CreatedAt: "2026-03-01T10:00:00Z",
			}), nil
		},
		getItemFn: func(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
			userID := key["userId"].(*types.AttributeValueMemberS).Value
			profile, ok := profiles[userID]
			if !ok {
				return nil, nil
			}
			return marshalItem(t, profile), nil
		},
	}
	svc := &MatchService{Dynamo: fake}

	matches, err := svc.GetMatches(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// Newest first, and always the other participant's profile
	assert.Equal(t, "m1", matches[0].MatchID)
	assert.Equal(t, "alice", matches[0].UserID)
	assert.Equal(t, "Alice", matches[0].Name)
	assert.Equal(t, "m2", matches[1].MatchID)
	assert.Equal(t, "cara", matches[1].UserID)
}

func TestGetMatchesRequiresUser(t *testing.T) {
	svc := &MatchService{Dynamo: &fakeDynamo{}}

	_, err := svc.GetMatches(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestGetMatchByIDNotFound(t *testing.T) {
	svc := &MatchService{Dynamo: &fakeDynamo{}}

	_, err := svc.GetMatchByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestTouchLastMessage(t *testing.T) {
	var updatedKey map[string]types.AttributeValue
	var updateExpression string

	fake := &fakeDynamo{
		queryItemsWithIndexFn: func(ctx context.Context, tableName, indexName, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
			assert.Equal(t, models.MatchIDIndex, indexName)
			return marshalItems(t, models.Match{UserID1: "alice", UserID2: "bob", MatchID: "m1"}), nil
		},
		updateItemFn: func(ctx context.Context, tableName, expression string, key map[string]types.AttributeValue, values map[string]types.AttributeValue, names map[string]string) (map[string]types.AttributeValue, error) {
			updatedKey = key
			updateExpression = expression
			return map[string]types.AttributeValue{}, nil
		},
	}
	svc := &MatchService{Dynamo: fake}

	err := svc.TouchLastMessage(context.Background(), "m1", time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, updateExpression, "lastMessageAt")
	assert.Equal(t, "alice", updatedKey["userId1"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "bob", updatedKey["userId2"].(*types.AttributeValueMemberS).Value)
}
