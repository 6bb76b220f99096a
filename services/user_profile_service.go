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
)

// UserProfileService handles profile CRUD. Profiles are created on first
// sign-in and filled in incrementally by the setup flow; only profiles with
// isComplete set ever surface as candidates.
type UserProfileService struct {
	Dynamo DynamoAPI
}

// AddUserProfile creates a new user profile
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	if profile.UserID == "" {
		return nil, fmt.Errorf("userId is required")
	}
	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := ups.Dynamo.PutItem(ctx, models.ProfilesTable, profile); err != nil {
		return nil, fmt.Errorf("failed to add profile: %w", err)
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by id
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if item == nil {
		return nil, ErrProfileNotFound
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// GetUserProfileWithDistance returns the profile of userID with the distance
// to targetID attached when both sides have coordinates.
func (ups *UserProfileService) GetUserProfileWithDistance(ctx context.Context, userID, targetID string) (*models.Profile, error) {
	profile, err := ups.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if targetID == "" {
		return profile, nil
	}

	targetProfile, err := ups.GetUserProfile(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch target profile: %w", err)
	}

	if (profile.Latitude == 0 && profile.Longitude == 0) ||
		(targetProfile.Latitude == 0 && targetProfile.Longitude == 0) {
		log.Printf("profile %s or %s missing coordinates, skipping distance", userID, targetID)
		return profile, nil
	}

	profile.DistanceBetween = utils.CalculateDistance(
		profile.Latitude, profile.Longitude,
		targetProfile.Latitude, targetProfile.Longitude,
	)
	return profile, nil
}

// UpdateUserProfile applies a partial update and returns the stored profile.
// Each value is marshalled to its native DynamoDB type, so the setup flow can
// patch strings, numbers, booleans and interest lists alike.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.Profile, error) {
	if len(updates) == 0 {
		return ups.GetUserProfile(ctx, userID)
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for field, value := range updates {
		marshaled, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal update for %s: %w", field, err)
		}
		placeholder := ":" + field
		attributeName := "#" + field
		updateExpression += " " + attributeName + " = " + placeholder + ","
		expressionAttributeValues[placeholder] = marshaled
		expressionAttributeNames[attributeName] = field
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := ups.Dynamo.UpdateItem(ctx, models.ProfilesTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var updatedProfile models.Profile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &updatedProfile, nil
}

// DeleteUserProfile removes a user profile
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	if err := ups.Dynamo.DeleteItem(ctx, models.ProfilesTable, key); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
