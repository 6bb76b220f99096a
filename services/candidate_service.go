package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"amoria_server/models"
	"amoria_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// oversampleFactor is how many raw rows are read per requested candidate so
// the pool survives downstream rejection.
const oversampleFactor = 3

// CandidateService assembles the swipe-screen candidate pool:
// viewer profile -> filters -> exclusions -> raw query -> filter -> rank.
type CandidateService struct {
	Dynamo DynamoAPI
}

// GetMatchCandidates returns up to limit candidates for the viewer, ranked
// by shared-interest count. An empty pool is a valid result, not an error.
func (cs *CandidateService) GetMatchCandidates(ctx context.Context, viewerID string, limit int) ([]models.MatchCandidate, error) {
	if limit <= 0 {
		limit = 20
	}

	viewer, err := cs.getProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	filters := BuildMatchFilters(viewer)

	excluded, err := cs.getLikedUserIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swipe history: %w", err)
	}

	rawCandidates, err := cs.scanCandidates(ctx, viewerID, filters.SeekingGender, excluded, int32(limit*oversampleFactor))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate profiles: %w", err)
	}

	if len(rawCandidates) == 0 {
		return []models.MatchCandidate{}, nil
	}

	// Stop once limit candidates are accepted; remaining raw rows are not
	// evaluated, which biases toward storage order.
	candidates := make([]models.MatchCandidate, 0, limit)
	for _, raw := range rawCandidates {
		candidate := FilterCandidate(raw, filters)
		if candidate == nil {
			continue
		}
		candidates = append(candidates, *candidate)
		if len(candidates) >= limit {
			break
		}
	}

	RankCandidates(candidates, filters)

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	log.Printf("candidate pool for %s: %d raw, %d accepted", viewerID, len(rawCandidates), len(candidates))
	return candidates, nil
}

// BuildMatchFilters derives the viewer's filter set from their profile. The
// viewer's own age is computed but only the viewer-toward-candidate direction
// is enforced; candidates' preferences are not checked back.
func BuildMatchFilters(viewer *models.Profile) models.MatchFilters {
	return models.MatchFilters{
		SeekingGender: viewer.SeekingGender,
		AgeMin:        viewer.AgeMin,
		AgeMax:        viewer.AgeMax,
		MaxDistance:   viewer.DistanceKm,
		Interests:     viewer.Interests,
		Latitude:      viewer.Latitude,
		Longitude:     viewer.Longitude,
		ViewerGender:  viewer.Gender,
		ViewerAge:     CalculateAge(viewer.Birthdate),
	}
}

// FilterCandidate applies the viewer's age, distance and interest predicates
// to one raw candidate. It returns the populated MatchCandidate on accept and
// nil on reject; it never fails.
func FilterCandidate(candidate models.Profile, filters models.MatchFilters) *models.MatchCandidate {
	age := CalculateAge(candidate.Birthdate)

	if filters.AgeMin > 0 && age < filters.AgeMin {
		return nil
	}
	if filters.AgeMax > 0 && age > filters.AgeMax {
		return nil
	}

	// Distance is unknown unless both sides have coordinates; unknown never
	// rejects.
	var distanceKm float64
	if hasCoordinates(filters.Latitude, filters.Longitude) && hasCoordinates(candidate.Latitude, candidate.Longitude) {
		distanceKm = utils.CalculateDistance(filters.Latitude, filters.Longitude, candidate.Latitude, candidate.Longitude)
		if filters.MaxDistance > 0 && distanceKm > filters.MaxDistance {
			return nil
		}
	}

	if len(filters.Interests) > 0 && len(candidate.Interests) > 0 &&
		CountSharedInterests(candidate.Interests, filters.Interests) == 0 {
		return nil
	}

	name := candidate.Name
	if name == "" {
		name = "User"
	}

	return &models.MatchCandidate{
		UserID:     candidate.UserID,
		Name:       name,
		Age:        age,
		AvatarURL:  candidate.AvatarURL,
		Bio:        candidate.Bio,
		Interests:  candidate.Interests,
		Address:    candidate.Address,
		DistanceKm: distanceKm,
		Gender:     candidate.Gender,
	}
}

// RankCandidates orders candidates by shared-interest count descending.
// Shuffling before the stable sort randomizes order inside each count group,
// so reruns with identical input may differ below the group level.
func RankCandidates(candidates []models.MatchCandidate, filters models.MatchFilters) {
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return CountSharedInterests(candidates[i].Interests, filters.Interests) >
			CountSharedInterests(candidates[j].Interests, filters.Interests)
	})
}

// CountSharedInterests counts interest tags present in both sets
func CountSharedInterests(candidateInterests, viewerInterests []string) int {
	if len(candidateInterests) == 0 || len(viewerInterests) == 0 {
		return 0
	}
	viewerSet := make(map[string]struct{}, len(viewerInterests))
	for _, interest := range viewerInterests {
		viewerSet[interest] = struct{}{}
	}
	shared := 0
	for _, interest := range candidateInterests {
		if _, ok := viewerSet[interest]; ok {
			shared++
		}
	}
	return shared
}

// CalculateAge derives age in years from an ISO birthdate. Unparseable or
// future birthdates yield 0.
func CalculateAge(birthdate string) int {
	parsed, err := time.Parse("2006-01-02", birthdate)
	if err != nil {
		return 0
	}
	age := time.Now().Year() - parsed.Year()
	if age < 0 {
		return 0
	}
	return age
}

func hasCoordinates(lat, lon float64) bool {
	return lat != 0 || lon != 0
}

func (cs *CandidateService) getProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := cs.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch viewer profile: %w", err)
	}
	if item == nil {
		return nil, ErrProfileNotFound
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal viewer profile: %w", err)
	}
	return &profile, nil
}

// getLikedUserIDs builds the exclusion set: only targets the viewer already
// liked. Passed users are deliberately left in so they can resurface.
func (cs *CandidateService) getLikedUserIDs(ctx context.Context, viewerID string) (map[string]struct{}, error) {
	keyCondition := "actorId = :actorId"
	expressionValues := map[string]types.AttributeValue{
		":actorId": &types.AttributeValueMemberS{Value: viewerID},
	}

	items, err := cs.Dynamo.QueryItemsWithIndex(ctx, models.SwipesTable, models.ActorIDIndex, keyCondition, expressionValues, nil, 1000)
	if err != nil {
		return nil, err
	}

	liked := make(map[string]struct{})
	for _, item := range items {
		var swipe models.Swipe
		if err := attributevalue.UnmarshalMap(item, &swipe); err != nil {
			continue
		}
		if swipe.Action == models.ActionLike {
			liked[swipe.TargetID] = struct{}{}
		}
	}
	return liked, nil
}

func (cs *CandidateService) scanCandidates(ctx context.Context, viewerID, seekingGender string, excluded map[string]struct{}, limit int32) ([]models.Profile, error) {
	matchFields := map[string]string{}
	if seekingGender != "" && seekingGender != models.SeekingBoth {
		matchFields["gender"] = seekingGender
	}
	excludeFields := map[string]string{
		"userId": viewerID,
	}

	var profiles []models.Profile
	err := cs.Dynamo.ScanWithFilter(ctx, models.ProfilesTable, func(item map[string]types.AttributeValue) bool {
		if !utils.ExtractBool(item, "isComplete") {
			return false
		}
		userID := utils.ExtractString(item, "userId")
		if _, skip := excluded[userID]; skip {
			return false
		}
		return true
	}, matchFields, excludeFields, limit, &profiles)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
