package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"amoria_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// birthdateForAge builds an ISO birthdate that CalculateAge resolves to the
// given age (age is a plain year difference).
func birthdateForAge(age int) string {
	return fmt.Sprintf("%04d-06-15", time.Now().Year()-age)
}

func TestFilterCandidate(t *testing.T) {
	viewerFilters := models.MatchFilters{
		AgeMin:    25,
		AgeMax:    35,
		Interests: []string{"music", "travel"},
	}

	tests := []struct {
		name     string
		filters  models.MatchFilters
		profile  models.Profile
		accepted bool
	}{
		{
			name:     "age ok with shared interest",
			filters:  viewerFilters,
			profile:  models.Profile{UserID: "c1", Name: "Anna", Birthdate: birthdateForAge(30), Interests: []string{"travel", "art"}},
			accepted: true,
		},
		{
			name:     "age above maximum",
			filters:  viewerFilters,
			profile:  models.Profile{UserID: "c2", Birthdate: birthdateForAge(40), Interests: []string{"travel"}},
			accepted: false,
		},
		{
			name:     "age below minimum",
			filters:  viewerFilters,
			profile:  models.Profile{UserID: "c3", Birthdate: birthdateForAge(21), Interests: []string{"travel"}},
			accepted: false,
		},
		{
			name:     "disjoint interests",
			filters:  viewerFilters,
			profile:  models.Profile{UserID: "c4", Birthdate: birthdateForAge(30), Interests: []string{"gaming", "wine"}},
			accepted: false,
		},
		{
			name:     "candidate without interests passes interest filter",
			filters:  viewerFilters,
			profile:  models.Profile{UserID: "c5", Birthdate: birthdateForAge(30)},
			accepted: true,
		},
		{
			name:     "viewer without interests passes interest filter",
			filters:  models.MatchFilters{AgeMin: 25, AgeMax: 35},
			profile:  models.Profile{UserID: "c6", Birthdate: birthdateForAge(30), Interests: []string{"gaming"}},
			accepted: true,
		},
		{
			name: "too far away",
			filters: models.MatchFilters{
				Latitude:    10.0,
				Longitude:   106.0,
				MaxDistance: 5,
			},
			profile:  models.Profile{UserID: "c7", Birthdate: birthdateForAge(30), Latitude: 10.5, Longitude: 106.5},
			accepted: false,
		},
		{
			name: "candidate without coordinates skips distance filter",
			filters: models.MatchFilters{
				Latitude:    10.0,
				Longitude:   106.0,
				MaxDistance: 5,
			},
			profile:  models.Profile{UserID: "c8", Birthdate: birthdateForAge(30)},
			accepted: true,
		},
		{
			name: "viewer without coordinates skips distance filter",
			filters: models.MatchFilters{
				MaxDistance: 5,
			},
			profile:  models.Profile{UserID: "c9", Birthdate: birthdateForAge(30), Latitude: 10.5, Longitude: 106.5},
			accepted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := FilterCandidate(tt.profile, tt.filters)
			if !tt.accepted {
				assert.Nil(t, candidate)
				return
			}
			require.NotNil(t, candidate)
			assert.Equal(t, tt.profile.UserID, candidate.UserID)
		})
	}
}

func TestFilterCandidatePopulatesComputedFields(t *testing.T) {
	filters := models.MatchFilters{
		Latitude:    10.0,
		Longitude:   106.0,
		MaxDistance: 100,
		Interests:   []string{"music"},
	}
	profile := models.Profile{
		UserID:    "c1",
		Name:      "Anna",
		Birthdate: birthdateForAge(28),
		Latitude:  10.1,
		Longitude: 106.1,
		Interests: []string{"music"},
	}

	candidate := FilterCandidate(profile, filters)
	require.NotNil(t, candidate)
	assert.Equal(t, 28, candidate.Age)
	assert.Greater(t, candidate.DistanceKm, 0.0)
	assert.LessOrEqual(t, candidate.DistanceKm, 100.0)
}

func TestRankCandidatesGroupsBySharedCount(t *testing.T) {
	filters := models.MatchFilters{Interests: []string{"music", "travel", "art"}}
	candidates := []models.MatchCandidate{
		{UserID: "none", Interests: []string{"wine"}},
		{UserID: "two-a", Interests: []string{"music", "travel"}},
		{UserID: "one-a", Interests: []string{"music"}},
		{UserID: "three", Interests: []string{"music", "travel", "art"}},
		{UserID: "one-b", Interests: []string{"art", "gaming"}},
		{UserID: "two-b", Interests: []string{"travel", "art"}},
	}

	// Tie-break is randomized, so only the grouping is asserted
	for i := 0; i < 10; i++ {
		RankCandidates(candidates, filters)
		previous := len(filters.Interests) + 1
		for _, candidate := range candidates {
			shared := CountSharedInterests(candidate.Interests, filters.Interests)
			assert.LessOrEqual(t, shared, previous)
			previous = shared
		}
		assert.Equal(t, "three", candidates[0].UserID)
		assert.Equal(t, "none", candidates[len(candidates)-1].UserID)
	}
}

func TestCountSharedInterests(t *testing.T) {
	assert.Equal(t, 2, CountSharedInterests([]string{"music", "travel", "art"}, []string{"music", "travel"}))
	assert.Equal(t, 0, CountSharedInterests([]string{"music"}, []string{"wine"}))
	assert.Equal(t, 0, CountSharedInterests(nil, []string{"music"}))
	assert.Equal(t, 0, CountSharedInterests([]string{"music"}, nil))
}

func TestCalculateAge(t *testing.T) {
	assert.Equal(t, 30, CalculateAge(birthdateForAge(30)))
	assert.Equal(t, 0, CalculateAge("not-a-date"))
	assert.Equal(t, 0, CalculateAge(""))
	assert.Equal(t, 0, CalculateAge(fmt.Sprintf("%04d-01-01", time.Now().Year()+5)))
}

func TestGetMatchCandidatesViewerNotFound(t *testing.T) {
	svc := &CandidateService{Dynamo: &fakeDynamo{}}

	_, err := svc.GetMatchCandidates(context.Background(), "ghost", 10)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetMatchCandidatesEmptyPool(t *testing.T) {
	viewer := models.Profile{
		UserID:        "viewer",
		Birthdate:     birthdateForAge(30),
		Gender:        models.GenderMale,
		SeekingGender: models.SeekingFemale,
		IsComplete:    true,
	}

	fake := &fakeDynamo{
		getItemFn: func(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
			return marshalItem(t, viewer), nil
		},
	}
	svc := &CandidateService{Dynamo: fake}

	candidates, err := svc.GetMatchCandidates(context.Background(), "viewer", 10)
	require.NoError(t, err)
	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}

func TestGetMatchCandidatesFiltersAndExcludes(t *testing.T) {
	viewer := models.Profile{
		UserID:        "viewer",
		Birthdate:     birthdateForAge(30),
		Gender:        models.GenderMale,
		SeekingGender: models.SeekingFemale,
		AgeMin:        25,
		AgeMax:        35,
		Interests:     []string{"music", "travel"},
		IsComplete:    true,
	}

	profiles := []models.Profile{
		{UserID: "liked-before", Name: "Alice", Birthdate: birthdateForAge(30), Gender: models.GenderFemale, Interests: []string{"music"}, IsComplete: true},
		{UserID: "bella", Name: "Bella", Birthdate: birthdateForAge(30), Gender: models.GenderFemale, Interests: []string{"music"}, IsComplete: true},
		{UserID: "too-old", Name: "Cara", Birthdate: birthdateForAge(40), Gender: models.GenderFemale, Interests: []string{"music"}, IsComplete: true},
		{UserID: "incomplete", Name: "Dana", Birthdate: birthdateForAge(30), Gender: models.GenderFemale, Interests: []string{"music"}},
		{UserID: "no-overlap", Name: "Emma", Birthdate: birthdateForAge(30), Gender: models.GenderFemale, Interests: []string{"wine"}, IsComplete: true},
	}

	fake := &fakeDynamo{
		getItemFn: func(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
			return marshalItem(t, viewer), nil
		},
		queryItemsWithIndexFn: func(ctx context.Context, tableName, indexName, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
			return marshalItems(t,
				models.Swipe{SwipeID: "s1", ActorID: "viewer", TargetID: "liked-before", Action: models.ActionLike},
				models.Swipe{SwipeID: "s2", ActorID: "viewer", TargetID: "too-old", Action: models.ActionPass},
			), nil
		},
		scanWithFilterFn: func(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, matchFields, excludeFields map[string]string, limit int32, result interface{}) error {
			assert.Equal(t, models.GenderFemale, matchFields["gender"])
			assert.Equal(t, "viewer", excludeFields["userId"])

			var kept []map[string]types.AttributeValue
			for _, item := range marshalItems(t, profiles[0], profiles[1], profiles[2], profiles[3], profiles[4]) {
				if filterFunc == nil || filterFunc(item) {
					kept = append(kept, item)
				}
			}
			return attributevalue.UnmarshalListOfMaps(kept, result)
		},
	}
	svc := &CandidateService{Dynamo: fake}

	candidates, err := svc.GetMatchCandidates(context.Background(), "viewer", 10)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "bella", candidates[0].UserID)
	assert.Equal(t, 30, candidates[0].Age)
}

func TestGetMatchCandidatesRespectsLimit(t *testing.T) {
	viewer := models.Profile{
		UserID:        "viewer",
		Birthdate:     birthdateForAge(30),
		SeekingGender: models.SeekingBoth,
		IsComplete:    true,
	}

	var profiles []interface{}
	for i := 0; i < 9; i++ {
		profiles = append(profiles, models.Profile{
			UserID:     fmt.Sprintf("candidate-%d", i),
			Birthdate:  birthdateForAge(30),
			IsComplete: true,
		})
	}

	var requestedLimit int32
	fake := &fakeDynamo{
		getItemFn: func(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
			return marshalItem(t, viewer), nil
		},
		scanWithFilterFn: func(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, matchFields, excludeFields map[string]string, limit int32, result interface{}) error {
			requestedLimit = limit
			// Seeking "both" must not add a gender predicate
			assert.NotContains(t, matchFields, "gender")

			var kept []map[string]types.AttributeValue
			for _, item := range marshalItems(t, profiles...) {
				if filterFunc == nil || filterFunc(item) {
					kept = append(kept, item)
				}
			}
			return attributevalue.UnmarshalListOfMaps(kept, result)
		},
	}
	svc := &CandidateService{Dynamo: fake}

	candidates, err := svc.GetMatchCandidates(context.Background(), "viewer", 3)
	require.NoError(t, err)
	assert.Len(t, candidates, 3)
	assert.Equal(t, int32(9), requestedLimit) // limit x3 oversampling
}
