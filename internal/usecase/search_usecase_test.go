package usecase

import (
	"testing"
	"time"

	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
func intPtr(n int) *int           { return &n }

func userAt(lat, lon float64) entity.User {
	return entity.User{
		ID:        uuid.New(),
		Latitude:  floatPtr(lat),
		Longitude: floatPtr(lon),
	}
}

func TestNearbyUsers_FiltersAndSorts(t *testing.T) {
	origin := userAt(12.9716, 77.5946) // Bengaluru

	close1 := userAt(12.9352, 77.6245)  // ~5 km
	close2 := userAt(13.1986, 77.7066)  // ~28 km
	faraway := userAt(13.0827, 80.2707) // Chennai, ~290 km
	noLocation := entity.User{ID: uuid.New()}

	matches := nearbyUsers(&origin, []entity.User{faraway, close2, noLocation, close1}, 50)

	require.Len(t, matches, 2)
	assert.Equal(t, close1.ID, matches[0].User.ID)
	assert.Equal(t, close2.ID, matches[1].User.ID)
	assert.Less(t, matches[0].DistanceKm, matches[1].DistanceKm)
}

func TestNearbyUsers_ExcludesOrigin(t *testing.T) {
	origin := userAt(12.9716, 77.5946)
	matches := nearbyUsers(&origin, []entity.User{origin}, 50)
	assert.Empty(t, matches)
}

func TestNearbyUsers_DistanceIsRounded(t *testing.T) {
	origin := userAt(12.9716, 77.5946)
	other := userAt(12.9352, 77.6245)

	matches := nearbyUsers(&origin, []entity.User{other}, 50)
	require.Len(t, matches, 1)

	// Two decimal places
	d := matches[0].DistanceKm
	assert.InDelta(t, d, float64(int(d*100))/100, 1e-9)
}

func TestDonorSearchResults_AnnotatesEligibility(t *testing.T) {
	today := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	origin := userAt(12.9716, 77.5946)

	eligibleUser := userAt(12.9352, 77.6245)
	blockedUser := userAt(12.9698, 77.7500)

	profiles := []entity.DonorProfile{
		{
			UserID:       eligibleUser.ID,
			User:         eligibleUser,
			Availability: boolPtr(true),
			Age:          intPtr(30),
			BloodGroup:   entity.BloodGroupOPositive,
		},
		{
			UserID:       blockedUser.ID,
			User:         blockedUser,
			Availability: boolPtr(true),
			BloodGroup:   entity.BloodGroupOPositive,
		},
	}

	results := donorSearchResults(&origin, profiles, 50, today)
	require.Len(t, results, 2)

	byID := map[uuid.UUID]bool{}
	for _, r := range results {
		byID[r.Donor.UserID] = r.Eligible
	}
	assert.True(t, byID[eligibleUser.ID])
	assert.False(t, byID[blockedUser.ID])
}

func TestDonorSearchResults_SkipsOutOfRangeAndNoLocation(t *testing.T) {
	today := time.Now()
	origin := userAt(12.9716, 77.5946)

	farUser := userAt(13.0827, 80.2707)
	hiddenUser := entity.User{ID: uuid.New()}

	profiles := []entity.DonorProfile{
		{UserID: farUser.ID, User: farUser, Availability: boolPtr(true)},
		{UserID: hiddenUser.ID, User: hiddenUser, Availability: boolPtr(true)},
	}

	results := donorSearchResults(&origin, profiles, 50, today)
	assert.Empty(t, results)
}
