package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestEligibleAt_ChecksRunInOrder(t *testing.T) {
	today := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	recent := today.AddDate(0, 0, -10)

	cases := []struct {
		name       string
		profile    DonorProfile
		wantOK     bool
		wantReason string
	}{
		{
			name: "availability off wins over everything",
			profile: DonorProfile{
				Availability:     boolPtr(false),
				Age:              intPtr(10),
				LastDonationDate: &recent,
			},
			wantOK:     false,
			wantReason: "Availability is turned OFF",
		},
		{
			name:       "age unset",
			profile:    DonorProfile{Availability: boolPtr(true)},
			wantOK:     false,
			wantReason: "Please update your age in profile",
		},
		{
			name:       "too young",
			profile:    DonorProfile{Availability: boolPtr(true), Age: intPtr(17)},
			wantOK:     false,
			wantReason: "Age must be between 18-65 years",
		},
		{
			name:       "too old",
			profile:    DonorProfile{Availability: boolPtr(true), Age: intPtr(66)},
			wantOK:     false,
			wantReason: "Age must be between 18-65 years",
		},
		{
			name: "inside cooldown",
			profile: DonorProfile{
				Availability:     boolPtr(true),
				Age:              intPtr(30),
				LastDonationDate: &recent,
			},
			wantOK:     false,
			wantReason: "Must wait 80 more days before next donation",
		},
		{
			name:       "eligible without prior donation",
			profile:    DonorProfile{Availability: boolPtr(true), Age: intPtr(18)},
			wantOK:     true,
			wantReason: "Eligible to donate",
		},
		{
			name:       "eligible at upper age bound",
			profile:    DonorProfile{Availability: boolPtr(true), Age: intPtr(65)},
			wantOK:     true,
			wantReason: "Eligible to donate",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ok, reason := c.profile.EligibleAt(today)
			assert.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.wantReason, reason)
		})
	}
}

func TestEligibleAt_CooldownBoundary(t *testing.T) {
	today := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	day89 := today.AddDate(0, 0, -89)
	day90 := today.AddDate(0, 0, -90)

	blocked := DonorProfile{Availability: boolPtr(true), Age: intPtr(30), LastDonationDate: &day89}
	ok, reason := blocked.EligibleAt(today)
	assert.False(t, ok)
	assert.Equal(t, "Must wait 1 more days before next donation", reason)

	allowed := DonorProfile{Availability: boolPtr(true), Age: intPtr(30), LastDonationDate: &day90}
	ok, reason = allowed.EligibleAt(today)
	assert.True(t, ok)
	assert.Equal(t, "Eligible to donate", reason)
}

func TestCooldownRemaining_IgnoresTimeOfDay(t *testing.T) {
	last := time.Date(2026, 5, 3, 23, 59, 0, 0, time.UTC)
	today := time.Date(2026, 8, 1, 0, 1, 0, 0, time.UTC)

	// 90 calendar days have passed regardless of the clock
	assert.Equal(t, 0, CooldownRemaining(last, today))
}

func TestCooldownRemaining_FullWindow(t *testing.T) {
	last := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, DonationCooldownDays, CooldownRemaining(last, last))
}

func TestIsAvailable_DefaultsToFalseWhenUnset(t *testing.T) {
	var p DonorProfile
	assert.False(t, p.IsAvailable())
}

func TestEligibilityReasonFormat(t *testing.T) {
	today := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for _, days := range []int{1, 45, 89} {
		last := today.AddDate(0, 0, days-DonationCooldownDays)
		p := DonorProfile{Availability: boolPtr(true), Age: intPtr(25), LastDonationDate: &last}
		_, reason := p.EligibleAt(today)
		assert.Equal(t, fmt.Sprintf("Must wait %d more days before next donation", days), reason)
	}
}
