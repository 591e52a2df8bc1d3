package entity

import "testing"

func TestScheduleStatusHelpers(t *testing.T) {
	cases := []struct {
		status    ScheduleStatus
		scheduled bool
		terminal  bool
	}{
		{ScheduleStatusScheduled, true, false},
		{ScheduleStatusCompleted, false, true},
		{ScheduleStatusCancelled, false, true},
	}

	for _, c := range cases {
		s := DonationSchedule{Status: c.status}
		if s.IsScheduled() != c.scheduled {
			t.Errorf("IsScheduled for %s = %v, want %v", c.status, s.IsScheduled(), c.scheduled)
		}
		if s.IsTerminal() != c.terminal {
			t.Errorf("IsTerminal for %s = %v, want %v", c.status, s.IsTerminal(), c.terminal)
		}
	}
}
