package utils

import (
	"testing"
	"time"
)

func TestNextFireAfter(t *testing.T) {
	base := time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		hhmm    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "later today",
			hhmm: "09:00",
			want: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "already passed rolls to tomorrow",
			hhmm: "08:00",
			want: time.Date(2025, time.March, 11, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "exact current minute rolls to tomorrow",
			hhmm: "08:30",
			want: time.Date(2025, time.March, 11, 8, 30, 0, 0, time.UTC),
		},
		{
			name:    "garbage input",
			hhmm:    "morning",
			wantErr: true,
		},
		{
			name:    "out of range",
			hhmm:    "25:99",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextFireAfter(tt.hhmm, base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("nextFireAfter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("nextFireAfter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReminderSchedulerStartStop(t *testing.T) {
	s := NewReminderScheduler(NewNotifier())
	s.now = func() time.Time {
		return time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)
	}

	if s.Active() {
		t.Fatal("new scheduler reports an active timer")
	}

	if err := s.Start("09:00"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !s.Active() {
		t.Fatal("no active timer after Start")
	}

	// Starting again replaces the pending timer rather than stacking one.
	if err := s.Start("10:00"); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}
	if !s.Active() {
		t.Fatal("no active timer after restart")
	}

	s.Stop()
	if s.Active() {
		t.Fatal("timer still active after Stop")
	}

	// Stop when idle is a no-op.
	s.Stop()
}

func TestReminderSchedulerStaleFireDoesNotRearm(t *testing.T) {
	s := NewReminderScheduler(NewNotifier())
	s.now = func() time.Time {
		return time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)
	}

	// Arm at 09:00, then replace the schedule with 21:00. The 09:00 chain's
	// callback may still run after the replacement; it must not re-arm over
	// the 21:00 timer or two chains would stay live.
	if err := s.Start("09:00"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s.mu.Lock()
	staleGen := s.gen
	s.mu.Unlock()

	if err := s.Start("21:00"); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}
	s.mu.Lock()
	tracked := s.timer
	s.mu.Unlock()

	s.fire("09:00", staleGen)

	s.mu.Lock()
	after := s.timer
	s.mu.Unlock()
	if after != tracked {
		t.Fatal("callback from a replaced timer re-armed over the current schedule")
	}
	s.Stop()
}

func TestReminderSchedulerFireAfterStopDoesNotRearm(t *testing.T) {
	s := NewReminderScheduler(NewNotifier())
	s.now = func() time.Time {
		return time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)
	}

	if err := s.Start("09:00"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	s.Stop()
	s.fire("09:00", gen)

	if s.Active() {
		t.Fatal("callback from a cancelled timer re-armed after Stop")
	}
}

func TestReminderSchedulerRejectsBadTime(t *testing.T) {
	s := NewReminderScheduler(NewNotifier())
	if err := s.Start("not-a-time"); err == nil {
		t.Fatal("Start accepted an invalid time")
	}
	if s.Active() {
		t.Fatal("invalid Start armed a timer")
	}
}
