package utils

import (
	"errors"
	"log"
	"sync"
	"time"
)

// ReminderScheduler fires a daily "log your habits" push to every connected
// websocket user. It owns at most one pending timer at a time; Start replaces
// any previously scheduled reminder and Stop cancels it. Construct it with
// NewReminderScheduler and inject it where it is needed, there is no package
// singleton.
type ReminderScheduler struct {
	mu       sync.Mutex
	timer    *time.Timer
	gen      uint64
	notifier *Notifier
	now      func() time.Time
}

func NewReminderScheduler(notifier *Notifier) *ReminderScheduler {
	return &ReminderScheduler{
		notifier: notifier,
		now:      time.Now,
	}
}

// nextFireAfter returns the first instant at hhmm (local "15:04") strictly
// after now.
func nextFireAfter(hhmm string, now time.Time) (time.Time, error) {
	at, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, errors.New("invalid reminder time, use HH:MM")
	}
	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next, nil
}

// Start schedules the daily reminder at hhmm, replacing any pending one.
func (s *ReminderScheduler) Start(hhmm string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := nextFireAfter(hhmm, s.now())
	if err != nil {
		return err
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(next.Sub(s.now()), func() {
		s.fire(hhmm, gen)
	})
	log.Printf("event=reminder_scheduled at=%s next_fire=%s", hhmm, next.Format(time.RFC3339))
	return nil
}

// Stop cancels the pending reminder, if any.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	log.Printf("event=reminder_stopped")
}

// Active reports whether a reminder is currently scheduled.
func (s *ReminderScheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

func (s *ReminderScheduler) fire(hhmm string, gen uint64) {
	payload := map[string]interface{}{
		"event": "daily_reminder",
		"title": "Don't forget to log your habits!",
		"body":  "Take a moment to update your habit progress for today.",
	}
	for _, userID := range s.notifier.ActiveUserIDs() {
		if err := s.notifier.Send(userID, payload); err != nil {
			log.Printf("event=reminder_send_failed user=%s error=%v", userID.String(), err)
		}
	}

	// Re-arm for the next day only if this chain is still the scheduled one.
	// Start and Stop bump gen, so a callback from a replaced or cancelled
	// timer must not overwrite the current schedule.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil || gen != s.gen {
		return
	}
	next, err := nextFireAfter(hhmm, s.now())
	if err != nil {
		return
	}
	s.timer = time.AfterFunc(next.Sub(s.now()), func() {
		s.fire(hhmm, gen)
	})
}
