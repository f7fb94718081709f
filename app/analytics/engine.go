// Package analytics derives streaks, completion rates, weekday rankings and
// trend series from habit completion history. Every function is pure: habits
// are read-only snapshots and "now" is always an explicit parameter, so the
// same inputs always produce the same numbers regardless of where the engine
// is called from.
package analytics

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow-backend/app/models"
)

// DateLayout is the calendar-date format used for completion entries.
const DateLayout = "2006-01-02"

type TimeRange string

const (
	RangeWeek    TimeRange = "week"
	RangeMonth   TimeRange = "month"
	RangeQuarter TimeRange = "quarter"
	RangeYear    TimeRange = "year"
	RangeAll     TimeRange = "all"
)

// Weekdays lists weekday names in reporting order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var ErrInvalidRange = errors.New("invalid time range")

func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case RangeWeek, RangeMonth, RangeQuarter, RangeYear, RangeAll:
		return TimeRange(s), nil
	case "":
		return RangeWeek, nil
	}
	return "", ErrInvalidRange
}

// Rate is an aggregate completion rate over a window. Percent is 0 when
// Possible is 0; HasData distinguishes that from a genuine 0% rate.
type Rate struct {
	Completed int     `json:"completed"`
	Possible  int     `json:"possible"`
	Percent   float64 `json:"percent"`
	HasData   bool    `json:"has_data"`
}

type WeekdayRate struct {
	Weekday string  `json:"weekday"`
	Rate    float64 `json:"rate"`
}

type HabitComparison struct {
	Name       string  `json:"name"`
	Completion float64 `json:"completion"`
}

type Streak struct {
	Current int `json:"current"`
	Highest int `json:"highest"`
}

// Summary is the single output contract consumed by every presentation
// surface (dashboard, habit card, analytics, reports).
type Summary struct {
	CompletionRate  float64              `json:"completion_rate"`
	HasData         bool                 `json:"has_data"`
	TrendSeries     []float64            `json:"trend_series"`
	WeekdayRates    []WeekdayRate        `json:"weekday_rates"`
	BestDays        []WeekdayRate        `json:"best_days"`
	HabitComparison []HabitComparison    `json:"habit_comparison"`
	Streaks         map[uuid.UUID]Streak `json:"streaks"`
}

// dateOnly strips the time component, keeping year/month/day in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func targetSet(h models.Habit) map[string]struct{} {
	set := make(map[string]struct{}, len(h.TargetDays))
	for _, d := range h.TargetDays {
		set[d] = struct{}{}
	}
	return set
}

func completionSet(h models.Habit) map[string]struct{} {
	set := make(map[string]struct{}, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		set[d] = struct{}{}
	}
	return set
}

// ToggleDate flips a calendar date's membership in a completion list and
// reports whether the date is now present. The input slice is not modified.
func ToggleDate(dates []string, date string) ([]string, bool) {
	out := make([]string, 0, len(dates)+1)
	found := false
	for _, d := range dates {
		if d == date {
			found = true
			continue
		}
		out = append(out, d)
	}
	if found {
		return out, false
	}
	return append(out, date), true
}

// IsScheduled reports whether day counts for the habit: its weekday name is in
// TargetDays and it falls within [StartDate, now]. Future days never count.
// A habit with no target days has no scheduled days at all.
func IsScheduled(h models.Habit, day, now time.Time) bool {
	if len(h.TargetDays) == 0 {
		return false
	}
	d := dateOnly(day)
	if d.After(dateOnly(now)) {
		return false
	}
	if !h.StartDate.IsZero() && d.Before(dateOnly(h.StartDate)) {
		return false
	}
	_, ok := targetSet(h)[d.Weekday().String()]
	return ok
}

// scanStart picks the first day worth scanning for a habit: StartDate when
// set, otherwise the earliest recorded completion.
func scanStart(h models.Habit, now time.Time) (time.Time, bool) {
	if !h.StartDate.IsZero() {
		return dateOnly(h.StartDate), true
	}
	var earliest time.Time
	for _, ds := range h.CompletedDates {
		d, err := time.Parse(DateLayout, ds)
		if err != nil {
			continue
		}
		if earliest.IsZero() || d.Before(earliest) {
			earliest = d
		}
	}
	if earliest.IsZero() {
		return time.Time{}, false
	}
	return dateOnly(earliest), true
}

// ComputeStreaks returns the habit's current and highest streaks as of now.
//
// Current: walk scheduled days backward from today, counting completed ones
// and stopping at the first scheduled day without a completion. Unscheduled
// days are skipped. Today itself, when scheduled but not yet marked, is
// excluded from the scan rather than breaking it.
//
// Highest: longest run of consecutive completed scheduled days over the whole
// history, same skip rule.
func ComputeStreaks(h models.Habit, now time.Time) (current, highest int) {
	start, ok := scanStart(h, now)
	if !ok || len(h.TargetDays) == 0 {
		return 0, 0
	}
	today := dateOnly(now)
	if start.After(today) {
		return 0, 0
	}

	targets := targetSet(h)
	completed := completionSet(h)

	scheduled := func(d time.Time) bool {
		_, ok := targets[d.Weekday().String()]
		return ok
	}
	done := func(d time.Time) bool {
		_, ok := completed[d.Format(DateLayout)]
		return ok
	}

	for d := today; !d.Before(start); d = d.AddDate(0, 0, -1) {
		if !scheduled(d) {
			continue
		}
		if done(d) {
			current++
			continue
		}
		if d.Equal(today) {
			continue
		}
		break
	}

	run := 0
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		if !scheduled(d) {
			continue
		}
		if done(d) {
			run++
			if run > highest {
				highest = run
			}
			continue
		}
		if !d.Equal(today) {
			run = 0
		}
	}
	if current > highest {
		highest = current
	}
	return current, highest
}

// RateInRange aggregates completions across habits over [start, end],
// weighted by opportunity count: sum(completed) / sum(possible), never a mean
// of per-habit percentages.
func RateInRange(habits []models.Habit, start, end, now time.Time) Rate {
	var r Rate
	from := dateOnly(start)
	to := dateOnly(end)
	if to.After(dateOnly(now)) {
		to = dateOnly(now)
	}
	if from.After(to) {
		return r
	}

	for _, h := range habits {
		targets := targetSet(h)
		if len(targets) == 0 {
			continue
		}
		completed := completionSet(h)
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if !IsScheduled(h, d, now) {
				continue
			}
			r.Possible++
			if _, ok := completed[d.Format(DateLayout)]; ok {
				r.Completed++
			}
		}
	}

	if r.Possible > 0 {
		r.Percent = round2(float64(r.Completed) / float64(r.Possible) * 100)
		r.HasData = true
	}
	return r
}

// WeekdayRates computes the aggregate completion rate for each weekday over
// [start, end], across all habits. All seven entries are always present.
func WeekdayRates(habits []models.Habit, start, end, now time.Time) []WeekdayRate {
	possible := make(map[string]int, 7)
	completed := make(map[string]int, 7)

	from := dateOnly(start)
	to := dateOnly(end)
	if to.After(dateOnly(now)) {
		to = dateOnly(now)
	}

	for _, h := range habits {
		set := completionSet(h)
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if !IsScheduled(h, d, now) {
				continue
			}
			name := d.Weekday().String()
			possible[name]++
			if _, ok := set[d.Format(DateLayout)]; ok {
				completed[name]++
			}
		}
	}

	rates := make([]WeekdayRate, 0, len(Weekdays))
	for _, day := range Weekdays {
		var pct float64
		if possible[day] > 0 {
			pct = round2(float64(completed[day]) / float64(possible[day]) * 100)
		}
		rates = append(rates, WeekdayRate{Weekday: day, Rate: pct})
	}
	return rates
}

// BestDays returns the weekdays tied at the maximum rate. A maximum of zero
// means no data, not a seven-way tie, so the result is empty.
func BestDays(rates []WeekdayRate) []WeekdayRate {
	var max float64
	for _, r := range rates {
		if r.Rate > max {
			max = r.Rate
		}
	}
	if max == 0 {
		return nil
	}
	var best []WeekdayRate
	for _, r := range rates {
		if r.Rate == max {
			best = append(best, r)
		}
	}
	return best
}

// maxComparisonEntries caps the habit comparison list for chart rendering.
const maxComparisonEntries = 10

// CompareHabits ranks habits by completion rate over [start, end], descending.
// Habits with no scheduled days in the window are excluded.
func CompareHabits(habits []models.Habit, start, end, now time.Time) []HabitComparison {
	var out []HabitComparison
	for _, h := range habits {
		r := RateInRange([]models.Habit{h}, start, end, now)
		if r.Possible == 0 {
			continue
		}
		out = append(out, HabitComparison{Name: h.Name, Completion: r.Percent})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completion != out[j].Completion {
			return out[i].Completion > out[j].Completion
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > maxComparisonEntries {
		out = out[:maxComparisonEntries]
	}
	return out
}

// RangeBounds resolves a time range to a concrete [start, end] window ending
// today. For RangeAll the window opens at the earliest habit start date.
func RangeBounds(habits []models.Habit, r TimeRange, now time.Time) (time.Time, time.Time) {
	end := dateOnly(now)
	switch r {
	case RangeWeek:
		return end.AddDate(0, 0, -6), end
	case RangeMonth:
		return end.AddDate(0, 0, -29), end
	case RangeQuarter:
		return end.AddDate(0, 0, -89), end
	case RangeYear:
		return end.AddDate(0, 0, -364), end
	}

	start := end
	for _, h := range habits {
		if s, ok := scanStart(h, now); ok && s.Before(start) {
			start = s
		}
	}
	return start, end
}

// Summarize runs the full engine for a habit snapshot and time range. It is
// the one computation behind every analytics surface, so their numbers always
// reconcile.
func Summarize(habits []models.Habit, r TimeRange, now time.Time) Summary {
	start, end := RangeBounds(habits, r, now)

	rate := RateInRange(habits, start, end, now)
	weekdayRates := WeekdayRates(habits, start, end, now)

	streaks := make(map[uuid.UUID]Streak, len(habits))
	for _, h := range habits {
		cur, high := ComputeStreaks(h, now)
		streaks[h.ID] = Streak{Current: cur, Highest: high}
	}

	return Summary{
		CompletionRate:  rate.Percent,
		HasData:         rate.HasData,
		TrendSeries:     TrendSeries(habits, r, now),
		WeekdayRates:    weekdayRates,
		BestDays:        BestDays(weekdayRates),
		HabitComparison: CompareHabits(habits, start, end, now),
		Streaks:         streaks,
	}
}
