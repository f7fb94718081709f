package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow-backend/app/models"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func testHabit(name string, targetDays []string, start string, completed ...string) models.Habit {
	return models.Habit{
		ID:             uuid.New(),
		Name:           name,
		TargetDays:     targetDays,
		StartDate:      date(start),
		CompletedDates: completed,
	}
}

func TestIsScheduled(t *testing.T) {
	// 2025-01-01 is a Wednesday, 2025-01-06 a Monday.
	habit := testHabit("Read", []string{"Monday", "Wednesday", "Friday"}, "2025-01-01")
	now := date("2025-01-06")

	tests := []struct {
		name string
		day  string
		want bool
	}{
		{"scheduled weekday in window", "2025-01-03", true},
		{"unscheduled weekday", "2025-01-02", false},
		{"before start date", "2024-12-30", false},
		{"start date itself", "2025-01-01", true},
		{"today", "2025-01-06", true},
		{"future scheduled day", "2025-01-08", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsScheduled(habit, date(tt.day), now); got != tt.want {
				t.Errorf("IsScheduled(%s) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestIsScheduledEmptyTargetDays(t *testing.T) {
	habit := testHabit("Degenerate", nil, "2025-01-01")
	now := date("2025-01-06")
	for d := date("2025-01-01"); !d.After(now); d = d.AddDate(0, 0, 1) {
		if IsScheduled(habit, d, now) {
			t.Fatalf("habit with no target days reported %s as scheduled", d.Format(DateLayout))
		}
	}
}

func TestComputeStreaks(t *testing.T) {
	mwf := []string{"Monday", "Wednesday", "Friday"}

	tests := []struct {
		name        string
		habit       models.Habit
		now         string
		wantCurrent int
		wantHighest int
	}{
		{
			name:        "both scheduled days completed, today unmarked",
			habit:       testHabit("Read", mwf, "2025-01-01", "2025-01-01", "2025-01-03"),
			now:         "2025-01-06",
			wantCurrent: 2,
			wantHighest: 2,
		},
		{
			name:        "gap at most recent scheduled day breaks the streak",
			habit:       testHabit("Read", mwf, "2025-01-01", "2025-01-01"),
			now:         "2025-01-06",
			wantCurrent: 0,
			wantHighest: 1,
		},
		{
			name:        "today completed extends the streak",
			habit:       testHabit("Read", mwf, "2025-01-01", "2025-01-01", "2025-01-03", "2025-01-06"),
			now:         "2025-01-06",
			wantCurrent: 3,
			wantHighest: 3,
		},
		{
			name:        "unscheduled completions are ignored",
			habit:       testHabit("Read", mwf, "2025-01-01", "2025-01-02", "2025-01-04"),
			now:         "2025-01-06",
			wantCurrent: 0,
			wantHighest: 0,
		},
		{
			name:        "no completions",
			habit:       testHabit("Read", mwf, "2025-01-01"),
			now:         "2025-01-06",
			wantCurrent: 0,
			wantHighest: 0,
		},
		{
			name:        "empty target days",
			habit:       testHabit("Read", nil, "2025-01-01", "2025-01-01"),
			now:         "2025-01-06",
			wantCurrent: 0,
			wantHighest: 0,
		},
		{
			name: "highest streak survives a later break",
			// Mon Jan 6, Wed Jan 8, Fri Jan 10 completed, Mon Jan 13
			// missed, Wed Jan 15 completed.
			habit:       testHabit("Read", mwf, "2025-01-06", "2025-01-06", "2025-01-08", "2025-01-10", "2025-01-15"),
			now:         "2025-01-16",
			wantCurrent: 1,
			wantHighest: 3,
		},
		{
			name:        "completions before start date are ignored",
			habit:       testHabit("Read", mwf, "2025-01-06", "2025-01-03", "2025-01-06"),
			now:         "2025-01-06",
			wantCurrent: 1,
			wantHighest: 1,
		},
		{
			name:        "future completions are ignored",
			habit:       testHabit("Read", mwf, "2025-01-01", "2025-01-03", "2025-01-08"),
			now:         "2025-01-04",
			wantCurrent: 1,
			wantHighest: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, highest := ComputeStreaks(tt.habit, date(tt.now))
			if current != tt.wantCurrent || highest != tt.wantHighest {
				t.Errorf("ComputeStreaks() = (%d, %d), want (%d, %d)",
					current, highest, tt.wantCurrent, tt.wantHighest)
			}
			if highest < current {
				t.Errorf("highest streak %d below current %d", highest, current)
			}
		})
	}
}

func TestRateInRange(t *testing.T) {
	daily := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	tests := []struct {
		name          string
		habits        []models.Habit
		start, end    string
		now           string
		wantCompleted int
		wantPossible  int
		wantPercent   float64
		wantHasData   bool
	}{
		{
			name: "perfect week",
			habits: []models.Habit{
				testHabit("Water", daily, "2025-01-01",
					"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04",
					"2025-01-05", "2025-01-06", "2025-01-07"),
			},
			start: "2025-01-01", end: "2025-01-07", now: "2025-01-07",
			wantCompleted: 7, wantPossible: 7, wantPercent: 100, wantHasData: true,
		},
		{
			name: "weighted aggregate, not mean of per-habit rates",
			habits: []models.Habit{
				testHabit("Water", daily, "2025-01-01",
					"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04",
					"2025-01-05", "2025-01-06", "2025-01-07"),
				testHabit("Gym", []string{"Monday"}, "2025-01-01"),
			},
			start: "2025-01-01", end: "2025-01-07", now: "2025-01-07",
			wantCompleted: 7, wantPossible: 8, wantPercent: 87.5, wantHasData: true,
		},
		{
			name:   "no habits",
			habits: nil,
			start:  "2025-01-01", end: "2025-01-07", now: "2025-01-07",
			wantPercent: 0, wantHasData: false,
		},
		{
			name: "zero possible days is no data, not zero percent failure",
			habits: []models.Habit{
				testHabit("Gym", []string{"Monday"}, "2025-02-01"),
			},
			start: "2025-01-01", end: "2025-01-05", now: "2025-01-05",
			wantPercent: 0, wantHasData: false,
		},
		{
			name: "future days never count as possible",
			habits: []models.Habit{
				testHabit("Water", daily, "2025-01-01", "2025-01-01", "2025-01-02"),
			},
			start: "2025-01-01", end: "2025-01-31", now: "2025-01-04",
			wantCompleted: 2, wantPossible: 4, wantPercent: 50, wantHasData: true,
		},
		{
			name: "rounding to two decimals",
			habits: []models.Habit{
				testHabit("Water", daily, "2025-01-01", "2025-01-01"),
			},
			start: "2025-01-01", end: "2025-01-03", now: "2025-01-03",
			wantCompleted: 1, wantPossible: 3, wantPercent: 33.33, wantHasData: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RateInRange(tt.habits, date(tt.start), date(tt.end), date(tt.now))
			if got.Completed != tt.wantCompleted || got.Possible != tt.wantPossible {
				t.Errorf("counts = (%d/%d), want (%d/%d)",
					got.Completed, got.Possible, tt.wantCompleted, tt.wantPossible)
			}
			if got.Percent != tt.wantPercent {
				t.Errorf("Percent = %v, want %v", got.Percent, tt.wantPercent)
			}
			if got.HasData != tt.wantHasData {
				t.Errorf("HasData = %v, want %v", got.HasData, tt.wantHasData)
			}
			if got.Percent < 0 || got.Percent > 100 {
				t.Errorf("Percent %v outside [0, 100]", got.Percent)
			}
		})
	}
}

func TestWeekdayRatesAndBestDays(t *testing.T) {
	// Window 2025-01-06 (Mon) .. 2025-01-12 (Sun): one occurrence of each
	// weekday.
	now := date("2025-01-12")
	start, end := date("2025-01-06"), date("2025-01-12")

	t.Run("unique maximum", func(t *testing.T) {
		habits := []models.Habit{
			testHabit("Read", []string{"Monday", "Wednesday"}, "2025-01-01", "2025-01-06"),
		}
		rates := WeekdayRates(habits, start, end, now)
		if len(rates) != 7 {
			t.Fatalf("got %d weekday entries, want 7", len(rates))
		}
		best := BestDays(rates)
		if len(best) != 1 || best[0].Weekday != "Monday" || best[0].Rate != 100 {
			t.Errorf("BestDays = %+v, want [Monday 100]", best)
		}
	})

	t.Run("tie at the maximum reports all winners", func(t *testing.T) {
		habits := []models.Habit{
			testHabit("Read", []string{"Monday", "Wednesday", "Friday"}, "2025-01-01",
				"2025-01-06", "2025-01-08"),
		}
		best := BestDays(WeekdayRates(habits, start, end, now))
		if len(best) != 2 {
			t.Fatalf("BestDays = %+v, want two entries", best)
		}
		if best[0].Weekday != "Monday" || best[1].Weekday != "Wednesday" {
			t.Errorf("BestDays = %+v, want Monday and Wednesday", best)
		}
	})

	t.Run("all-zero rates yield no best days", func(t *testing.T) {
		habits := []models.Habit{
			testHabit("Read", []string{"Monday"}, "2025-01-01"),
		}
		if best := BestDays(WeekdayRates(habits, start, end, now)); len(best) != 0 {
			t.Errorf("BestDays = %+v, want empty", best)
		}
	})
}

func TestCompareHabits(t *testing.T) {
	daily := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	start, end, now := date("2025-01-01"), date("2025-01-07"), date("2025-01-07")

	t.Run("sorted descending, zero-possible excluded", func(t *testing.T) {
		habits := []models.Habit{
			testHabit("Half", daily, "2025-01-01", "2025-01-01", "2025-01-02", "2025-01-03"),
			testHabit("Full", daily, "2025-01-01",
				"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04",
				"2025-01-05", "2025-01-06", "2025-01-07"),
			testHabit("NotStarted", daily, "2025-06-01"),
		}
		got := CompareHabits(habits, start, end, now)
		want := []HabitComparison{
			{Name: "Full", Completion: 100},
			{Name: "Half", Completion: 42.86},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("CompareHabits = %+v, want %+v", got, want)
		}
	})

	t.Run("capped at ten entries", func(t *testing.T) {
		var habits []models.Habit
		for i := 0; i < 15; i++ {
			habits = append(habits, testHabit("h", daily, "2025-01-01", "2025-01-01"))
		}
		if got := CompareHabits(habits, start, end, now); len(got) != 10 {
			t.Errorf("got %d entries, want 10", len(got))
		}
	})
}

func TestToggleDate(t *testing.T) {
	dates := []string{"2025-01-01", "2025-01-03"}

	added, present := ToggleDate(dates, "2025-01-05")
	if !present || len(added) != 3 {
		t.Fatalf("ToggleDate add = (%v, %v)", added, present)
	}

	removed, present := ToggleDate(added, "2025-01-05")
	if present {
		t.Fatalf("second toggle still reports the date present")
	}
	if !reflect.DeepEqual(removed, dates) {
		t.Errorf("double toggle = %v, want original %v", removed, dates)
	}
	if !reflect.DeepEqual(dates, []string{"2025-01-01", "2025-01-03"}) {
		t.Errorf("input slice was mutated: %v", dates)
	}
}

func TestSummarize(t *testing.T) {
	t.Run("empty habit list", func(t *testing.T) {
		got := Summarize(nil, RangeWeek, date("2025-01-07"))
		if got.HasData || got.CompletionRate != 0 {
			t.Errorf("empty summary = rate %v hasData %v", got.CompletionRate, got.HasData)
		}
		if len(got.TrendSeries) != 7 {
			t.Fatalf("trend series length = %d, want 7", len(got.TrendSeries))
		}
		for i, v := range got.TrendSeries {
			if v != 0 {
				t.Errorf("trend[%d] = %v, want 0", i, v)
			}
		}
		if len(got.WeekdayRates) != 7 {
			t.Errorf("weekday rates length = %d, want 7", len(got.WeekdayRates))
		}
		if len(got.BestDays) != 0 {
			t.Errorf("best days = %+v, want empty", got.BestDays)
		}
	})

	t.Run("streaks per habit", func(t *testing.T) {
		h := testHabit("Read", []string{"Monday", "Wednesday", "Friday"}, "2025-01-01",
			"2025-01-01", "2025-01-03")
		got := Summarize([]models.Habit{h}, RangeWeek, date("2025-01-06"))
		s, ok := got.Streaks[h.ID]
		if !ok {
			t.Fatalf("no streak entry for habit %s", h.ID)
		}
		if s.Current != 2 || s.Highest != 2 {
			t.Errorf("streaks = %+v, want current 2 highest 2", s)
		}
	})

	t.Run("does not mutate the snapshot", func(t *testing.T) {
		h := testHabit("Read", []string{"Monday"}, "2025-01-01", "2025-01-06")
		before := models.Habit{
			Name:           h.Name,
			TargetDays:     append([]string(nil), h.TargetDays...),
			StartDate:      h.StartDate,
			CompletedDates: append([]string(nil), h.CompletedDates...),
		}
		Summarize([]models.Habit{h}, RangeMonth, date("2025-01-10"))
		if !reflect.DeepEqual(h.TargetDays, before.TargetDays) ||
			!reflect.DeepEqual(h.CompletedDates, before.CompletedDates) {
			t.Errorf("engine mutated its input habit")
		}
	})
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeRange
		wantErr bool
	}{
		{"week", RangeWeek, false},
		{"month", RangeMonth, false},
		{"quarter", RangeQuarter, false},
		{"year", RangeYear, false},
		{"all", RangeAll, false},
		{"", RangeWeek, false},
		{"fortnight", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTimeRange(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimeRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeRange(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
