package usecase

import (
	"testing"
	"time"

	"main/model"
	"main/utils"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func dailyHabit(id string, goal float64) *model.Habit {
	return &model.Habit{
		HabitID:        id,
		UserID:         "user-1",
		Name:           "Water",
		Unit:           "L",
		Category:       model.CategoryHealth,
		GoalAmount:     goal,
		GoalPeriod:     model.GoalPeriodDay,
		GoalPeriodDays: 1,
		IsActive:       true,
	}
}

func weeklyHabit(id string, goal float64) *model.Habit {
	return &model.Habit{
		HabitID:        id,
		UserID:         "user-1",
		Name:           "Running",
		Unit:           "km",
		Category:       model.CategoryHealth,
		GoalAmount:     goal,
		GoalPeriod:     model.GoalPeriodWeek,
		GoalPeriodDays: 7,
		IsActive:       true,
	}
}

func logFor(habitID, date string, amount float64) *model.HabitLog {
	return &model.HabitLog{
		LogID:   habitID + "-" + date,
		UserID:  "user-1",
		HabitID: habitID,
		Amount:  amount,
		Date:    date,
	}
}

func TestCalculateHabitProgress(t *testing.T) {
	habit := dailyHabit("water", 2)

	t.Run("partial progress", func(t *testing.T) {
		logs := []*model.HabitLog{
			logFor("water", "2024-06-15", 1.0),
			logFor("water", "2024-06-15", 0.5),
		}
		p := CalculateHabitProgress(habit, logs, "2024-06-15")
		if p.Progress != 1.5 {
			t.Errorf("expected progress 1.5, got %v", p.Progress)
		}
		if p.Percentage != 75 {
			t.Errorf("expected percentage 75, got %d", p.Percentage)
		}
		if p.IsCompleted {
			t.Error("expected not completed at 1.5 of 2")
		}
	})

	t.Run("completion on additional log", func(t *testing.T) {
		logs := []*model.HabitLog{
			logFor("water", "2024-06-15", 1.5),
			logFor("water", "2024-06-15", 0.5),
		}
		p := CalculateHabitProgress(habit, logs, "2024-06-15")
		if p.Percentage != 100 {
			t.Errorf("expected percentage 100, got %d", p.Percentage)
		}
		if !p.IsCompleted {
			t.Error("expected completed at 2 of 2")
		}
	})

	t.Run("percentage capped at 100", func(t *testing.T) {
		logs := []*model.HabitLog{logFor("water", "2024-06-15", 5)}
		p := CalculateHabitProgress(habit, logs, "2024-06-15")
		if p.Percentage != 100 {
			t.Errorf("expected capped percentage 100, got %d", p.Percentage)
		}
		if !p.IsCompleted {
			t.Error("expected completed when over target")
		}
	})

	t.Run("other habits and off-window dates ignored", func(t *testing.T) {
		logs := []*model.HabitLog{
			logFor("other", "2024-06-15", 10),
			logFor("water", "2024-06-14", 10),
		}
		p := CalculateHabitProgress(habit, logs, "2024-06-15")
		if p.Progress != 0 {
			t.Errorf("expected progress 0, got %v", p.Progress)
		}
	})

	t.Run("weekly window includes seventh day back but not eighth", func(t *testing.T) {
		weekly := weeklyHabit("run", 10)
		logs := []*model.HabitLog{
			logFor("run", "2024-01-01", 4),
			logFor("run", "2023-12-31", 100),
		}
		p := CalculateHabitProgress(weekly, logs, "2024-01-07")
		if p.Progress != 4 {
			t.Errorf("expected only 2024-01-01 in window, progress 4, got %v", p.Progress)
		}
	})

	t.Run("non-positive target degrades", func(t *testing.T) {
		broken := dailyHabit("broken", 0)
		logs := []*model.HabitLog{logFor("broken", "2024-06-15", 3)}
		p := CalculateHabitProgress(broken, logs, "2024-06-15")
		if p.Percentage != 0 || p.IsCompleted {
			t.Errorf("expected degraded result, got pct=%d completed=%v", p.Percentage, p.IsCompleted)
		}
		if p.Progress != 3 {
			t.Errorf("expected raw progress preserved, got %v", p.Progress)
		}
	})

	t.Run("adding a log never decreases progress", func(t *testing.T) {
		logs := []*model.HabitLog{logFor("water", "2024-06-15", 0.5)}
		before := CalculateHabitProgress(habit, logs, "2024-06-15")
		logs = append(logs, logFor("water", "2024-06-15", 0.25))
		after := CalculateHabitProgress(habit, logs, "2024-06-15")
		if after.Progress < before.Progress || after.Percentage < before.Percentage {
			t.Errorf("progress regressed: %v -> %v", before, after)
		}
	})

	t.Run("deterministic over repeated calls", func(t *testing.T) {
		logs := []*model.HabitLog{
			logFor("water", "2024-06-15", 1),
			logFor("water", "2024-06-14", 2),
		}
		first := CalculateHabitProgress(habit, logs, "2024-06-15")
		second := CalculateHabitProgress(habit, logs, "2024-06-15")
		if first != second {
			t.Errorf("results differ: %v vs %v", first, second)
		}
	})
}

func TestCalculateStreaks(t *testing.T) {
	habit := dailyHabit("water", 2)

	t.Run("no logs means no streak", func(t *testing.T) {
		cur, longest := CalculateStreaks(habit, nil, testNow)
		if cur != 0 || longest != 0 {
			t.Errorf("expected 0/0, got %d/%d", cur, longest)
		}
	})

	t.Run("run ending today", func(t *testing.T) {
		var logs []*model.HabitLog
		for i := 0; i < 5; i++ {
			logs = append(logs, logFor("water", utils.DaysAgo(testNow, i), 2))
		}
		cur, longest := CalculateStreaks(habit, logs, testNow)
		if cur != 5 {
			t.Errorf("expected current streak 5, got %d", cur)
		}
		if longest != 5 {
			t.Errorf("expected longest streak 5, got %d", longest)
		}
	})

	t.Run("incomplete today does not break the streak", func(t *testing.T) {
		logs := []*model.HabitLog{logFor("water", utils.Today(testNow), 1)}
		for i := 1; i < 4; i++ {
			logs = append(logs, logFor("water", utils.DaysAgo(testNow, i), 2))
		}
		cur, _ := CalculateStreaks(habit, logs, testNow)
		if cur != 3 {
			t.Errorf("expected current streak 3 with today pending, got %d", cur)
		}
	})

	t.Run("gap before yesterday resets the current streak", func(t *testing.T) {
		logs := []*model.HabitLog{
			logFor("water", utils.DaysAgo(testNow, 2), 2),
			logFor("water", utils.DaysAgo(testNow, 3), 2),
		}
		cur, longest := CalculateStreaks(habit, logs, testNow)
		if cur != 0 {
			t.Errorf("expected current streak 0, got %d", cur)
		}
		if longest != 2 {
			t.Errorf("expected longest streak 2, got %d", longest)
		}
	})

	t.Run("longest streak found behind a gap", func(t *testing.T) {
		var logs []*model.HabitLog
		logs = append(logs, logFor("water", utils.Today(testNow), 2))
		for i := 5; i < 12; i++ {
			logs = append(logs, logFor("water", utils.DaysAgo(testNow, i), 2))
		}
		cur, longest := CalculateStreaks(habit, logs, testNow)
		if cur != 1 {
			t.Errorf("expected current streak 1, got %d", cur)
		}
		if longest != 7 {
			t.Errorf("expected longest streak 7, got %d", longest)
		}
	})

	t.Run("weekly habit completes six days after the last log", func(t *testing.T) {
		weekly := weeklyHabit("run", 10)
		logs := []*model.HabitLog{logFor("run", utils.DaysAgo(testNow, 6), 10)}
		p := CalculateHabitProgress(weekly, logs, utils.Today(testNow))
		if !p.IsCompleted {
			t.Error("expected seven-day window to still cover the log")
		}
		old := []*model.HabitLog{logFor("run", utils.DaysAgo(testNow, 7), 10)}
		p = CalculateHabitProgress(weekly, old, utils.Today(testNow))
		if p.IsCompleted {
			t.Error("expected log to fall out of the window after seven days")
		}
	})
}

func TestCalculateHabitStats(t *testing.T) {
	habit := dailyHabit("water", 2)

	t.Run("week period totals and success rate", func(t *testing.T) {
		// testNow 2024-06-15 is a Saturday; the week runs 2024-06-10..15.
		logs := []*model.HabitLog{
			logFor("water", "2024-06-10", 2),
			logFor("water", "2024-06-11", 2),
			logFor("water", "2024-06-12", 1),
		}
		stats := CalculateHabitStats(habit, logs, model.PeriodWeek, testNow)
		if stats.TotalAmount != 5 {
			t.Errorf("expected total 5, got %v", stats.TotalAmount)
		}
		if stats.TotalCompleted != 2 {
			t.Errorf("expected 2 completed days, got %d", stats.TotalCompleted)
		}
		// 2 successful days of 6 elapsed week days = 33%.
		if stats.SuccessRate != 33 {
			t.Errorf("expected success rate 33, got %d", stats.SuccessRate)
		}
	})

	t.Run("empty previous period reads as full growth", func(t *testing.T) {
		logs := []*model.HabitLog{logFor("water", "2024-06-15", 2)}
		stats := CalculateHabitStats(habit, logs, model.PeriodDay, testNow)
		if stats.Comparison.VsLastPeriod != 100 {
			t.Errorf("expected 100 with empty previous period, got %d", stats.Comparison.VsLastPeriod)
		}
		if stats.Comparison.Direction != model.DirectionUp {
			t.Errorf("expected direction up, got %s", stats.Comparison.Direction)
		}
	})

	t.Run("no activity at all compares flat", func(t *testing.T) {
		stats := CalculateHabitStats(habit, nil, model.PeriodDay, testNow)
		if stats.Comparison.VsLastPeriod != 0 {
			t.Errorf("expected 0, got %d", stats.Comparison.VsLastPeriod)
		}
		if stats.Comparison.Direction != model.DirectionSame {
			t.Errorf("expected direction same, got %s", stats.Comparison.Direction)
		}
	})

	t.Run("decline versus previous day", func(t *testing.T) {
		logs := []*model.HabitLog{
			logFor("water", "2024-06-14", 2),
			logFor("water", "2024-06-15", 1),
		}
		stats := CalculateHabitStats(habit, logs, model.PeriodDay, testNow)
		if stats.Comparison.VsLastPeriod != -50 {
			t.Errorf("expected -50, got %d", stats.Comparison.VsLastPeriod)
		}
		if stats.Comparison.Direction != model.DirectionDown {
			t.Errorf("expected direction down, got %s", stats.Comparison.Direction)
		}
	})
}

func TestCalculateOverallStats(t *testing.T) {
	t.Run("no active habits yields zeroed result", func(t *testing.T) {
		inactive := dailyHabit("water", 2)
		inactive.IsActive = false
		stats := CalculateOverallStats([]*model.Habit{inactive}, nil, model.PeriodWeek, testNow)
		if stats.SuccessRate != 0 || stats.ActiveHabits != 0 || stats.TotalHabitsCompleted != 0 {
			t.Errorf("expected zeroed stats, got %+v", stats)
		}
		if stats.Comparison.Direction != model.DirectionSame {
			t.Errorf("expected direction same, got %s", stats.Comparison.Direction)
		}
	})

	t.Run("streaks take the max across habits", func(t *testing.T) {
		a := dailyHabit("a", 1)
		b := dailyHabit("b", 1)
		var logs []*model.HabitLog
		for i := 0; i < 3; i++ {
			logs = append(logs, logFor("a", utils.DaysAgo(testNow, i), 1))
		}
		logs = append(logs, logFor("b", utils.Today(testNow), 1))
		stats := CalculateOverallStats([]*model.Habit{a, b}, logs, model.PeriodWeek, testNow)
		if stats.CurrentStreak != 3 {
			t.Errorf("expected max current streak 3, got %d", stats.CurrentStreak)
		}
		if stats.ActiveHabits != 2 {
			t.Errorf("expected 2 active habits, got %d", stats.ActiveHabits)
		}
	})

	t.Run("success rate is the mean of habit rates", func(t *testing.T) {
		a := dailyHabit("a", 1)
		b := dailyHabit("b", 1)
		var logs []*model.HabitLog
		// a succeeds every elapsed day of the week (10th..15th), b never.
		for _, d := range []string{"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13", "2024-06-14", "2024-06-15"} {
			logs = append(logs, logFor("a", d, 1))
		}
		stats := CalculateOverallStats([]*model.Habit{a, b}, logs, model.PeriodWeek, testNow)
		if stats.SuccessRate != 50 {
			t.Errorf("expected mean success rate 50, got %d", stats.SuccessRate)
		}
	})
}

func TestCalculateDailyProgress(t *testing.T) {
	a := dailyHabit("a", 2)
	b := dailyHabit("b", 1)
	inactive := dailyHabit("c", 1)
	inactive.IsActive = false
	habits := []*model.Habit{a, b, inactive}

	logs := []*model.HabitLog{
		logFor("a", "2024-06-15", 2),
		logFor("c", "2024-06-15", 5),
	}

	dp := CalculateDailyProgress(habits, logs, "2024-06-15")
	if dp.TotalHabits != 2 {
		t.Errorf("expected 2 active habits counted, got %d", dp.TotalHabits)
	}
	if dp.CompletedHabits != 1 {
		t.Errorf("expected 1 completed, got %d", dp.CompletedHabits)
	}
	if dp.Percentage != 50 {
		t.Errorf("expected 50%%, got %d", dp.Percentage)
	}
	if len(dp.Habits) != 2 {
		t.Errorf("expected 2 habit entries, got %d", len(dp.Habits))
	}
}

func TestCalculateHeatmap(t *testing.T) {
	habit := dailyHabit("water", 2)
	logs := []*model.HabitLog{
		logFor("water", utils.Today(testNow), 2),
		logFor("water", utils.DaysAgo(testNow, 1), 1),
	}

	cells := CalculateHeatmap([]*model.Habit{habit}, logs, 7, testNow)
	if len(cells) != 7 {
		t.Fatalf("expected 7 cells, got %d", len(cells))
	}
	for i := 1; i < len(cells); i++ {
		if cells[i-1].Date >= cells[i].Date {
			t.Errorf("dates not ascending at %d: %s >= %s", i, cells[i-1].Date, cells[i].Date)
		}
	}
	if cells[len(cells)-1].Date != utils.Today(testNow) {
		t.Errorf("expected last cell to be today, got %s", cells[len(cells)-1].Date)
	}
	if cells[len(cells)-1].Level != 4 {
		t.Errorf("expected level 4 on the fully completed day, got %d", cells[len(cells)-1].Level)
	}
	// 1 of 2 litres logged yesterday: 0 habits completed, level 0.
	if cells[len(cells)-2].Level != 0 {
		t.Errorf("expected level 0 yesterday, got %d", cells[len(cells)-2].Level)
	}
	if cells[0].Level != 0 {
		t.Errorf("expected empty day at level 0, got %d", cells[0].Level)
	}
}

func TestHeatmapLevels(t *testing.T) {
	// Four daily habits give 0/25/50/75/100 aggregate steps.
	habits := []*model.Habit{
		dailyHabit("a", 1), dailyHabit("b", 1), dailyHabit("c", 1), dailyHabit("d", 1),
	}
	today := utils.Today(testNow)

	cases := []struct {
		name      string
		completed []string
		level     int
	}{
		{"none", nil, 0},
		{"one of four", []string{"a"}, 2},
		{"two of four", []string{"a", "b"}, 3},
		{"three of four", []string{"a", "b", "c"}, 3},
		{"all four", []string{"a", "b", "c", "d"}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var logs []*model.HabitLog
			for _, id := range tc.completed {
				logs = append(logs, logFor(id, today, 1))
			}
			cells := CalculateHeatmap(habits, logs, 1, testNow)
			if cells[0].Level != tc.level {
				t.Errorf("expected level %d, got %d", tc.level, cells[0].Level)
			}
		})
	}
}

func TestPercentChange(t *testing.T) {
	cases := []struct {
		current, previous float64
		want              int
	}{
		{150, 100, 50},
		{50, 100, -50},
		{100, 100, 0},
		{10, 0, 100},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := percentChange(tc.current, tc.previous); got != tc.want {
			t.Errorf("percentChange(%v, %v) = %d, want %d", tc.current, tc.previous, got, tc.want)
		}
	}
}
