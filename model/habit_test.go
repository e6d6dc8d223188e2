package model

import "testing"

func TestWindowDays(t *testing.T) {
	tests := []struct {
		name  string
		habit Habit
		want  int
	}{
		{"daily", Habit{GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1}, 1},
		{"weekly", Habit{GoalPeriod: GoalPeriodWeek, GoalPeriodDays: 7}, 7},
		{"custom three days", Habit{GoalPeriod: GoalPeriodCustom, GoalPeriodDays: 3}, 3},
		{"daily overrides stale period days", Habit{GoalPeriod: GoalPeriodDay, GoalPeriodDays: 30}, 1},
		{"custom floor of one", Habit{GoalPeriod: GoalPeriodCustom, GoalPeriodDays: 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.habit.WindowDays(); got != tt.want {
				t.Errorf("WindowDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEnumValidators(t *testing.T) {
	if !ValidCategory(CategoryHealth) || ValidCategory("sports") {
		t.Error("category validation mismatch")
	}
	if !ValidGoalPeriod(GoalPeriodCustom) || ValidGoalPeriod("fortnight") {
		t.Error("goal period validation mismatch")
	}
	if !ValidTimePeriod(PeriodYear) || ValidTimePeriod("quarter") {
		t.Error("time period validation mismatch")
	}
}
