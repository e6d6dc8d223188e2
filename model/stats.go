package model

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionSame Direction = "same"
)

// Progress is a snapshot of a habit's rolling-window progress for one
// reference date. Percentage is capped at 100 for display; IsCompleted is
// derived from the uncapped ratio.
type Progress struct {
	Progress    float64 `json:"progress"`
	Target      float64 `json:"target"`
	Percentage  int     `json:"percentage"`
	IsCompleted bool    `json:"is_completed"`
}

// HabitWithProgress is a habit decorated with its current progress and
// today's log entries, the shape the habit list endpoint serves.
type HabitWithProgress struct {
	Habit
	Progress    float64     `json:"progress"`
	Target      float64     `json:"target"`
	Percentage  int         `json:"percentage"`
	IsCompleted bool        `json:"is_completed"`
	TodayLogs   []*HabitLog `json:"today_logs"`
}

type PeriodComparison struct {
	VsLastPeriod int       `json:"vs_last_period"`
	Direction    Direction `json:"direction"`
}

type HabitStats struct {
	HabitID        string           `json:"habit_id"`
	SuccessRate    int              `json:"success_rate"`
	CurrentStreak  int              `json:"current_streak"`
	LongestStreak  int              `json:"longest_streak"`
	TotalCompleted int              `json:"total_completed"`
	TotalAmount    float64          `json:"total_amount"`
	AveragePerDay  float64          `json:"average_per_day"`
	Comparison     PeriodComparison `json:"comparison"`
}

type OverallComparison struct {
	VsLastWeek  int       `json:"vs_last_week"`
	VsLastMonth int       `json:"vs_last_month"`
	Direction   Direction `json:"direction"`
}

type OverallStats struct {
	SuccessRate          int               `json:"success_rate"`
	CurrentStreak        int               `json:"current_streak"`
	LongestStreak        int               `json:"longest_streak"`
	TotalHabitsCompleted int               `json:"total_habits_completed"`
	ActiveHabits         int               `json:"active_habits"`
	Comparison           OverallComparison `json:"comparison"`
}

type HabitDayProgress struct {
	HabitID     string  `json:"habit_id"`
	Name        string  `json:"name"`
	Progress    float64 `json:"progress"`
	Target      float64 `json:"target"`
	IsCompleted bool    `json:"is_completed"`
}

type DailyProgress struct {
	Date            string              `json:"date"`
	TotalHabits     int                 `json:"total_habits"`
	CompletedHabits int                 `json:"completed_habits"`
	Percentage      int                 `json:"percentage"`
	Habits          []*HabitDayProgress `json:"habits"`
}

// HeatmapCell buckets one day's aggregate completion percentage into a 0-4
// intensity level.
type HeatmapCell struct {
	Date  string `json:"date"`
	Level int    `json:"level"`
}
