package model

import "time"

type HabitCategory string
type GoalPeriod string
type TimePeriod string

const (
	CategoryHealth       HabitCategory = "health"
	CategoryProductivity HabitCategory = "productivity"
	CategoryHobby        HabitCategory = "hobby"
	CategoryChore        HabitCategory = "chore"
	CategoryCustom       HabitCategory = "custom"

	GoalPeriodDay    GoalPeriod = "day"
	GoalPeriodWeek   GoalPeriod = "week"
	GoalPeriodCustom GoalPeriod = "custom"

	PeriodDay   TimePeriod = "day"
	PeriodWeek  TimePeriod = "week"
	PeriodMonth TimePeriod = "month"
	PeriodYear  TimePeriod = "year"
)

type Habit struct {
	HabitID        string        `bson:"_id,omitempty" json:"id"`
	UserID         string        `bson:"user_id" json:"user_id"`
	Name           string        `bson:"name" json:"name" binding:"required"`
	Unit           string        `bson:"unit" json:"unit"`
	Category       HabitCategory `bson:"category" json:"category"`
	GoalAmount     float64       `bson:"goal_amount" json:"goal_amount"`
	GoalPeriod     GoalPeriod    `bson:"goal_period" json:"goal_period"`
	GoalPeriodDays int           `bson:"goal_period_days" json:"goal_period_days"`
	IsActive       bool          `bson:"is_active" json:"is_active"`
	Color          string        `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at" json:"updated_at"`
}

// WindowDays resolves the rolling goal window length in days.
func (h *Habit) WindowDays() int {
	switch h.GoalPeriod {
	case GoalPeriodDay:
		return 1
	case GoalPeriodWeek:
		return 7
	default:
		if h.GoalPeriodDays < 1 {
			return 1
		}
		return h.GoalPeriodDays
	}
}

func ValidCategory(c HabitCategory) bool {
	switch c {
	case CategoryHealth, CategoryProductivity, CategoryHobby, CategoryChore, CategoryCustom:
		return true
	}
	return false
}

func ValidGoalPeriod(p GoalPeriod) bool {
	switch p {
	case GoalPeriodDay, GoalPeriodWeek, GoalPeriodCustom:
		return true
	}
	return false
}

func ValidTimePeriod(p TimePeriod) bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}
