package model

// PresetHabit is a quick-add template served to clients.
type PresetHabit struct {
	Name           string        `json:"name"`
	Category       HabitCategory `json:"category"`
	Unit           string        `json:"unit"`
	GoalAmount     float64       `json:"goal_amount"`
	GoalPeriod     GoalPeriod    `json:"goal_period"`
	GoalPeriodDays int           `json:"goal_period_days"`
	Color          string        `json:"color"`
}

var PresetHabits = []PresetHabit{
	{Name: "Water", Category: CategoryHealth, Unit: "L", GoalAmount: 2, GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1, Color: "#3b82f6"},
	{Name: "Reading", Category: CategoryProductivity, Unit: "min", GoalAmount: 30, GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1, Color: "#8b5cf6"},
	{Name: "Exercise", Category: CategoryHealth, Unit: "min", GoalAmount: 30, GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1, Color: "#10b981"},
	{Name: "Meditation", Category: CategoryHealth, Unit: "min", GoalAmount: 10, GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1, Color: "#f59e0b"},
	{Name: "Sleep", Category: CategoryHealth, Unit: "hours", GoalAmount: 8, GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1, Color: "#6366f1"},
	{Name: "Fruits", Category: CategoryHealth, Unit: "servings", GoalAmount: 3, GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1, Color: "#ef4444"},
	{Name: "Steps", Category: CategoryHealth, Unit: "steps", GoalAmount: 10000, GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1, Color: "#14b8a6"},
	{Name: "Journal", Category: CategoryProductivity, Unit: "entries", GoalAmount: 1, GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1, Color: "#ec4899"},
	{Name: "Vitamins", Category: CategoryHealth, Unit: "pills", GoalAmount: 1, GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1, Color: "#f97316"},
	{Name: "Study", Category: CategoryProductivity, Unit: "hours", GoalAmount: 2, GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1, Color: "#0ea5e9"},
	{Name: "Stretch", Category: CategoryHealth, Unit: "min", GoalAmount: 10, GoalPeriod: GoalPeriodDay, GoalPeriodDays: 1, Color: "#a855f7"},
}
