package model

import "time"

// HabitLog is a single recorded contribution toward a habit's goal.
// Date is the calendar day (YYYY-MM-DD) the amount counts toward, which is
// not necessarily the day the entry was created. Multiple logs may share the
// same (habit, date) pair; they are summed, never overwritten.
type HabitLog struct {
	LogID     string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	HabitID   string    `bson:"habit_id" json:"habit_id" binding:"required"`
	Amount    float64   `bson:"amount" json:"amount"`
	Date      string    `bson:"date" json:"date" binding:"required"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
