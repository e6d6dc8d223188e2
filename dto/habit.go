package dto

import (
	"main/model"
)

type CreateHabitRequest struct {
	Name           string              `json:"name" binding:"required,max=100"`
	Unit           string              `json:"unit" binding:"max=30"`
	Category       model.HabitCategory `json:"category" binding:"required,habitcategory"`
	GoalAmount     float64             `json:"goal_amount" binding:"required,gt=0"`
	GoalPeriod     model.GoalPeriod    `json:"goal_period" binding:"required,goalperiod"`
	GoalPeriodDays int                 `json:"goal_period_days" binding:"omitempty,min=1,max=365"`
	Color          string              `json:"color" binding:"omitempty,hexcolor"`
}

type UpdateHabitRequest struct {
	Name           string              `json:"name" binding:"required,max=100"`
	Unit           string              `json:"unit" binding:"max=30"`
	Category       model.HabitCategory `json:"category" binding:"required,habitcategory"`
	GoalAmount     float64             `json:"goal_amount" binding:"required,gt=0"`
	GoalPeriod     model.GoalPeriod    `json:"goal_period" binding:"required,goalperiod"`
	GoalPeriodDays int                 `json:"goal_period_days" binding:"omitempty,min=1,max=365"`
	Color          string              `json:"color" binding:"omitempty,hexcolor"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type HabitListResponse struct {
	Habits []*model.HabitWithProgress `json:"habits"`
	Count  int                        `json:"count"`
}

type DeleteHabitResponse struct {
	HabitID     string `json:"habit_id"`
	LogsDeleted int    `json:"logs_deleted"`
}
