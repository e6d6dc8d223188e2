package dto

import (
	"main/model"
)

type CreateLogRequest struct {
	HabitID string  `json:"habit_id" binding:"required"`
	Amount  float64 `json:"amount" binding:"min=0"`
	Date    string  `json:"date" binding:"required,isodate"`
	Note    string  `json:"note" binding:"max=500"`
}

type UpdateLogRequest struct {
	Amount float64 `json:"amount" binding:"min=0"`
	Note   string  `json:"note" binding:"max=500"`
}

type LogListResponse struct {
	Logs  []*model.HabitLog `json:"logs"`
	Count int               `json:"count"`
}
