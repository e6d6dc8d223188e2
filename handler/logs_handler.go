package handler

import (
	"github.com/gin-gonic/gin"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"
)

func CreateLogHandler(c *gin.Context, logsService *usecase.LogsService) {
	userID := c.GetString("user_id")

	var req dto.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	log, err := logsService.CreateLog(c.Request.Context(), userID, &model.HabitLog{
		HabitID: req.HabitID,
		Amount:  req.Amount,
		Date:    req.Date,
		Note:    req.Note,
	})
	if err != nil {
		if err.Error() == "habit not found" {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, log)
}

func UpdateLogHandler(c *gin.Context, logsService *usecase.LogsService) {
	userID := c.GetString("user_id")
	logID := c.Param("id")

	var req dto.UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	log, err := logsService.UpdateLog(c.Request.Context(), logID, userID, req.Amount, req.Note)
	if err != nil {
		if err.Error() == "log not found" {
			utils.NotFound(c, "Log not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, log)
}

func DeleteLogHandler(c *gin.Context, logsService *usecase.LogsService) {
	userID := c.GetString("user_id")
	logID := c.Param("id")

	if err := logsService.DeleteLog(c.Request.Context(), logID, userID); err != nil {
		if err.Error() == "log not found" {
			utils.NotFound(c, "Log not found")
			return
		}
		utils.InternalError(c, "Failed to delete log")
		return
	}

	utils.Success(c, gin.H{
		"message": "Log deleted",
	})
}

// ListLogsHandler returns logs filtered by optional habit_id, start and end
// query parameters. With no date bounds it returns the full history; with
// only one bound the range collapses to that single day.
func ListLogsHandler(c *gin.Context, logsService *usecase.LogsService) {
	userID := c.GetString("user_id")
	habitID := c.Query("habit_id")
	start := c.Query("start")
	end := c.Query("end")

	var logs []*model.HabitLog
	var err error
	switch {
	case start == "" && end == "" && habitID == "":
		logs, err = logsService.GetUserLogs(c.Request.Context(), userID)
	case start == "" && end == "":
		logs, err = logsService.GetHabitLogs(c.Request.Context(), habitID, userID)
	default:
		logs, err = logsService.GetLogsByDateRange(c.Request.Context(), userID, habitID, start, end)
	}
	if err != nil {
		if err.Error() == "habit not found" {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, dto.LogListResponse{
		Logs:  logs,
		Count: len(logs),
	})
}

// ListHabitLogsHandler returns the full log history for one habit.
func ListHabitLogsHandler(c *gin.Context, logsService *usecase.LogsService) {
	userID := c.GetString("user_id")
	habitID := c.Param("id")

	logs, err := logsService.GetHabitLogs(c.Request.Context(), habitID, userID)
	if err != nil {
		utils.NotFound(c, "Habit not found")
		return
	}

	utils.Success(c, dto.LogListResponse{
		Logs:  logs,
		Count: len(logs),
	})
}
