package handler

import (
	"github.com/gin-gonic/gin"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"
)

// ListHabitsHandler returns every habit the user owns, each decorated with
// its current rolling-window progress and today's log entries.
func ListHabitsHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")

	habits, err := habitsService.ListWithProgress(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch habits")
		return
	}

	utils.Success(c, dto.HabitListResponse{
		Habits: habits,
		Count:  len(habits),
	})
}

func GetHabitHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	habitID := c.Param("id")

	habit, err := habitsService.GetHabit(c.Request.Context(), habitID, userID)
	if err != nil {
		utils.NotFound(c, "Habit not found")
		return
	}
	utils.Success(c, habit)
}

func CreateHabitHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")

	var req dto.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	habit, err := habitsService.CreateHabit(c.Request.Context(), userID, &model.Habit{
		Name:           req.Name,
		Unit:           req.Unit,
		Category:       req.Category,
		GoalAmount:     req.GoalAmount,
		GoalPeriod:     req.GoalPeriod,
		GoalPeriodDays: req.GoalPeriodDays,
		Color:          req.Color,
	})
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, habit)
}

func UpdateHabitHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	habitID := c.Param("id")

	var req dto.UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	habit, err := habitsService.UpdateHabit(c.Request.Context(), habitID, userID, &model.Habit{
		Name:           req.Name,
		Unit:           req.Unit,
		Category:       req.Category,
		GoalAmount:     req.GoalAmount,
		GoalPeriod:     req.GoalPeriod,
		GoalPeriodDays: req.GoalPeriodDays,
		Color:          req.Color,
	})
	if err != nil {
		if err.Error() == "habit not found" {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, habit)
}

// SetHabitActiveHandler toggles the soft activation flag. Deactivated
// habits keep their history but drop out of aggregations.
func SetHabitActiveHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	habitID := c.Param("id")

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := habitsService.SetActive(c.Request.Context(), habitID, userID, *req.IsActive); err != nil {
		if err.Error() == "habit not found" {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.InternalError(c, "Failed to update habit")
		return
	}

	utils.Success(c, gin.H{
		"habit_id":  habitID,
		"is_active": *req.IsActive,
	})
}

// DeleteHabitHandler hard-deletes a habit and cascades to its logs.
func DeleteHabitHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	habitID := c.Param("id")

	logsDeleted, err := habitsService.DeleteHabit(c.Request.Context(), habitID, userID)
	if err != nil {
		if err.Error() == "habit not found" {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.InternalError(c, "Failed to delete habit")
		return
	}

	utils.Success(c, dto.DeleteHabitResponse{
		HabitID:     habitID,
		LogsDeleted: logsDeleted,
	})
}

func GetPresetHabitsHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	utils.Success(c, gin.H{
		"presets": habitsService.Presets(),
	})
}
