package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"main/model"
	"main/usecase"
	"main/utils"
)

// StatsHandler serves every derived-statistics endpoint off one service.
type StatsHandler struct {
	statsService *usecase.StatsService
}

func NewStatsHandler(statsService *usecase.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// parsePeriod validates the ?period= query parameter, defaulting to week.
func parsePeriod(c *gin.Context) (model.TimePeriod, bool) {
	period := model.TimePeriod(c.DefaultQuery("period", string(model.PeriodWeek)))
	if !model.ValidTimePeriod(period) {
		utils.BadRequest(c, "Invalid period: must be day, week, month or year")
		return "", false
	}
	return period, true
}

func (h *StatsHandler) GetOverview(c *gin.Context) {
	userID := c.GetString("user_id")

	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	stats, err := h.statsService.Overview(c.Request.Context(), userID, period)
	if err != nil {
		utils.InternalError(c, "Failed to compute overview")
		return
	}
	utils.Success(c, stats)
}

func (h *StatsHandler) GetAllHabitStats(c *gin.Context) {
	userID := c.GetString("user_id")

	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	stats, err := h.statsService.AllHabitStats(c.Request.Context(), userID, period)
	if err != nil {
		utils.InternalError(c, "Failed to compute habit stats")
		return
	}
	utils.Success(c, gin.H{
		"stats": stats,
	})
}

func (h *StatsHandler) GetHabitStats(c *gin.Context) {
	userID := c.GetString("user_id")
	habitID := c.Param("id")

	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	stats, err := h.statsService.HabitStats(c.Request.Context(), userID, habitID, period)
	if err != nil {
		if err.Error() == "habit not found" {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.InternalError(c, "Failed to compute habit stats")
		return
	}
	utils.Success(c, stats)
}

// GetDaily reports per-habit completion for one date, today when ?date= is
// absent.
func (h *StatsHandler) GetDaily(c *gin.Context) {
	userID := c.GetString("user_id")

	date := c.Query("date")
	if date != "" && !utils.ValidDate(date) {
		utils.BadRequest(c, "Invalid date: must be YYYY-MM-DD")
		return
	}

	daily, err := h.statsService.Daily(c.Request.Context(), userID, date)
	if err != nil {
		utils.InternalError(c, "Failed to compute daily progress")
		return
	}
	utils.Success(c, daily)
}

func (h *StatsHandler) GetHeatmap(c *gin.Context) {
	userID := c.GetString("user_id")

	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(usecase.DefaultHeatmapDays)))
	if err != nil || days < 1 || days > 366 {
		utils.BadRequest(c, "Invalid days: must be between 1 and 366")
		return
	}

	cells, err := h.statsService.Heatmap(c.Request.Context(), userID, days)
	if err != nil {
		utils.InternalError(c, "Failed to compute heatmap")
		return
	}
	utils.Success(c, gin.H{
		"heatmap": cells,
	})
}

func (h *StatsHandler) GetTrend(c *gin.Context) {
	userID := c.GetString("user_id")

	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	series, err := h.statsService.Trend(c.Request.Context(), userID, period)
	if err != nil {
		utils.InternalError(c, "Failed to compute trend")
		return
	}
	utils.Success(c, gin.H{
		"trend": series,
	})
}
