package handler

import (
	"github.com/gin-gonic/gin"

	"main/model"
	"main/repository"
	"main/utils"
)

type updateSettingsRequest struct {
	Theme            model.Theme `json:"theme" binding:"required,oneof=dark light system"`
	Notifications    *bool       `json:"notifications" binding:"required"`
	SuccessThreshold int         `json:"success_threshold" binding:"required,min=1,max=100"`
}

func GetSettingsHandler(c *gin.Context, settingsRepo *repository.SettingsRepo) {
	userID := c.GetString("user_id")

	settings, err := settingsRepo.GetSettings(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch settings")
		return
	}
	utils.Success(c, settings)
}

func UpdateSettingsHandler(c *gin.Context, settingsRepo *repository.SettingsRepo) {
	userID := c.GetString("user_id")

	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	settings := &model.AppSettings{
		UserID:           userID,
		Theme:            req.Theme,
		Notifications:    *req.Notifications,
		SuccessThreshold: req.SuccessThreshold,
	}
	if err := settingsRepo.SaveSettings(c.Request.Context(), settings); err != nil {
		utils.InternalError(c, "Failed to save settings")
		return
	}
	utils.Success(c, settings)
}
