package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"main/services"
	"main/utils"
)

// HealthHandler reports process vitals plus dependency reachability. It is
// unauthenticated so load balancers can poll it.
func HealthHandler(c *gin.Context) {
	mongoStatus := "ok"
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if utils.MongoClient == nil || utils.MongoClient.Ping(ctx, nil) != nil {
		mongoStatus = "unreachable"
	}

	redisStatus := "ok"
	if services.GlobalSessionCache == nil || !services.GlobalSessionCache.IsConnected() {
		redisStatus = "unreachable"
	}

	status := "healthy"
	if mongoStatus != "ok" {
		status = "degraded"
	}

	utils.Success(c, gin.H{
		"status": status,
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_percent": utils.GetMemoryUsage(),
		},
		"dependencies": gin.H{
			"mongo": mongoStatus,
			"redis": redisStatus,
		},
	})
}
