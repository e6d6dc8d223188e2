package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int         `json:"-"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, &Response{Status: status, Error: message})
}

// Success responses

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{Status: http.StatusOK, Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, &Response{
		Status:  http.StatusCreated,
		Message: "Resource created successfully",
		Data:    data,
	})
}

// Error responses

func BadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	respondError(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	respondError(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	respondError(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	respondError(c, http.StatusConflict, message)
}

func TooManyRequests(c *gin.Context, message string) {
	respondError(c, http.StatusTooManyRequests, message)
}

func InternalError(c *gin.Context, message string) {
	respondError(c, http.StatusInternalServerError, message)
}
