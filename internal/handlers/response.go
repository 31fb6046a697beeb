package handlers

import (
	"github.com/gin-gonic/gin"

	"homechef/internal/models"
)

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors,omitempty"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Success: false, Message: message})
}

func respondValidationErrors(c *gin.Context, status int, errs []models.FieldError) {
	c.JSON(status, errorResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}
