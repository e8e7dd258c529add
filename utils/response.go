package utils

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

func SendValidationError(c *gin.Context, err string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "Validation failed",
		Message: err,
		Code:    http.StatusBadRequest,
	})
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(http.StatusOK, response)
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
		Data:    data,
	}
	c.JSON(http.StatusCreated, response)
}

// SendDomainError maps the service error kinds to HTTP statuses. Unknown
// errors are treated as internal so storage details never leak to the caller.
func SendDomainError(c *gin.Context, err error) {
	switch {
	case IsValidationError(err):
		SendValidationError(c, err.Error())
	case IsNotFoundError(err):
		SendError(c, http.StatusNotFound, err.Error())
	case IsConflictError(err):
		SendError(c, http.StatusConflict, err.Error())
	default:
		SendError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
