package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns.
// Errors additionally carry Message and, outside production, Error detail.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success responses

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithCount is used by list endpoints: {success, count, data}.
func SuccessWithCount(c *gin.Context, statusCode int, count int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
	})
}

// Error responses

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// ErrorWithDetail attaches the underlying error string. Handlers must
// only pass detail in non-production environments.
func ErrorWithDetail(c *gin.Context, statusCode int, message, detail string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// Common error responses

func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
