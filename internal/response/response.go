package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape of every error response:
// {"error":true,"message":"..."} with the appropriate status code.
type ErrorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Success sends the payload as-is. Handlers forward store results without
// post-processing, so there is no success envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Fail sends an error response for the given error code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Error: true, Message: GetMessage(code)})
}

// FailWithMessage sends an error response with a caller-supplied message.
func FailWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: true, Message: message})
}

// AbortFail aborts the middleware chain and sends an error response.
// Nothing downstream of a failed gate ever runs.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: true, Message: GetMessage(code)})
}
