package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MsgUnknownFailure is shown instead of any internal error detail.
const MsgUnknownFailure = "An unknown error occurred. Please reach out to support if the issue persists"

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Validation writes a rejected form; message is the validator's text.
func Validation(c *gin.Context, message string) {
	BadRequest(c, "validation_error", message)
}

func UnknownFailure(c *gin.Context) {
	Internal(c, "unknown_failure", MsgUnknownFailure)
}
