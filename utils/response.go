package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"managehotel/apperrors"
)

// SuccessCode is the body-level code for successful envelopes, matching the
// gateway-callback contract (1000 = success, 99 = payment failed).
const (
	SuccessCode         = 1000
	PaymentFailedCode   = 99
	PaymentFailedReason = "Fail"
)

type APIResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Result  interface{} `json:"result,omitempty"`
}

func JSONSuccess(c *gin.Context, result interface{}) {
	c.JSON(http.StatusOK, APIResponse{Code: SuccessCode, Result: result})
}

func JSONError(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), APIResponse{
		Code:    apperrors.CodeOf(err),
		Message: apperrors.MessageOf(err),
	})
}

// JSONBadRequest reports a request-binding failure before any domain logic
// ran.
func JSONBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{Code: apperrors.ErrInvalidRequest.Code, Message: message})
}
