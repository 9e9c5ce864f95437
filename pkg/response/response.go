package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "tax-practice-management/pkg/errors"
)

// productionMode suppresses 500 details. Set from the environment name at
// startup; defaults to the safe production behavior.
var productionMode = true

// SetEnvironment configures 500-detail rendering: outside production the
// errors field of a 5xx response carries the underlying error detail.
func SetEnvironment(name string) {
	productionMode = name == "production"
}

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// OKWithMessage sends 200 JSON with data and a custom message.
func OKWithMessage(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   message,
		Data:      data,
	})
}

// Error sends an error response. HTTPError carries its own status;
// validation errors report the offending field; everything else is a 400.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		details := httpErr.Details
		if httpErr.Status >= http.StatusInternalServerError && productionMode {
			details = nil
		}
		c.JSON(httpErr.Status, Resp{
			ErrorCode: httpErr.Status,
			Message:   httpErr.Message,
			Errors:    details,
		})
		return
	}

	var valErr *pkgErrors.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   valErr.Message,
			Errors:    map[string]string{valErr.Field: valErr.Message},
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: 401,
		Message:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: 429,
		Message:   "Too many requests",
	})
}
