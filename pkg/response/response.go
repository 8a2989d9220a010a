package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

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

// Error sends status with err's message. The status doubles as error_code.
func Error(c *gin.Context, status int, err error, data any) {
	c.AbortWithStatusJSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
		Data:      data,
	})
}

// BadRequest sends 400 with err's message.
func BadRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, err, nil)
}

// NotFound sends 404 with err's message.
func NotFound(c *gin.Context, err error) {
	Error(c, http.StatusNotFound, err, nil)
}

// BadGateway sends 502 with err's message.
func BadGateway(c *gin.Context, err error) {
	Error(c, http.StatusBadGateway, err, nil)
}

// ServiceUnavailable sends 503 with err's message and optional data.
func ServiceUnavailable(c *gin.Context, err error, data any) {
	Error(c, http.StatusServiceUnavailable, err, data)
}

// InternalError sends 500 internal server error without leaking err.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
