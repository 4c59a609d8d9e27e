package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error body every failing endpoint renders.
type Err struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`

	err error
}

func (e *Err) Error() string {
	return e.err.Error()
}

func NewErr(statusCode int, err error, message string) *Err {
	return &Err{
		StatusCode: statusCode,
		Message:    message,
		err:        err,
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err, err.Error())
}

func ErrUnauthorized(err error) *Err {
	return NewErr(http.StatusUnauthorized, err, err.Error())
}

func ErrWrongCredentials(err error) *Err {
	return NewErr(http.StatusUnauthorized, err, "wrong credentials")
}

func ErrForbidden(err error) *Err {
	return NewErr(http.StatusForbidden, err, err.Error())
}

func ErrNotFound(err error) *Err {
	return NewErr(http.StatusNotFound, err, err.Error())
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, err, err.Error())
}

func ErrInternalServerError(err error) *Err {
	return NewErr(http.StatusInternalServerError, err, "internal server error")
}

// RenderErr writes the error body and logs server-side failures with the
// underlying cause, which the client never sees.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.Int("status_code", err.StatusCode),
			zap.String("path", ctx.FullPath()),
			zap.Error(err.err),
		)
	}

	ctx.JSON(err.StatusCode, err)
}
