package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	ErrorMsg   string `json:"error"`
}

func (e *Err) Error() string {
	return e.ErrorMsg
}

// RenderErr writes the error response. Internal errors are logged with
// the request ID and hidden behind a generic message; everything else is
// returned verbatim.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.String("requestID", requestid.Get(ctx)),
			zap.Int("status", err.StatusCode),
			zap.String("error", err.ErrorMsg))

		err.ErrorMsg = "something went wrong"
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		ErrorMsg:   err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		ErrorMsg:   err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		ErrorMsg:   err.Error(),
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		ErrorMsg:   fmt.Sprintf("%v with %v (%v) is not found", resource, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		ErrorMsg:   err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		ErrorMsg:   err.Error(),
	}
}
