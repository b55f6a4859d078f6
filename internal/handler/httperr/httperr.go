// Package httperr defines the error envelope API handlers return and
// feeds the original error into gin's error stack for the error
// middleware and request logging.
package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Response is the body of every failed request. Status travels in the
// HTTP status line, not the body.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the context and aborts with the public
// message. The recorded error keeps its cause chain for the logger; the
// client only ever sees msg and detail. A nil err falls back to the
// message so the stack entry is never empty.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
