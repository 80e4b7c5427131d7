package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind tells the UI how to surface the error
type Kind string

const (
	KindValidation      Kind = "validation"
	KindTransient       Kind = "transient"
	KindRejected        Kind = "rejected"
	KindPayment         Kind = "payment"
	KindEmptyCart       Kind = "empty_cart"
	KindUnauthenticated Kind = "unauthenticated"
	KindNotFound        Kind = "not_found"
	KindInternal        Kind = "internal"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message     string `json:"message"`
		Kind        Kind   `json:"kind"`
		Field       string `json:"field,omitempty"`
		Dismissible bool   `json:"dismissible"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, kind Kind, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Kind = kind
	resp.Error.Dismissible = kind == KindTransient
	return resp
}

func (r Response) WithField(field string) Response {
	r.Error.Field = field
	return r
}

func (r Response) WithDetail(detail any) Response {
	r.Detail = detail
	return r
}

// preserves original error for future monitoring
func Abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		err = errors.New(resp.Error.Message)
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	Abort(c, err, NewResponse(status, kindForStatus(status), msg).WithDetail(detail))
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthenticated
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout:
		return KindTransient
	case status >= 500:
		return KindInternal
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindRejected
	}
}
