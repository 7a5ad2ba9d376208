package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartenum/internal/reference"
	"smartenum/internal/smartenum"
)

// Коды ошибок в ответах
const (
	ErrCatalogNotFound = "catalog_not_found"
	ErrNotFound        = "not_found"
	ErrBadRequest      = "bad_request"
	ErrCatalogFailed   = "catalog_failed"
)

type APIError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func aerr(code, field, msg string) APIError {
	return APIError{Code: code, Field: field, Message: msg}
}

func abort(c *gin.Context, status int, e APIError) {
	c.AbortWithStatusJSON(status, gin.H{"error": e})
}

// abortLookup отвечает на ошибку поиска: 404 для отсутствующего ключа,
// 500 для семейства, чья инициализация провалилась.
func abortLookup(c *gin.Context, field string, err error) {
	if errors.Is(err, smartenum.ErrNotFound) {
		abort(c, http.StatusNotFound, aerr(ErrNotFound, field, err.Error()))
		return
	}
	e := aerr(ErrCatalogFailed, "", "catalog is unusable until restart")
	e.Detail = reference.IssueCode(err) + ": " + err.Error()
	abort(c, http.StatusInternalServerError, e)
}
