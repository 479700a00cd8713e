package util

import (
	"errors"
	"net/http"

	"assessment_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorBody is the error envelope: {"error":{"code","message","details?"}}.
// Details carries diagnostics and is only populated outside release mode.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ListResponse is the page envelope shared by every list endpoint.
type ListResponse struct {
	Data       interface{} `json:"data"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int64       `json:"totalPages"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

func Page(c *gin.Context, items interface{}, page, limit int, total, totalPages int64) {
	c.JSON(http.StatusOK, ListResponse{
		Data:       items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

// Fail is the single translator from errors to HTTP responses. Validation
// errors carry their own status and code; everything else is an internal
// fault that must not leak detail to the caller in release mode.
func Fail(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, ErrorResponse{Error: ErrorBody{
			Code:    apiErr.Code,
			Message: apiErr.Message,
		}})
		return
	}

	logger.Log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)

	body := ErrorBody{
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
	if gin.Mode() != gin.ReleaseMode {
		body.Details = err.Error()
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: body})
}

// NotFoundRoute answers unmatched routes with the standard envelope.
func NotFoundRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: ErrorBody{
		Code:    CodeNotFound,
		Message: "Route not found",
	}})
}
