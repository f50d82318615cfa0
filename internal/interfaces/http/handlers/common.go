// Package handlers implements the HTTP endpoints of the engine: matching,
// blending, classification, catalog listing, and constellation viewport
// sessions.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/CineStyle-Engine/internal/domain/style"
	"github.com/turtacn/CineStyle-Engine/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// respondError maps an error to its HTTP status.  AppError codes carry their
// own status; server-side codes are masked so internals never leak.
func respondError(c *gin.Context, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    string(errors.CodeInternal),
			Message: "internal server error",
		})
		return
	}

	status := errors.HTTPStatusForCode(appErr.Code)
	resp := ErrorResponse{Code: string(appErr.Code), Message: appErr.Message, Detail: appErr.Detail}
	if errors.IsServerError(appErr.Code) {
		resp.Message = errors.DefaultMessageForCode(appErr.Code)
		resp.Detail = ""
	}
	c.JSON(status, resp)
}

// parseVector converts a JSON axis map into a validated style vector.
func parseVector(raw map[string]float64) (style.Vector, error) {
	values := make(map[style.Axis]float64, len(raw))
	for k, v := range raw {
		values[style.Axis(k)] = v
	}
	return style.NewVector(values)
}

// vectorToJSON converts a style vector back into a plain axis map.
func vectorToJSON(v style.Vector) map[string]float64 {
	out := make(map[string]float64, len(v))
	for axis, value := range v {
		out[string(axis)] = value
	}
	return out
}
