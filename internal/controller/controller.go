package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/service"
	"github.com/rs/zerolog/log"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr), errors.Is(err, service.ErrInvalidPaperCode):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrPaperNotFound),
		errors.Is(err, service.ErrTradeNotFound),
		errors.Is(err, service.ErrQuestionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotPaperOwner):
		return http.StatusForbidden
	case errors.Is(err, service.ErrDuplicateAttempt),
		errors.Is(err, service.ErrAlreadySubmitted),
		errors.Is(err, service.ErrCodeCollision):
		return http.StatusConflict
	case errors.Is(err, service.ErrPoolEmpty):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrStoreUnavailable),
		errors.Is(err, service.ErrDraftingUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrPageLimitExceeded):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the {"error": message} body for a failed service call.
func RespondError(ctx *gin.Context, op string, err error) {
	status := statusFor(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Str("path", ctx.FullPath()).Msg(op + ": Service error")
	ctx.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// RespondBindError reports a request body or query that failed binding.
func RespondBindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Msg(op + ": Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request", Details: []string{err.Error()}})
}

// ParseUintParam reads a numeric path parameter. It writes a 400 and returns
// false when the value is not a positive integer.
func ParseUintParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
