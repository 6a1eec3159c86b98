package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lohiyakeshav/StrangeMetrics/internal/api"
	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidRepoURL):
		status = http.StatusBadRequest
		code = api.INVALIDURL
		msg = "url does not point at a GitHub repository"
	case errors.Is(err, entities.ErrInvalidFrequency):
		status = http.StatusBadRequest
		code = api.INVALIDFREQUENCY
		msg = "frequency must be one of day, week, month"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDURL
		msg = err.Error()
	case errors.Is(err, entities.ErrRepoNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "repository not found or private"
	case errors.Is(err, entities.ErrAnalysisNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "analysis not found"
	case errors.Is(err, entities.ErrRateLimited):
		status = http.StatusTooManyRequests
		code = api.RATELIMITED
		msg = "GitHub API rate limit reached"
	case errors.Is(err, entities.ErrStatsPending):
		status = http.StatusAccepted
		code = api.STATSPENDING
		msg = "GitHub is generating statistics, try again in a few seconds"
	case errors.Is(err, entities.ErrUpstream):
		status = http.StatusBadGateway
		code = api.UPSTREAM
		msg = "GitHub API request failed"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

// parseBody decodes and validates a JSON request body.
func (h *Handler) parseBody(c *fiber.Ctx, body any) error {
	if err := c.BodyParser(body); err != nil {
		return fmt.Errorf("parse body: %w", err)
	}
	if err := h.validate.Struct(body); err != nil {
		return fmt.Errorf("validate body: %w", err)
	}
	return nil
}
