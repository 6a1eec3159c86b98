package handlers_fiber

import (
	"net/http"

	"github.com/lohiyakeshav/StrangeMetrics/internal/api"
	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
	"github.com/lohiyakeshav/StrangeMetrics/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostCommits returns commit counts grouped by the requested frequency.
func (h *Handler) PostCommits(c *fiber.Ctx) error {
	var body api.CommitsRequest
	if err := h.parseBody(c, &body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDURL, "invalid body"))
	}

	freq, err := h.uc.CommitFrequency(c.Context(), body.URL, entities.Frequency(body.Frequency))
	if err != nil {
		h.log.Errorw("failed to get commit frequency", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.CommitFrequencyResponse{CommitFrequency: freq.Counts})
}

// PostCodeFrequency returns weekly addition/deletion stats.
func (h *Handler) PostCodeFrequency(c *fiber.Ctx) error {
	var body api.RepoRequest
	if err := h.parseBody(c, &body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDURL, "invalid body"))
	}

	weeks, err := h.uc.CodeFrequency(c.Context(), body.URL)
	if err != nil {
		h.log.Errorw("failed to get code frequency", "error", err.Error())
		return writeError(c, err)
	}
	if len(weeks) == 0 {
		return c.Status(http.StatusOK).JSON(api.MessageResponse{
			Message: "no code frequency data available yet, try again later",
		})
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPICodeFrequency(weeks))
}

// PostContributionHeatmap returns per-day commit counts with zero-filled gaps.
func (h *Handler) PostContributionHeatmap(c *fiber.Ctx) error {
	var body api.RepoRequest
	if err := h.parseBody(c, &body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDURL, "invalid body"))
	}

	days, err := h.uc.ContributionHeatmap(c.Context(), body.URL)
	if err != nil {
		h.log.Errorw("failed to get contribution heatmap", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIHeatmap(days))
}
