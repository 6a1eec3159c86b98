package handlers_fiber

import (
	"net/http"

	"github.com/lohiyakeshav/StrangeMetrics/internal/api"
	"github.com/lohiyakeshav/StrangeMetrics/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetHistory returns the latest recorded analysis runs.
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")

	records, err := h.uc.RecentAnalyses(c.Context(), limit)
	if err != nil {
		h.log.Errorw("failed to get analysis history", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Analyses []api.AnalysisRecord `json:"analyses"`
	}{Analyses: mapper.ToAPIAnalysisRecords(records)}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetHistoryStats returns run counters grouped by kind and repository.
func (h *Handler) GetHistoryStats(c *fiber.Ctx) error {
	stats, err := h.uc.AnalysisStats(c.Context())
	if err != nil {
		h.log.Errorw("failed to get analysis stats", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(stats)
}
