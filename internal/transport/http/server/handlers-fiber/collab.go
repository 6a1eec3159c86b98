package handlers_fiber

import (
	"net/http"

	"github.com/lohiyakeshav/StrangeMetrics/internal/api"
	"github.com/lohiyakeshav/StrangeMetrics/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostContributors returns the contributor list with commit counts.
func (h *Handler) PostContributors(c *fiber.Ctx) error {
	var body api.RepoRequest
	if err := h.parseBody(c, &body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDURL, "invalid body"))
	}

	contributors, err := h.uc.Contributors(c.Context(), body.URL)
	if err != nil {
		h.log.Errorw("failed to get contributors", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIContributors(contributors))
}

// PostPullRequests returns open, closed-unmerged and merged PR counts.
func (h *Handler) PostPullRequests(c *fiber.Ctx) error {
	var body api.RepoRequest
	if err := h.parseBody(c, &body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDURL, "invalid body"))
	}

	counts, err := h.uc.PullRequestCounts(c.Context(), body.URL)
	if err != nil {
		h.log.Errorw("failed to get pull request counts", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPullRequestCounts(counts))
}
