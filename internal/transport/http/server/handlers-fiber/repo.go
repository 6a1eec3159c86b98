package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/lohiyakeshav/StrangeMetrics/internal/api"
	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
	"github.com/lohiyakeshav/StrangeMetrics/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostValidateRepo checks repository existence and visibility.
func (h *Handler) PostValidateRepo(c *fiber.Ctx) error {
	var body api.RepoRequest
	if err := h.parseBody(c, &body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDURL, "invalid body"))
	}

	valid, err := h.uc.ValidateRepo(c.Context(), body.URL)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidRepoURL) {
			msg := "url does not point at a GitHub repository"
			return c.Status(http.StatusBadRequest).JSON(api.ValidateRepoResponse{Valid: false, Error: &msg})
		}
		h.log.Errorw("failed to validate repo", "error", err.Error())
		return writeError(c, err)
	}

	resp := api.ValidateRepoResponse{Valid: valid}
	if !valid {
		msg := "repository not found or private"
		resp.Error = &msg
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostRepo returns headline repository metrics.
func (h *Handler) PostRepo(c *fiber.Ctx) error {
	var body api.RepoRequest
	if err := h.parseBody(c, &body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDURL, "invalid body"))
	}

	info, err := h.uc.RepoInfo(c.Context(), body.URL)
	if err != nil {
		h.log.Errorw("failed to get repo info", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIRepoInfo(*info))
}

// PostLanguages returns the language breakdown of a repository.
func (h *Handler) PostLanguages(c *fiber.Ctx) error {
	var body api.RepoRequest
	if err := h.parseBody(c, &body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDURL, "invalid body"))
	}

	breakdown, err := h.uc.Languages(c.Context(), body.URL)
	if err != nil {
		h.log.Errorw("failed to get languages", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPILanguages(breakdown))
}
