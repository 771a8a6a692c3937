package handler

import (
	"errors"

	"jobskills/internal/delivery/http/middleware"
	"jobskills/internal/domain/user"
	jobsuc "jobskills/internal/usecase/jobs"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc *jobsuc.Service
}

func NewJobsHandler(uc *jobsuc.Service) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/matches", h.Matches)
}

func (h *JobsHandler) Matches(c fiber.Ctx) error {
	skills, scored, err := h.uc.Matches(c.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to fetch jobs", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"skills": skills,
		"jobs":   scored,
	})
}
