package handler

import (
	"errors"
	"io"

	"jobskills/internal/delivery/http/middleware"
	"jobskills/internal/domain/user"
	"jobskills/internal/pkg/response"
	"jobskills/internal/resume"
	useruc "jobskills/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc *useruc.Service
}

func NewUserHandler(uc *useruc.Service) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/upload-resume", h.UploadResume)
	r.Post("/update-profile", h.UpdateProfile)
	r.Post("/apply-log", h.LogApplication)
	r.Get("/apply-logs", h.ApplyLogs)
	r.Get("/current", h.Current)
	r.Get("/settings", h.GetSettings)
	r.Post("/settings", h.UpdateSettings)
	r.Delete("/delete", h.Delete)
}

func (h *UserHandler) UploadResume(c fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", err)
	}
	if fh.Size > resume.MaxSize {
		return middleware.NewAppError(fiber.StatusBadRequest, "File too large. Maximum size is 5MB.", nil)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	res, err := h.uc.UploadResume(c.Context(), middleware.UserID(c), fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, useruc.ErrFileTooLarge):
			return middleware.NewAppError(fiber.StatusBadRequest, "File too large. Maximum size is 5MB.", err)
		case errors.Is(err, useruc.ErrUnsupportedFile):
			return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported file type", err)
		case errors.Is(err, useruc.ErrEmptyText), errors.Is(err, useruc.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Could not extract text from file", err)
		case errors.Is(err, user.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Resume parsing failed", err)
	}

	return response.JSON(c, fiber.StatusOK, "Resume parsed successfully", response.Body{
		"skills":       res.Skills,
		"personalInfo": res.PersonalInfo,
		"user":         res.User,
	})
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	u, err := h.uc.UpdateProfile(c.Context(), middleware.UserID(c), req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to update profile", err)
	}

	return response.JSON(c, fiber.StatusOK, "Profile updated successfully", response.Body{"user": u})
}

type applyLogRequest struct {
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	URL      string `json:"url"`
}

func (h *UserHandler) LogApplication(c fiber.Ctx) error {
	var req applyLogRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	err := h.uc.LogApplication(c.Context(), middleware.UserID(c), useruc.ApplyLogInput{
		JobTitle: req.JobTitle,
		Company:  req.Company,
		URL:      req.URL,
	})
	if err != nil {
		switch {
		case errors.Is(err, useruc.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "jobTitle and company are required", err)
		case errors.Is(err, user.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to log application", err)
	}

	return response.Message(c, fiber.StatusOK, "Application logged")
}

func (h *UserHandler) ApplyLogs(c fiber.Ctx) error {
	logs, err := h.uc.ApplyLogs(c.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to fetch logs", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"logs": logs})
}

func (h *UserHandler) Current(c fiber.Ctx) error {
	u, err := h.uc.Current(c.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to fetch user data", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": u})
}

func (h *UserHandler) GetSettings(c fiber.Ctx) error {
	settings, err := h.uc.GetSettings(c.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to fetch settings", err)
	}

	// The settings payload is returned bare, not wrapped in the envelope.
	return c.Status(fiber.StatusOK).JSON(settings)
}

type updateSettingsRequest struct {
	EmailNotif     *bool   `json:"emailNotif"`
	DarkMode       *bool   `json:"darkMode"`
	NotifFrequency *string `json:"notifFrequency"`
}

func (h *UserHandler) UpdateSettings(c fiber.Ctx) error {
	var req updateSettingsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	settings, err := h.uc.UpdateSettings(c.Context(), middleware.UserID(c), useruc.SettingsInput{
		EmailNotif: req.EmailNotif,
		DarkMode:   req.DarkMode,
		Frequency:  req.NotifFrequency,
	})
	if err != nil {
		switch {
		case errors.Is(err, useruc.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid notification frequency", err)
		case errors.Is(err, user.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to update settings", err)
	}

	return response.JSON(c, fiber.StatusOK, "Settings updated successfully", response.Body{"settings": settings})
}

func (h *UserHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), middleware.UserID(c)); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to delete account", err)
	}

	return response.Message(c, fiber.StatusOK, "Account deleted successfully")
}
