package handler

import (
	"errors"

	"jobskills/internal/delivery/http/middleware"
	"jobskills/internal/pkg/response"
	authuc "jobskills/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc *authuc.Service
}

func NewAuthHandler(uc *authuc.Service) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signup", h.Signup)
	r.Post("/verify-otp", h.VerifyOTP)
	r.Post("/resend-otp", h.ResendOTP)
	r.Post("/login", h.Login)
	r.Post("/google-login", h.GoogleLogin)
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	code, err := h.uc.Signup(c.Context(), authuc.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, authuc.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "All fields are required", err)
		case errors.Is(err, authuc.ErrGoogleAccount):
			return middleware.NewAppError(fiber.StatusBadRequest,
				"This email is already registered with Google login. Please use Google Sign-In.", err)
		case errors.Is(err, authuc.ErrUserExists):
			return middleware.NewAppError(fiber.StatusBadRequest, "User already exists. Please login.", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	extra := response.Body{}
	if code != "" {
		extra["otp"] = code
	}
	return response.JSON(c, fiber.StatusCreated, "Signup successful. Please verify OTP.", extra)
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (h *AuthHandler) VerifyOTP(c fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	if err := h.uc.VerifyOTP(c.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, authuc.ErrUserNotFound):
			return middleware.NewAppError(fiber.StatusBadRequest, "User not found", err)
		case errors.Is(err, authuc.ErrAlreadyVerified):
			return middleware.NewAppError(fiber.StatusBadRequest, "User already verified", err)
		case errors.Is(err, authuc.ErrNoOTP):
			return middleware.NewAppError(fiber.StatusBadRequest, "No OTP found", err)
		case errors.Is(err, authuc.ErrOTPExpired):
			return middleware.NewAppError(fiber.StatusBadRequest, "OTP expired", err)
		case errors.Is(err, authuc.ErrOTPMismatch):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid OTP", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.Message(c, fiber.StatusOK, "OTP verified successfully. You can now login.")
}

type resendOTPRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) ResendOTP(c fiber.Ctx) error {
	var req resendOTPRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	code, err := h.uc.ResendOTP(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, authuc.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusBadRequest, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	extra := response.Body{}
	if code != "" {
		extra["otp"] = code
	}
	return response.JSON(c, fiber.StatusOK, "New OTP sent successfully", extra)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	token, u, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authuc.ErrUserNotFound):
			return middleware.NewAppError(fiber.StatusBadRequest, "User not found", err)
		case errors.Is(err, authuc.ErrNotVerified):
			return middleware.NewAppError(fiber.StatusBadRequest, "Please verify your email first", err)
		case errors.Is(err, authuc.ErrPasswordlessUser):
			return middleware.NewAppError(fiber.StatusBadRequest, "Please use Google login", err)
		case errors.Is(err, authuc.ErrInvalidPassword):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid password", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, "Login successful", response.Body{
		"token": token,
		"user":  u,
	})
}

type googleLoginRequest struct {
	IDToken string `json:"idToken"`
}

func (h *AuthHandler) GoogleLogin(c fiber.Ctx) error {
	var req googleLoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	token, u, err := h.uc.GoogleLogin(c.Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, authuc.ErrLocalAccount):
			return middleware.NewAppError(fiber.StatusBadRequest,
				"This email is already registered with local login. Please use email/password.", err)
		case errors.Is(err, authuc.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid token", err)
		case errors.Is(err, authuc.ErrGoogleUnavailable):
			return middleware.NewAppError(fiber.StatusInternalServerError, "Server configuration error", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, "Google login successful", response.Body{
		"token": token,
		"user":  u,
	})
}
