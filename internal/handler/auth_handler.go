package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelpos/internal/service"
)

// AuthHandler handles the operator login and OTP endpoints.
type AuthHandler struct {
	authService service.AuthService
	otpService  service.OTPService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, otpService service.OTPService) *AuthHandler {
	return &AuthHandler{authService: authService, otpService: otpService}
}

// Login handles POST /api/v1/auth/login
// @Summary Operator login
// @Description Exchange the shared shop password for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginInput true "Shop password"
// @Success 200 {object} APIResponse "Session token"
// @Failure 401 {object} APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	token, err := h.authService.Login(input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"token": token})
}

// SendOTP handles POST /api/v1/auth/otp/send
// @Summary Send a one-time code
// @Description Email a 6-digit code; a new code supersedes any prior one
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.SendOTPInput true "Destination email"
// @Success 200 {object} APIResponse "Code sent"
// @Router /auth/otp/send [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var input service.SendOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.otpService.Issue(c.Request.Context(), input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "code sent"})
}

// VerifyOTP handles POST /api/v1/auth/otp/verify
// @Summary Verify a one-time code
// @Description Check a submitted code against the active one for the email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.VerifyOTPInput true "Email and code"
// @Success 200 {object} APIResponse "Code verified"
// @Failure 401 {object} APIResponse "Invalid or expired code"
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var input service.VerifyOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.otpService.Verify(c.Request.Context(), input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "code verified"})
}
