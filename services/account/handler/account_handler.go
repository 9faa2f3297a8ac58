package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	account "shelfshare/internal/accountService"
	"shelfshare/internal/lenderrors"
	model "shelfshare/internal/models"
	"shelfshare/services/account/helpers"
	"shelfshare/utils"
)

type AccountServiceInterface interface {
	Register(input account.RegisterInput) (model.User, account.AuthTokens, error)
	Login(emailOrPhone, password string) (model.User, account.AuthTokens, error)
	CurrentUser() (model.User, error)
	UpdateProfile(patch account.ProfilePatch) (model.User, error)
	GetUser(userID string) (model.User, error)
	UpdateTrustScore(userID string, score *float64) (model.User, error)
	SearchUsers(keyword string, page, size int) (account.SearchPage, error)
	AdminStats() (account.Stats, error)
	AdminListUsers() []model.User
	AdminPatchUser(userID string, patch account.AdminUserPatch) (model.User, error)
	ChangePassword(currentPassword, newPassword string) error
	VerifyEmail() error
	VerifyPhone() error
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterHandler handles POST /users/register
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, tokens, err := h.service.Register(account.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		Address:    req.Address,
		City:       req.City,
		District:   req.District,
		PostalCode: req.PostalCode,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterHandler: registration failed", map[string]any{"email": req.Email, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuthResponse(user, tokens), "registration successful")
	utils.LogSuccess("RegisterHandler", "registration successful", map[string]any{
		"user_id": user.UserID,
		"email":   user.Email,
	})
}

// LoginHandler handles POST /users/login
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, tokens, err := h.service.Login(req.EmailOrPhone, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{"query": req.EmailOrPhone, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuthResponse(user, tokens), "login successful")
	utils.LogSuccess("LoginHandler", "login successful", map[string]any{"user_id": user.UserID})
}

// MeHandler handles GET /users/me
func (h *AccountHandler) MeHandler(c *gin.Context) {
	user, err := h.service.CurrentUser()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("MeHandler: no session", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "current user retrieved successfully")
	utils.LogSuccess("MeHandler", "current user retrieved successfully", map[string]any{"user_id": user.UserID})
}

// UpdateProfileHandler handles PUT /users/profile
func (h *AccountHandler) UpdateProfileHandler(c *gin.Context) {
	var req helpers.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	user, err := h.service.UpdateProfile(req.ToPatch())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateProfileHandler: update failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "profile updated successfully")
	utils.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{"user_id": user.UserID})
}

// GetUserHandler handles GET /users/:userId
func (h *AccountHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("userId")
	user, err := h.service.GetUser(userID)
	if err != nil {
		if errors.Is(err, lenderrors.ErrUserNotFound) {
			c.Status(http.StatusNotFound)
			utils.Info("GetUserHandler: user not found", map[string]any{"user_id": userID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserHandler: error retrieving user", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
	utils.LogSuccess("GetUserHandler", "user retrieved successfully", map[string]any{"user_id": userID})
}

// UpdateTrustScoreHandler handles PUT /users/:userId/trust-score?score=
func (h *AccountHandler) UpdateTrustScoreHandler(c *gin.Context) {
	userID := c.Param("userId")

	var score *float64
	if raw := c.Query("score"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			score = &parsed
		}
	}

	user, err := h.service.UpdateTrustScore(userID, score)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateTrustScoreHandler: update failed", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, "Trust score updated", "trust score updated successfully")
	utils.LogSuccess("UpdateTrustScoreHandler", "trust score updated successfully", map[string]any{
		"user_id":     userID,
		"trust_score": user.TrustScore,
	})
}

// SearchUsersHandler handles POST /users/search
func (h *AccountHandler) SearchUsersHandler(c *gin.Context) {
	var req helpers.SearchUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "SearchUsersHandler", err)
		return
	}

	page, err := h.service.SearchUsers(req.Keyword, req.Page, req.Size)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SearchUsersHandler: search failed", map[string]any{"keyword": req.Keyword, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, page, "users retrieved successfully")
	utils.LogSuccess("SearchUsersHandler", "users retrieved successfully", map[string]any{
		"keyword": req.Keyword,
		"count":   page.NumberOfElements,
	})
}

// AdminStatsHandler handles GET /users/admin/stats
func (h *AccountHandler) AdminStatsHandler(c *gin.Context) {
	stats, err := h.service.AdminStats()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("AdminStatsHandler: no session", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, stats, "stats retrieved successfully")
	utils.LogSuccess("AdminStatsHandler", "stats retrieved successfully", map[string]any{
		"total_users": stats.TotalUsers,
	})
}

// AdminListUsersHandler handles GET /admin/users
func (h *AccountHandler) AdminListUsersHandler(c *gin.Context) {
	users := h.service.AdminListUsers()

	utils.JSONResponse(c, http.StatusOK, users, "users retrieved successfully")
	utils.LogSuccess("AdminListUsersHandler", "users retrieved successfully", map[string]any{"count": len(users)})
}

// AdminPatchUserHandler handles PATCH /admin/users/:id
func (h *AccountHandler) AdminPatchUserHandler(c *gin.Context) {
	userID := c.Param("id")

	var req helpers.AdminPatchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "AdminPatchUserHandler", err)
		return
	}

	user, err := h.service.AdminPatchUser(userID, req.ToPatch())
	if err != nil {
		if errors.Is(err, lenderrors.ErrUserNotFound) {
			c.Status(http.StatusNotFound)
			utils.Info("AdminPatchUserHandler: user not found", map[string]any{"user_id": userID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AdminPatchUserHandler: patch failed", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user updated successfully")
	utils.LogSuccess("AdminPatchUserHandler", "user updated successfully", map[string]any{"user_id": userID})
}

// ChangePasswordHandler handles POST /users/change-password
func (h *AccountHandler) ChangePasswordHandler(c *gin.Context) {
	var req helpers.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "ChangePasswordHandler", err)
		return
	}

	if err := h.service.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ChangePasswordHandler: change failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, "Password changed successfully", "password changed successfully")
	utils.LogSuccess("ChangePasswordHandler", "password changed successfully", nil)
}

// ForgotPasswordHandler handles POST /users/forgot-password. The reset mail is
// simulated; the handler always reports success.
func (h *AccountHandler) ForgotPasswordHandler(c *gin.Context) {
	var req helpers.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "ForgotPasswordHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, "Password reset link sent to email", "password reset link sent")
	utils.LogSuccess("ForgotPasswordHandler", "password reset link sent", map[string]any{"email": req.Email})
}

// ResetPasswordHandler handles POST /users/reset-password
func (h *AccountHandler) ResetPasswordHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, "Password reset successful", "password reset successful")
	utils.LogSuccess("ResetPasswordHandler", "password reset successful", nil)
}

// VerifyEmailHandler handles POST /users/verify-email
func (h *AccountHandler) VerifyEmailHandler(c *gin.Context) {
	if err := h.service.VerifyEmail(); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("VerifyEmailHandler: no session", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, "Email verified successfully", "email verified successfully")
	utils.LogSuccess("VerifyEmailHandler", "email verified successfully", nil)
}

// VerifyPhoneHandler handles POST /users/verify-phone
func (h *AccountHandler) VerifyPhoneHandler(c *gin.Context) {
	if err := h.service.VerifyPhone(); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("VerifyPhoneHandler: no session", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, "Phone verified successfully", "phone verified successfully")
	utils.LogSuccess("VerifyPhoneHandler", "phone verified successfully", nil)
}
