package helpers

import (
	account "shelfshare/internal/accountService"
	model "shelfshare/internal/models"
)

// Request/Response DTOs
type RegisterRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone"`
	Password   string  `json:"password" binding:"required"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	District   string  `json:"district"`
	PostalCode string  `json:"postalCode"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

// AuthResponse is the envelope returned by register and login
type AuthResponse struct {
	User         model.User `json:"user"`
	Token        string     `json:"token"`
	RefreshToken string     `json:"refreshToken"`
	TokenType    string     `json:"tokenType"`
	ExpiresIn    int        `json:"expiresIn"`
}

// NewAuthResponse assembles the auth envelope
func NewAuthResponse(user model.User, tokens account.AuthTokens) AuthResponse {
	return AuthResponse{
		User:         user,
		Token:        tokens.Token,
		RefreshToken: tokens.RefreshToken,
		TokenType:    tokens.TokenType,
		ExpiresIn:    tokens.ExpiresIn,
	}
}

// UpdateProfileRequest is a shallow-merge patch: absent fields are left alone
type UpdateProfileRequest struct {
	Name            *string  `json:"name"`
	Phone           *string  `json:"phone"`
	Bio             *string  `json:"bio"`
	ProfileImageURL *string  `json:"profileImageUrl"`
	Avatar          *string  `json:"avatar"`
	Address         *string  `json:"address"`
	City            *string  `json:"city"`
	District        *string  `json:"district"`
	PostalCode      *string  `json:"postalCode"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// ToPatch converts the request into the service-level patch
func (r UpdateProfileRequest) ToPatch() account.ProfilePatch {
	return account.ProfilePatch{
		Name:            r.Name,
		Phone:           r.Phone,
		Bio:             r.Bio,
		ProfileImageURL: r.ProfileImageURL,
		Avatar:          r.Avatar,
		Address:         r.Address,
		City:            r.City,
		District:        r.District,
		PostalCode:      r.PostalCode,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
	}
}

type SearchUsersRequest struct {
	Keyword string `json:"keyword"`
	Page    int    `json:"page"`
	Size    int    `json:"size"`
}

type AdminPatchUserRequest struct {
	Name          *string  `json:"name"`
	Status        *string  `json:"status"`
	Role          *string  `json:"role"`
	TrustScore    *float64 `json:"trustScore"`
	IsActive      *bool    `json:"isActive"`
	IsAdmin       *bool    `json:"isAdmin"`
	EmailVerified *bool    `json:"emailVerified"`
	PhoneVerified *bool    `json:"phoneVerified"`
}

// ToPatch converts the request into the service-level patch
func (r AdminPatchUserRequest) ToPatch() account.AdminUserPatch {
	return account.AdminUserPatch{
		Name:          r.Name,
		Status:        r.Status,
		Role:          r.Role,
		TrustScore:    r.TrustScore,
		IsActive:      r.IsActive,
		IsAdmin:       r.IsAdmin,
		EmailVerified: r.EmailVerified,
		PhoneVerified: r.PhoneVerified,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}
