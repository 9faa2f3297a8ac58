package account

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shelfshare/internal/lenderrors"
	"shelfshare/internal/models"
	"shelfshare/internal/repository"
	"shelfshare/utils"
)

// AccountService defines the business logic for registration, login and
// profile management
type AccountService struct {
	store  repository.LendingStore
	tokens *TokenIssuer
}

// NewAccountService creates a new AccountService instance
func NewAccountService(store repository.LendingStore, tokens *TokenIssuer) *AccountService {
	return &AccountService{store: store, tokens: tokens}
}

// RegisterInput carries the signup fields
type RegisterInput struct {
	Name       string
	Email      string
	Phone      string
	Password   string
	Address    string
	City       string
	District   string
	PostalCode string
	Latitude   float64
	Longitude  float64
}

// ProfilePatch is an explicit shallow-merge patch: only non-nil fields are
// applied to the stored record.
type ProfilePatch struct {
	Name            *string
	Phone           *string
	Bio             *string
	ProfileImageURL *string
	Avatar          *string
	Address         *string
	City            *string
	District        *string
	PostalCode      *string
	Latitude        *float64
	Longitude       *float64
}

// AdminUserPatch is the shallow-merge patch the admin screen applies
type AdminUserPatch struct {
	Name          *string
	Status        *string
	Role          *string
	TrustScore    *float64
	IsActive      *bool
	IsAdmin       *bool
	EmailVerified *bool
	PhoneVerified *bool
}

// SearchPage is the paged search envelope the front end expects
type SearchPage struct {
	Content          []models.User `json:"content"`
	TotalElements    int           `json:"totalElements"`
	TotalPages       int           `json:"totalPages"`
	Size             int           `json:"size"`
	Number           int           `json:"number"`
	First            bool          `json:"first"`
	Last             bool          `json:"last"`
	NumberOfElements int           `json:"numberOfElements"`
	Empty            bool          `json:"empty"`
}

// Stats aggregates the admin dashboard counters
type Stats struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	VerifiedUsers int `json:"verifiedUsers"`
	AdminUsers    int `json:"adminUsers"`
}

// Register validates email and phone uniqueness, creates the user with
// default statistics, points the session at it and returns the auth envelope.
func (s *AccountService) Register(input RegisterInput) (models.User, AuthTokens, error) {
	if _, exists := s.store.FindUserByEmail(input.Email); exists {
		return models.User{}, AuthTokens{}, fmt.Errorf("service: register %s: %w", input.Email, lenderrors.ErrEmailExists)
	}
	if input.Phone != "" {
		if _, exists := s.store.FindUserByPhone(input.Phone); exists {
			return models.User{}, AuthTokens{}, fmt.Errorf("service: register %s: %w", input.Email, lenderrors.ErrPhoneExists)
		}
	}

	name := input.Name
	if name == "" {
		name = "New User"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, AuthTokens{}, fmt.Errorf("service: hash password: %w", err)
	}

	user := models.User{
		UserID:       utils.NewEntityID("user"),
		Name:         name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Address:      input.Address,
		City:         input.City,
		District:     input.District,
		PostalCode:   input.PostalCode,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		TrustScore:   50.0,
		Role:         "USER",
		Status:       "ACTIVE",
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Reputation:   5.0,
		Avatar:       avatarURL(name),
		IsActive:     true,
		Roles:        []string{"USER"},
	}

	s.store.AddUser(user)
	s.store.SetSessionUser(user.UserID)

	tokens, err := s.tokens.Issue(user)
	if err != nil {
		return models.User{}, AuthTokens{}, fmt.Errorf("service: issue tokens: %w", err)
	}
	return user, tokens, nil
}

// Login matches email-or-phone case-insensitively. An unknown identifier
// returns ErrInvalidCredentials without touching the session pointer. The
// password is verified only when the record carries a hash: seeded users
// don't, so any password logs them in during development.
func (s *AccountService) Login(emailOrPhone, password string) (models.User, AuthTokens, error) {
	query := strings.TrimSpace(emailOrPhone)
	if query == "" {
		return models.User{}, AuthTokens{}, fmt.Errorf("service: %w - email or phone is required", lenderrors.ErrInvalidInput)
	}

	user, ok := s.store.FindUserByEmail(query)
	if !ok {
		user, ok = s.store.FindUserByPhone(query)
	}
	if !ok {
		return models.User{}, AuthTokens{}, fmt.Errorf("service: login %s: %w", query, lenderrors.ErrInvalidCredentials)
	}

	if user.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return models.User{}, AuthTokens{}, fmt.Errorf("service: login %s: %w", query, lenderrors.ErrInvalidCredentials)
		}
	}

	s.store.SetSessionUser(user.UserID)
	updated, err := s.store.UpdateUser(user.UserID, func(u *models.User) {
		u.LastLoginAt = time.Now().UTC().Format(time.RFC3339)
	})
	if err == nil {
		user = updated
	}

	tokens, err := s.tokens.Issue(user)
	if err != nil {
		return models.User{}, AuthTokens{}, fmt.Errorf("service: issue tokens: %w", err)
	}
	return user, tokens, nil
}

// CurrentUser returns the session user
func (s *AccountService) CurrentUser() (models.User, error) {
	user, err := s.store.SessionUser()
	if err != nil {
		return models.User{}, fmt.Errorf("service: current user: %w", err)
	}
	return user, nil
}

// UpdateProfile shallow-merges the provided fields into the session user's
// record in place.
func (s *AccountService) UpdateProfile(patch ProfilePatch) (models.User, error) {
	current, err := s.store.SessionUser()
	if err != nil {
		return models.User{}, fmt.Errorf("service: update profile: %w", err)
	}

	updated, err := s.store.UpdateUser(current.UserID, func(u *models.User) {
		applyIfSet(&u.Name, patch.Name)
		applyIfSet(&u.Phone, patch.Phone)
		applyIfSet(&u.Bio, patch.Bio)
		applyIfSet(&u.ProfileImageURL, patch.ProfileImageURL)
		applyIfSet(&u.Avatar, patch.Avatar)
		applyIfSet(&u.Address, patch.Address)
		applyIfSet(&u.City, patch.City)
		applyIfSet(&u.District, patch.District)
		applyIfSet(&u.PostalCode, patch.PostalCode)
		if patch.Latitude != nil {
			u.Latitude = *patch.Latitude
		}
		if patch.Longitude != nil {
			u.Longitude = *patch.Longitude
		}
	})
	if err != nil {
		return models.User{}, fmt.Errorf("service: update profile for user %s: %w", current.UserID, err)
	}
	return updated, nil
}

// GetUser returns a user by identifier
func (s *AccountService) GetUser(userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", lenderrors.ErrInvalidInput)
	}
	user, err := s.store.GetUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// UpdateTrustScore sets a user's trust score from the admin endpoint. When no
// valid score is supplied the existing value is kept, defaulting to 75 if
// the record never had one.
func (s *AccountService) UpdateTrustScore(userID string, score *float64) (models.User, error) {
	updated, err := s.store.UpdateUser(userID, func(u *models.User) {
		switch {
		case score != nil:
			u.TrustScore = *score
		case u.TrustScore == 0:
			u.TrustScore = 75
		}
	})
	if err != nil {
		return models.User{}, fmt.Errorf("service: update trust score for user %s: %w", userID, err)
	}
	return updated, nil
}

// SearchUsers filters users by keyword over name/email/phone and pages the
// result into the envelope the front end expects.
func (s *AccountService) SearchUsers(keyword string, page, size int) (SearchPage, error) {
	if _, err := s.store.SessionUser(); err != nil {
		return SearchPage{}, fmt.Errorf("service: search users: %w", err)
	}
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}

	kw := strings.ToLower(strings.TrimSpace(keyword))
	all := s.store.ListUsers()
	filtered := all
	if kw != "" {
		filtered = make([]models.User, 0)
		for _, u := range all {
			if strings.Contains(strings.ToLower(u.Name), kw) ||
				strings.Contains(strings.ToLower(u.Email), kw) ||
				(u.Phone != "" && strings.Contains(strings.ToLower(u.Phone), kw)) {
				filtered = append(filtered, u)
			}
		}
	}

	start := page * size
	end := start + size
	paged := []models.User{}
	if start < len(filtered) {
		if end > len(filtered) {
			end = len(filtered)
		}
		paged = filtered[start:end]
	}

	totalPages := (len(filtered) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	return SearchPage{
		Content:          paged,
		TotalElements:    len(filtered),
		TotalPages:       totalPages,
		Size:             size,
		Number:           page,
		First:            page == 0,
		Last:             start+size >= len(filtered),
		NumberOfElements: len(paged),
		Empty:            len(paged) == 0,
	}, nil
}

// AdminStats aggregates the dashboard counters. "Verified" is the trust-score
// threshold the original dashboard uses, not the email/phone flags.
func (s *AccountService) AdminStats() (Stats, error) {
	if _, err := s.store.SessionUser(); err != nil {
		return Stats{}, fmt.Errorf("service: admin stats: %w", err)
	}

	stats := Stats{}
	for _, u := range s.store.ListUsers() {
		stats.TotalUsers++
		if u.IsActive {
			stats.ActiveUsers++
		}
		if u.TrustScore >= 80 {
			stats.VerifiedUsers++
		}
		if u.IsAdmin {
			stats.AdminUsers++
		}
	}
	return stats, nil
}

// AdminListUsers returns every user, enriched with the derived display fields
// the admin table shows. The enrichment is view-only and never persisted.
func (s *AccountService) AdminListUsers() []models.User {
	users := s.store.ListUsers()
	for i := range users {
		if users[i].BooksShared == 0 {
			users[i].BooksShared = rand.Intn(10) + 1
		}
	}
	return users
}

// AdminPatchUser shallow-merges the provided fields into the user record
func (s *AccountService) AdminPatchUser(userID string, patch AdminUserPatch) (models.User, error) {
	updated, err := s.store.UpdateUser(userID, func(u *models.User) {
		applyIfSet(&u.Name, patch.Name)
		applyIfSet(&u.Status, patch.Status)
		applyIfSet(&u.Role, patch.Role)
		if patch.TrustScore != nil {
			u.TrustScore = *patch.TrustScore
		}
		if patch.IsActive != nil {
			u.IsActive = *patch.IsActive
		}
		if patch.IsAdmin != nil {
			u.IsAdmin = *patch.IsAdmin
		}
		if patch.EmailVerified != nil {
			u.EmailVerified = *patch.EmailVerified
		}
		if patch.PhoneVerified != nil {
			u.PhoneVerified = *patch.PhoneVerified
		}
	})
	if err != nil {
		return models.User{}, fmt.Errorf("service: admin patch user %s: %w", userID, err)
	}
	return updated, nil
}

// ChangePassword re-hashes the session user's password. The current password
// is verified only when the record carries a hash.
func (s *AccountService) ChangePassword(currentPassword, newPassword string) error {
	user, err := s.store.SessionUser()
	if err != nil {
		return fmt.Errorf("service: change password: %w", err)
	}
	if user.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
			return fmt.Errorf("service: change password for user %s: %w", user.UserID, lenderrors.ErrInvalidCredentials)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: hash password: %w", err)
	}
	_, err = s.store.UpdateUser(user.UserID, func(u *models.User) {
		u.PasswordHash = string(hash)
	})
	return err
}

// VerifyEmail marks the session user's email as verified
func (s *AccountService) VerifyEmail() error {
	return s.setVerified(func(u *models.User) { u.EmailVerified = true })
}

// VerifyPhone marks the session user's phone as verified
func (s *AccountService) VerifyPhone() error {
	return s.setVerified(func(u *models.User) { u.PhoneVerified = true })
}

func (s *AccountService) setVerified(apply func(*models.User)) error {
	user, err := s.store.SessionUser()
	if err != nil {
		return fmt.Errorf("service: verify: %w", err)
	}
	_, err = s.store.UpdateUser(user.UserID, apply)
	return err
}

// applyIfSet copies a patch field into the record when the patch supplied it
func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// avatarURL builds the deterministic placeholder avatar assigned at signup
func avatarURL(name string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(name)
}
