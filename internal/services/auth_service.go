package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"giglink_backend/internal/auth"
	"giglink_backend/internal/email"
	"giglink_backend/internal/logger"
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const refreshTokenTTL = 30 * 24 * time.Hour

// Transactor is the slice of *gorm.DB the service needs: running a function
// inside one transaction.
type Transactor interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type AuthService struct {
	db       Transactor
	users    repositories.UserRepository
	profiles repositories.ProfileRepository
	tokens   repositories.RefreshTokenRepository
	mail     email.Sender
}

func NewAuthService(
	db Transactor,
	users repositories.UserRepository,
	profiles repositories.ProfileRepository,
	tokens repositories.RefreshTokenRepository,
	mail email.Sender,
) *AuthService {
	return &AuthService{
		db:       db,
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		mail:     mail,
	}
}

// Register creates the user and its profile in one transaction so an account
// never exists without a profile.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profileType := models.ProfileType(req.Type)
	if profileType == "" {
		profileType = models.ProfileTypeArtist
	}
	if !models.ValidProfileType(profileType) {
		return nil, apperrors.NewBadRequestError("Unknown profile type: " + req.Type)
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = strings.SplitN(req.Email, "@", 2)[0]
	}

	user := &models.User{
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
	}
	profile := &models.Profile{
		Email:       user.Email,
		Type:        profileType,
		DisplayName: displayName,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.Create(ctx, tx, user); err != nil {
			return err
		}
		profile.ID = user.ID
		return s.profiles.Create(ctx, tx, profile)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	go func() {
		if err := s.mail.SendWelcome(user.Email, profile.DisplayName); err != nil {
			logger.Error("failed to send welcome email", "error", err, "user_id", user.ID)
		}
	}()

	return s.issueTokens(ctx, user.ID, profile)
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	profile, err := s.profiles.FindByID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(ctx, user.ID, profile)
}

// Refresh rotates the refresh token: the presented token is consumed and a
// fresh pair is issued.
func (s *AuthService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.AuthResponse, error) {
	stored, err := s.tokens.FindByToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokens.DeleteByToken(ctx, stored.Token)
		return nil, apperrors.ErrInvalidToken
	}

	profile, err := s.profiles.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.tokens.DeleteByToken(ctx, stored.Token); err != nil &&
		!errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return nil, apperrors.InternalError(err)
	}

	// Opportunistic cleanup; expired rows of any user ride along with the
	// rotation instead of accumulating.
	if err := s.tokens.DeleteExpired(ctx); err != nil {
		logger.Error("failed to prune expired refresh tokens", "error", err)
	}

	return s.issueTokens(ctx, stored.UserID, profile)
}

// Logout invalidates the presented refresh token. An unknown token is
// treated as already logged out.
func (s *AuthService) Logout(ctx context.Context, req dto.LogoutRequest) error {
	err := s.tokens.DeleteByToken(ctx, req.RefreshToken)
	if err != nil && !errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, userID string, profile *models.Profile) (*dto.AuthResponse, error) {
	access, err := auth.GenerateToken(userID, string(profile.Type))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    userID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		Profile:      profile,
	}, nil
}
