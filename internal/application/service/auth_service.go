package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/enum"
	"github.com/akosiano1/itpm-proj/internal/domain/rbac"
	"github.com/akosiano1/itpm-proj/internal/domain/repository"
	"github.com/akosiano1/itpm-proj/pkg/apperror"
	"github.com/akosiano1/itpm-proj/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtManager  *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtManager:  jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	Profile      *entity.Profile
	Role         string
	Capabilities []string
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens. The profile's role and the
// capability set it grants are resolved here, once, and carried in the
// access token claims.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	profile, err := s.profileRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile != nil && profile.Status == enum.AccountStatusInactive {
		return nil, apperror.NewAppError(http.StatusForbidden, "Account is inactive")
	}

	role := string(rbac.RoleOf(profile))
	capabilities := rbac.CapabilitySet(profile)

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, role, capabilities)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		Profile:      profile,
		Role:         role,
		Capabilities: capabilities,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken issues a new token pair from a valid refresh token. The
// capability set is re-resolved from the current profile, so a role change
// takes effect at the next refresh.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUnauthorized
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	role := string(rbac.RoleOf(profile))
	capabilities := rbac.CapabilitySet(profile)

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, role, capabilities)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		Profile:      profile,
		Role:         role,
		Capabilities: capabilities,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// GetProfile returns the profile for a user id
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}
	return profile, nil
}
