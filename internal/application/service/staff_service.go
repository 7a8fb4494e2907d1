package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/enum"
	"github.com/akosiano1/itpm-proj/internal/domain/repository"
	"github.com/akosiano1/itpm-proj/pkg/apperror"
	"github.com/akosiano1/itpm-proj/pkg/mailer"
	"github.com/akosiano1/itpm-proj/pkg/utils"
)

// StaffService provisions and manages staff accounts
type StaffService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	stallRepo   repository.StallRepository
	mailer      *mailer.Mailer
	log         *zap.Logger
}

// NewStaffService creates a new staff service
func NewStaffService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	stallRepo repository.StallRepository,
	m *mailer.Mailer,
	log *zap.Logger,
) *StaffService {
	return &StaffService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		stallRepo:   stallRepo,
		mailer:      m,
		log:         log,
	}
}

// CreateStaffInput represents the staff provisioning input
type CreateStaffInput struct {
	FullName string
	Email    string
	Password string
	StallID  uuid.UUID
}

// CreateStaff provisions a staff account: an identity, its profile bound to
// a stall, and a welcome notice. The notice is best effort; a mail failure
// does not undo the account.
func (s *StaffService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Profile, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.FullName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "full_name", Message: "Full name is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "email", Message: "Email is required"})
	}
	if len(input.Password) < 6 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	stall, err := s.stallRepo.GetByID(ctx, input.StallID)
	if err != nil {
		return nil, err
	}
	if stall == nil {
		return nil, apperror.NewNotFoundError("Stall")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	// Admin-provisioned accounts are confirmed on the spot; the welcome
	// notice is informational, not a confirmation link.
	now := time.Now()
	user := &entity.User{
		ID:               uuid.New(),
		Email:            input.Email,
		Password:         hashed,
		EmailConfirmedAt: &now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	stallID := input.StallID
	profile := &entity.Profile{
		ID:       user.ID,
		FullName: strings.TrimSpace(input.FullName),
		Email:    input.Email,
		Role:     enum.RoleStaff,
		Status:   enum.AccountStatusActive,
		StallID:  &stallID,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		// Roll the identity back so a retry does not hit the email
		// uniqueness constraint.
		if delErr := s.userRepo.Delete(ctx, user.ID); delErr != nil {
			s.log.Warn("failed to roll back orphaned identity",
				zap.String("user_id", user.ID.String()),
				zap.Error(delErr))
		}
		return nil, err
	}

	if err := s.mailer.SendStaffWelcome(input.Email, profile.FullName, stall.StallName); err != nil {
		s.log.Warn("failed to send staff welcome notice",
			zap.String("email", input.Email),
			zap.Error(err))
	}

	profile.Stall = stall
	return profile, nil
}

// StaffRoster groups staff profiles under their assigned stall.
type StaffRoster struct {
	Stall *entity.Stall    `json:"stall,omitempty"`
	Staff []entity.Profile `json:"staff"`
}

// ListStaff returns all staff profiles grouped by stall. Staff without a
// stall assignment appear in a final group with a nil stall.
func (s *StaffService) ListStaff(ctx context.Context) ([]StaffRoster, error) {
	stalls, err := s.stallRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profileRepo.ListByRole(ctx, string(enum.RoleStaff))
	if err != nil {
		return nil, err
	}

	rosters := make([]StaffRoster, 0, len(stalls)+1)
	index := make(map[uuid.UUID]int, len(stalls))
	for i := range stalls {
		rosters = append(rosters, StaffRoster{Stall: &stalls[i], Staff: []entity.Profile{}})
		index[stalls[i].StallID] = i
	}

	var unassigned []entity.Profile
	for _, p := range profiles {
		if p.StallID == nil {
			unassigned = append(unassigned, p)
			continue
		}
		if i, ok := index[*p.StallID]; ok {
			rosters[i].Staff = append(rosters[i].Staff, p)
		} else {
			unassigned = append(unassigned, p)
		}
	}
	if len(unassigned) > 0 {
		rosters = append(rosters, StaffRoster{Staff: unassigned})
	}
	return rosters, nil
}

// DeleteStaff removes a staff account. The profile is the authoritative
// record; if the identity cannot be deleted afterwards the operation still
// succeeds and the orphan is logged.
func (s *StaffService) DeleteStaff(ctx context.Context, staffID uuid.UUID) error {
	profile, err := s.profileRepo.GetByID(ctx, staffID)
	if err != nil {
		return err
	}
	if profile == nil {
		return apperror.NewNotFoundError("Staff member")
	}
	if profile.Role != enum.RoleStaff {
		return apperror.NewBadRequestError("Only staff accounts can be deleted here")
	}

	if err := s.profileRepo.Delete(ctx, staffID); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, staffID); err != nil {
		s.log.Warn("profile removed but identity deletion failed",
			zap.String("user_id", staffID.String()),
			zap.Error(err))
	}
	return nil
}
