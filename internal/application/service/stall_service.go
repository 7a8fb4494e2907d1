package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/enum"
	"github.com/akosiano1/itpm-proj/internal/domain/repository"
	"github.com/akosiano1/itpm-proj/pkg/apperror"
)

// StallService handles stall listing and status administration
type StallService struct {
	stallRepo repository.StallRepository
}

// NewStallService creates a new stall service
func NewStallService(stallRepo repository.StallRepository) *StallService {
	return &StallService{stallRepo: stallRepo}
}

// List returns all stalls
func (s *StallService) List(ctx context.Context) ([]entity.Stall, error) {
	return s.stallRepo.List(ctx)
}

// SetStatusOutput reports a status change. PreviousStatus lets the caller
// roll its view back if it had applied the change optimistically.
type SetStatusOutput struct {
	Stall          *entity.Stall    `json:"stall"`
	PreviousStatus enum.StallStatus `json:"previous_status"`
}

// SetStatus updates a stall's operational status
func (s *StallService) SetStatus(ctx context.Context, stallID uuid.UUID, status enum.StallStatus) (*SetStatusOutput, error) {
	if !status.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "Status must be active, inactive, or under maintenance"},
		})
	}

	stall, err := s.stallRepo.GetByID(ctx, stallID)
	if err != nil {
		return nil, err
	}
	if stall == nil {
		return nil, apperror.NewNotFoundError("Stall")
	}

	previous := stall.Status
	if err := s.stallRepo.UpdateStatus(ctx, stallID, status); err != nil {
		return nil, err
	}
	stall.Status = status

	return &SetStatusOutput{
		Stall:          stall,
		PreviousStatus: previous,
	}, nil
}
