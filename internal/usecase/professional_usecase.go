package usecase

import (
	"context"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

type professionalUsecase struct {
	professionalRepo domain.ProfessionalRepository
}

func NewProfessionalUsecase(repo domain.ProfessionalRepository) domain.ProfessionalUsecase {
	return &professionalUsecase{professionalRepo: repo}
}

func (uc *professionalUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.Professional, error) {
	profile, err := uc.professionalRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Professional profile not found")
	}
	return profile, nil
}

// UpdateMyProfile updates the mutable profile fields. Identity and status
// fields always come from the stored row, never from the request.
func (uc *professionalUsecase) UpdateMyProfile(ctx context.Context, userID string, profile *domain.Professional) (*domain.Professional, error) {
	existing, err := uc.professionalRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Professional profile not found")
	}

	existing.Phone = profile.Phone
	existing.ServiceArea = profile.ServiceArea
	existing.Bio = profile.Bio
	existing.Skills = profile.Skills
	existing.HourlyRate = profile.HourlyRate

	if err := uc.professionalRepo.Update(ctx, existing); err != nil {
		return nil, apperror.Internal(err)
	}
	return existing, nil
}
