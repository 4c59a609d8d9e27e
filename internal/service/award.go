package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/pkg/claimqr"
	"github.com/pokeolivos/pokeolivos-api/internal/pkg/trainercode"
	"github.com/pokeolivos/pokeolivos-api/internal/repository"
)

var (
	ErrTrainerNotFound     = errors.New("no trainer found with that code")
	ErrTrainerDisabled     = errors.New("that trainer is disabled")
	ErrStampAlreadyAwarded = repository.ErrStampAlreadyAwarded
	ErrStampNotInContext   = errors.New("stamp does not belong to that collection and event")
	ErrAwardNotFound       = repository.ErrAwardNotFound
	ErrNotClaimOwner       = errors.New("claim code belongs to another trainer")
)

type AwardProfileRepository interface {
	FindByTrainerCode(ctx context.Context, trainerCode string) (domain.Profile, error)
}

type AwardRepository interface {
	Create(ctx context.Context, award domain.UserStamp) (domain.UserStamp, error)
	FindByClaimCode(ctx context.Context, claimCode string) (domain.UserStamp, error)
}

type AwardCatalogRepository interface {
	HasLink(ctx context.Context, eventID, collectionID, stampID string) (bool, error)
}

type AwardService struct {
	repo        AwardRepository
	profileRepo AwardProfileRepository
	catalogRepo AwardCatalogRepository
}

func NewAwardService(repo AwardRepository, profileRepo AwardProfileRepository, catalogRepo AwardCatalogRepository) *AwardService {
	return &AwardService{
		repo:        repo,
		profileRepo: profileRepo,
		catalogRepo: catalogRepo,
	}
}

// ResolveTrainer turns a typed or scanned code into the recipient profile.
// Inactive trainers resolve to ErrTrainerDisabled so staff see why, not just
// that nothing matched.
func (s *AwardService) ResolveTrainer(ctx context.Context, rawCode string) (domain.TrainerMatch, error) {
	code, err := trainercode.Normalize(rawCode)
	if err != nil {
		return domain.TrainerMatch{}, err
	}

	profile, err := s.profileRepo.FindByTrainerCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domain.TrainerMatch{}, ErrTrainerNotFound
		}

		return domain.TrainerMatch{}, fmt.Errorf("s.profileRepo.FindByTrainerCode -> %w", err)
	}

	if !profile.Active {
		return domain.TrainerMatch{}, ErrTrainerDisabled
	}

	return domain.TrainerMatch{
		UserID:      profile.ID,
		TrainerName: profile.TrainerName,
	}, nil
}

// Award hands the stamp to the resolved trainer. The (stamp, collection,
// event) triple must exist in the link tables; the second award of the same
// stamp to the same trainer surfaces the unique-index conflict as
// ErrStampAlreadyAwarded rather than a failure.
func (s *AwardService) Award(ctx context.Context, staffID, userID, stampID, collectionID, eventID string) (domain.UserStamp, error) {
	linked, err := s.catalogRepo.HasLink(ctx, eventID, collectionID, stampID)
	if err != nil {
		return domain.UserStamp{}, fmt.Errorf("s.catalogRepo.HasLink -> %w", err)
	}
	if !linked {
		return domain.UserStamp{}, ErrStampNotInContext
	}

	created, err := s.repo.Create(ctx, domain.UserStamp{
		UserID:       userID,
		StampID:      stampID,
		CollectionID: collectionID,
		EventID:      eventID,
		AwardedBy:    staffID,
	})
	if err != nil {
		return domain.UserStamp{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ClaimQR renders the verification QR for a claim code. When requesterID is
// set, the award must belong to that trainer; staff pass "" and may render
// any claim.
func (s *AwardService) ClaimQR(ctx context.Context, requesterID, claimCode string, size int) ([]byte, error) {
	award, err := s.repo.FindByClaimCode(ctx, claimCode)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByClaimCode -> %w", err)
	}

	if requesterID != "" && award.UserID != requesterID {
		return nil, ErrNotClaimOwner
	}

	png, err := claimqr.Render(award.ClaimCode, size)
	if err != nil {
		return nil, fmt.Errorf("claimqr.Render -> %w", err)
	}

	return png, nil
}
