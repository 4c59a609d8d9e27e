package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pokeolivos/pokeolivos-api/internal/domain"
	"github.com/pokeolivos/pokeolivos-api/internal/repository/dao"
)

var (
	ErrStampAlreadyAwarded = dao.ErrStampAlreadyAwarded
	ErrAwardNotFound       = dao.ErrAwardNotFound
)

// AwardQuery mirrors dao.AwardQuery at the domain boundary. Nil slices mean
// the corresponding filter is inactive.
type AwardQuery struct {
	EventIDs      []string
	CollectionIDs []string
	StampIDs      []string
	UserIDs       []string
	AwardedByIDs  []string
	ClaimCode     string
	DayStart      *time.Time
	DayEnd        *time.Time
	Offset        int
	Limit         int
}

type AwardDAO interface {
	Insert(ctx context.Context, award dao.UserStamp) (dao.UserStamp, error)
	FindByUserID(ctx context.Context, userID string) ([]dao.UserStamp, error)
	FindByClaimCode(ctx context.Context, claimCode string) (dao.UserStamp, error)
	Search(ctx context.Context, query dao.AwardQuery) ([]dao.UserStamp, int64, error)
}

type AwardRepository struct {
	dao AwardDAO
}

func NewAwardRepository(dao AwardDAO) *AwardRepository {
	return &AwardRepository{
		dao: dao,
	}
}

func (r *AwardRepository) Create(ctx context.Context, award domain.UserStamp) (domain.UserStamp, error) {
	created, err := r.dao.Insert(ctx, dao.UserStamp{
		UserID:       award.UserID,
		StampID:      award.StampID,
		CollectionID: award.CollectionID,
		EventID:      award.EventID,
		AwardedBy:    award.AwardedBy,
	})
	if err != nil {
		return domain.UserStamp{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AwardRepository) FindByUserID(ctx context.Context, userID string) ([]domain.UserStamp, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	awards := make([]domain.UserStamp, 0, len(found))
	for _, a := range found {
		awards = append(awards, r.daoToDomain(a))
	}

	return awards, nil
}

func (r *AwardRepository) FindByClaimCode(ctx context.Context, claimCode string) (domain.UserStamp, error) {
	found, err := r.dao.FindByClaimCode(ctx, claimCode)
	if err != nil {
		return domain.UserStamp{}, fmt.Errorf("r.dao.FindByClaimCode -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AwardRepository) Search(ctx context.Context, query AwardQuery) ([]domain.UserStamp, int64, error) {
	found, total, err := r.dao.Search(ctx, dao.AwardQuery{
		EventIDs:      query.EventIDs,
		CollectionIDs: query.CollectionIDs,
		StampIDs:      query.StampIDs,
		UserIDs:       query.UserIDs,
		AwardedByIDs:  query.AwardedByIDs,
		ClaimCode:     query.ClaimCode,
		DayStart:      query.DayStart,
		DayEnd:        query.DayEnd,
		Offset:        query.Offset,
		Limit:         query.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.Search -> %w", err)
	}

	awards := make([]domain.UserStamp, 0, len(found))
	for _, a := range found {
		awards = append(awards, r.daoToDomain(a))
	}

	return awards, total, nil
}

func (r *AwardRepository) daoToDomain(a dao.UserStamp) domain.UserStamp {
	return domain.UserStamp{
		ID:           a.ID,
		UserID:       a.UserID,
		StampID:      a.StampID,
		CollectionID: a.CollectionID,
		EventID:      a.EventID,
		AwardedBy:    a.AwardedBy,
		AwardedAt:    a.AwardedAt,
		ClaimCode:    a.ClaimCode,
	}
}
