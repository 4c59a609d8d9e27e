package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrStampAlreadyAwarded = errors.New("trainer already has this stamp")
	ErrAwardNotFound       = errors.New("award not found")
)

type UserStamp struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	UserID       string `gorm:"type:uuid;not null;uniqueIndex:uni_user_stamps_user_stamp"`
	StampID      string `gorm:"type:uuid;not null;uniqueIndex:uni_user_stamps_user_stamp"`
	CollectionID string `gorm:"type:uuid;not null"`
	EventID      string `gorm:"type:uuid;not null"`
	AwardedBy    string `gorm:"type:uuid;not null"`

	AwardedAt time.Time `gorm:"not null"`
	ClaimCode string    `gorm:"not null"`
}

func (UserStamp) TableName() string {
	return "user_stamps"
}

// AwardQuery narrows the log listing. Nil ID slices mean "filter inactive";
// an empty non-nil slice would have short-circuited earlier.
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

type AwardDAO struct {
	db *gorm.DB
}

func NewAwardDAO(db *gorm.DB) *AwardDAO {
	return &AwardDAO{
		db: db,
	}
}

// Insert creates the award row. The claim code is generated here, never
// supplied by the caller. A violation of the (user, stamp) unique index maps
// to ErrStampAlreadyAwarded.
func (d *AwardDAO) Insert(ctx context.Context, award UserStamp) (UserStamp, error) {
	award.ID = uuid.NewString()
	award.ClaimCode = newClaimCode()
	if award.AwardedAt.IsZero() {
		award.AwardedAt = time.Now().UTC()
	}

	result := d.db.WithContext(ctx).Create(&award)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `"uni_user_stamps_user_stamp"`) {
			return UserStamp{}, ErrStampAlreadyAwarded
		}

		return UserStamp{}, result.Error
	}

	return award, nil
}

func (d *AwardDAO) FindByUserID(ctx context.Context, userID string) ([]UserStamp, error) {
	var awards []UserStamp

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("awarded_at desc").
		Find(&awards)
	if result.Error != nil {
		return nil, result.Error
	}

	return awards, nil
}

func (d *AwardDAO) FindByClaimCode(ctx context.Context, claimCode string) (UserStamp, error) {
	var award UserStamp

	result := d.db.WithContext(ctx).First(&award, "claim_code = ?", claimCode)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return UserStamp{}, ErrAwardNotFound
		}

		return UserStamp{}, result.Error
	}

	return award, nil
}

// Search returns one page of award rows plus the exact total match count.
func (d *AwardDAO) Search(ctx context.Context, query AwardQuery) ([]UserStamp, int64, error) {
	q := d.db.WithContext(ctx).Model(&UserStamp{})

	if query.EventIDs != nil {
		q = q.Where("event_id IN ?", query.EventIDs)
	}
	if query.CollectionIDs != nil {
		q = q.Where("collection_id IN ?", query.CollectionIDs)
	}
	if query.StampIDs != nil {
		q = q.Where("stamp_id IN ?", query.StampIDs)
	}
	if query.UserIDs != nil {
		q = q.Where("user_id IN ?", query.UserIDs)
	}
	if query.AwardedByIDs != nil {
		q = q.Where("awarded_by IN ?", query.AwardedByIDs)
	}
	if query.ClaimCode != "" {
		q = q.Where("claim_code ILIKE ?", "%"+query.ClaimCode+"%")
	}
	if query.DayStart != nil {
		q = q.Where("awarded_at >= ?", *query.DayStart)
	}
	if query.DayEnd != nil {
		q = q.Where("awarded_at < ?", *query.DayEnd)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var awards []UserStamp
	result := q.Order("awarded_at desc").Offset(query.Offset).Limit(query.Limit).Find(&awards)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return awards, total, nil
}

// newClaimCode builds the opaque verification token rendered as a QR on the
// album view.
func newClaimCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
