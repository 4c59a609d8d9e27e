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
	ErrAccountEmailExists = errors.New("account email already exists")
	ErrTrainerCodeExists  = errors.New("trainer code already taken")
	ErrAccountNotFound    = errors.New("account not found")
	ErrProfileNotFound    = errors.New("profile not found")
)

type Account struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	Email    string `gorm:"uniqueIndex:uni_accounts_email;not null"`
	Password string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Profile struct {
	// ID equals the owning account ID.
	ID          string `gorm:"type:uuid;primaryKey"`
	TrainerName string `gorm:"not null"`
	TrainerCode string `gorm:"uniqueIndex:uni_profiles_trainer_code;not null"`
	Role        string `gorm:"not null;default:user"`
	Active      bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ProfileDAO struct {
	db *gorm.DB
}

func NewProfileDAO(db *gorm.DB) *ProfileDAO {
	return &ProfileDAO{
		db: db,
	}
}

// InsertAccountWithProfile creates the credential row and its inactive
// profile in one transaction.
func (d *ProfileDAO) InsertAccountWithProfile(ctx context.Context, account Account, profile Profile) (Account, Profile, error) {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	profile.ID = account.ID

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		return tx.Create(&profile).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if strings.Contains(pgErr.Message, `"uni_accounts_email"`) {
				return Account{}, Profile{}, ErrAccountEmailExists
			}
			if strings.Contains(pgErr.Message, `"uni_profiles_trainer_code"`) {
				return Account{}, Profile{}, ErrTrainerCodeExists
			}
		}

		return Account{}, Profile{}, err
	}

	return account, profile, nil
}

func (d *ProfileDAO) FindAccountByEmail(ctx context.Context, email string) (Account, error) {
	var account Account

	result := d.db.WithContext(ctx).First(&account, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Account{}, ErrAccountNotFound
		}

		return Account{}, result.Error
	}

	return account, nil
}

func (d *ProfileDAO) FindAccountByID(ctx context.Context, id string) (Account, error) {
	var account Account

	result := d.db.WithContext(ctx).First(&account, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Account{}, ErrAccountNotFound
		}

		return Account{}, result.Error
	}

	return account, nil
}

func (d *ProfileDAO) UpdateAccountPassword(ctx context.Context, id, passwordHash string) error {
	result := d.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (d *ProfileDAO) FindProfileByID(ctx context.Context, id string) (Profile, error) {
	var profile Profile

	result := d.db.WithContext(ctx).First(&profile, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Profile{}, ErrProfileNotFound
		}

		return Profile{}, result.Error
	}

	return profile, nil
}

func (d *ProfileDAO) FindProfileByTrainerCode(ctx context.Context, trainerCode string) (Profile, error) {
	var profile Profile

	result := d.db.WithContext(ctx).First(&profile, "trainer_code = ?", trainerCode)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Profile{}, ErrProfileNotFound
		}

		return Profile{}, result.Error
	}

	return profile, nil
}

func (d *ProfileDAO) FindProfilesByIDs(ctx context.Context, ids []string) ([]Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var profiles []Profile

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}

	return profiles, nil
}

func (d *ProfileDAO) ListProfiles(ctx context.Context) ([]Profile, error) {
	var profiles []Profile

	result := d.db.WithContext(ctx).Order("trainer_name asc").Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}

	return profiles, nil
}

// SearchProfileIDsByName resolves a trainer-name filter to profile IDs via a
// case-insensitive substring match, capped at limit rows.
func (d *ProfileDAO) SearchProfileIDsByName(ctx context.Context, term string, limit int) ([]string, error) {
	var ids []string

	result := d.db.WithContext(ctx).
		Model(&Profile{}).
		Where("trainer_name ILIKE ?", "%"+term+"%").
		Limit(limit).
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

func (d *ProfileDAO) UpdateProfile(ctx context.Context, profile Profile) (Profile, error) {
	updates := map[string]interface{}{
		"trainer_name": profile.TrainerName,
		"trainer_code": profile.TrainerCode,
		"role":         profile.Role,
		"active":       profile.Active,
	}

	result := d.db.WithContext(ctx).Model(&Profile{}).Where("id = ?", profile.ID).Updates(updates)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `"uni_profiles_trainer_code"`) {
			return Profile{}, ErrTrainerCodeExists
		}

		return Profile{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Profile{}, ErrProfileNotFound
	}

	return d.FindProfileByID(ctx, profile.ID)
}

func (d *ProfileDAO) SetProfileActive(ctx context.Context, id string, active bool) error {
	result := d.db.WithContext(ctx).
		Model(&Profile{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// DeleteAccountCascade removes the account, its profile, and every award it
// holds or delivered. Runs with staff privilege only.
func (d *ProfileDAO) DeleteAccountCascade(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? OR awarded_by = ?", id, id).Delete(&UserStamp{}).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ?", id).Delete(&Profile{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&Account{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAccountNotFound
		}

		return nil
	})
}
