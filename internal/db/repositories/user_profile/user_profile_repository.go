package user_profile

import (
	"context"
	"errors"

	"github.com/MyelinBots/stillalive-go/internal/db"
	"github.com/MyelinBots/stillalive-go/internal/faults"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=user_profile_repository.go -destination=../mocks/mock_user_profile_repository.go -package=mocks

type UserProfileRepository interface {
	GetByUsername(ctx context.Context, username string) (*UserProfile, error)
	List(ctx context.Context) ([]*UserProfile, error)
	// Seed inserts the profile unless the username already exists and
	// reports whether a row was created.
	Seed(ctx context.Context, profile *UserProfile) (bool, error)
	SetPasswordHash(ctx context.Context, username, hash string) error
	SetColor(ctx context.Context, username, color string) error
}

type UserProfileRepositoryImpl struct {
	db *db.DB
}

func NewUserProfileRepository(database *db.DB) UserProfileRepository {
	return &UserProfileRepositoryImpl{db: database}
}

func (r *UserProfileRepositoryImpl) GetByUsername(ctx context.Context, username string) (*UserProfile, error) {
	var u UserProfile
	err := r.db.DB.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, faults.Storage("get user", err)
	}
	return &u, nil
}

func (r *UserProfileRepositoryImpl) List(ctx context.Context) ([]*UserProfile, error) {
	var users []*UserProfile
	if err := r.db.DB.WithContext(ctx).Order("username ASC").Find(&users).Error; err != nil {
		return nil, faults.Storage("list users", err)
	}
	return users, nil
}

func (r *UserProfileRepositoryImpl) Seed(ctx context.Context, profile *UserProfile) (bool, error) {
	res := r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "username"}}, DoNothing: true}).
		Create(profile)
	if res.Error != nil {
		return false, faults.Storage("seed user", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *UserProfileRepositoryImpl) SetPasswordHash(ctx context.Context, username, hash string) error {
	return r.update(ctx, "set password", username, "password_hash", hash)
}

func (r *UserProfileRepositoryImpl) SetColor(ctx context.Context, username, color string) error {
	return r.update(ctx, "set color", username, "color", color)
}

func (r *UserProfileRepositoryImpl) update(ctx context.Context, op, username, column string, value any) error {
	res := r.db.DB.WithContext(ctx).
		Model(&UserProfile{}).
		Where("username = ?", username).
		Update(column, value)
	if res.Error != nil {
		return faults.Storage(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return faults.NotFound("user %q", username)
	}
	return nil
}
