package checkin

import (
	"context"
	"errors"

	"github.com/MyelinBots/stillalive-go/internal/calendar"
	"github.com/MyelinBots/stillalive-go/internal/db"
	"github.com/MyelinBots/stillalive-go/internal/faults"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=checkin_repository.go -destination=../mocks/mock_checkin_repository.go -package=mocks

type CheckinRepository interface {
	// Upsert inserts the (date, username) row or replaces its activity in a
	// single statement.
	Upsert(ctx context.Context, date calendar.Date, username string, activity *string) error
	// Delete removes the row if present and reports whether it existed.
	Delete(ctx context.Context, date calendar.Date, username string) (bool, error)
	Get(ctx context.Context, date calendar.Date, username string) (*Checkin, error)
	GetDay(ctx context.Context, date calendar.Date) ([]*Checkin, error)
	// GetRange returns rows with start <= date < end.
	GetRange(ctx context.Context, start, end calendar.Date) ([]*Checkin, error)
	GetAll(ctx context.Context) ([]*Checkin, error)
}

type CheckinRepositoryImpl struct {
	db *db.DB
}

func NewCheckinRepository(database *db.DB) CheckinRepository {
	return &CheckinRepositoryImpl{db: database}
}

func (r *CheckinRepositoryImpl) Upsert(ctx context.Context, date calendar.Date, username string, activity *string) error {
	row := &Checkin{
		Date:     date,
		Username: username,
		Activity: activity,
	}

	err := r.db.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"activity"}),
	}).Create(row).Error
	return faults.Storage("upsert checkin", err)
}

func (r *CheckinRepositoryImpl) Delete(ctx context.Context, date calendar.Date, username string) (bool, error) {
	res := r.db.DB.WithContext(ctx).
		Where("date = ? AND username = ?", date, username).
		Delete(&Checkin{})
	if res.Error != nil {
		return false, faults.Storage("delete checkin", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *CheckinRepositoryImpl) Get(ctx context.Context, date calendar.Date, username string) (*Checkin, error) {
	var c Checkin
	err := r.db.DB.WithContext(ctx).
		Where("date = ? AND username = ?", date, username).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, faults.Storage("get checkin", err)
	}
	return &c, nil
}

func (r *CheckinRepositoryImpl) GetDay(ctx context.Context, date calendar.Date) ([]*Checkin, error) {
	var rows []*Checkin
	if err := r.db.DB.WithContext(ctx).
		Where("date = ?", date).
		Order("username ASC").
		Find(&rows).Error; err != nil {
		return nil, faults.Storage("get day checkins", err)
	}
	return rows, nil
}

func (r *CheckinRepositoryImpl) GetRange(ctx context.Context, start, end calendar.Date) ([]*Checkin, error) {
	var rows []*Checkin
	if err := r.db.DB.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").
		Order("username ASC").
		Find(&rows).Error; err != nil {
		return nil, faults.Storage("get checkin range", err)
	}
	return rows, nil
}

func (r *CheckinRepositoryImpl) GetAll(ctx context.Context) ([]*Checkin, error) {
	var rows []*Checkin
	if err := r.db.DB.WithContext(ctx).
		Order("date DESC").
		Order("username ASC").
		Find(&rows).Error; err != nil {
		return nil, faults.Storage("get all checkins", err)
	}
	return rows, nil
}
