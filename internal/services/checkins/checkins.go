// Package checkins records and queries daily "still alive" check-ins.
package checkins

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	log "log/slog"

	"github.com/MyelinBots/stillalive-go/internal/calendar"
	"github.com/MyelinBots/stillalive-go/internal/db/repositories/checkin"
	"github.com/MyelinBots/stillalive-go/internal/faults"
)

// MaxActivityLength is the longest accepted status message, in runes.
const MaxActivityLength = 280

// State of a single (date, username) check-in.
type State string

const (
	StateAbsent             State = "absent"
	StatePresentNoMessage   State = "present-no-message"
	StatePresentWithMessage State = "present-with-message"
)

func stateOf(activity string, present bool) State {
	switch {
	case !present:
		return StateAbsent
	case activity == "":
		return StatePresentNoMessage
	default:
		return StatePresentWithMessage
	}
}

type DayEntry struct {
	Username string `json:"username"`
	Activity string `json:"activity"`
}

// MonthCheckins maps day of month to username to activity.
type MonthCheckins map[int]map[string]string

type Record struct {
	Date      calendar.Date `json:"date"`
	Username  string        `json:"username"`
	Activity  string        `json:"activity"`
	CreatedAt time.Time     `json:"created_at"`
}

// Roster reports whether a username may check in.
type Roster interface {
	Known(ctx context.Context, username string) (bool, error)
}

type Service interface {
	Upsert(ctx context.Context, date calendar.Date, username, activity string) error
	// Delete is idempotent. Deleting an absent check-in succeeds.
	Delete(ctx context.Context, date calendar.Date, username string) error
	GetDay(ctx context.Context, date calendar.Date) ([]DayEntry, error)
	GetMonth(ctx context.Context, year int, month time.Month) (MonthCheckins, error)
	GetAll(ctx context.Context) ([]Record, error)
	// Save applies the check-in form: alive upserts the message, not alive
	// removes the check-in whatever the message.
	Save(ctx context.Context, date calendar.Date, username string, alive bool, message string) (State, error)
	State(ctx context.Context, date calendar.Date, username string) (State, error)
}

type ServiceImpl struct {
	repo   checkin.CheckinRepository
	roster Roster
}

func NewService(repo checkin.CheckinRepository, roster Roster) Service {
	return &ServiceImpl{repo: repo, roster: roster}
}

func (s *ServiceImpl) Upsert(ctx context.Context, date calendar.Date, username, activity string) error {
	if err := s.validateKey(ctx, date, username); err != nil {
		return err
	}
	normalized, err := normalizeActivity(activity)
	if err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, date, username, normalized); err != nil {
		log.Error("failed to upsert checkin", "date", date.String(), "username", username, "error", err)
		return err
	}
	return nil
}

func (s *ServiceImpl) Delete(ctx context.Context, date calendar.Date, username string) error {
	if err := s.validateKey(ctx, date, username); err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, date, username)
	if err != nil {
		log.Error("failed to delete checkin", "date", date.String(), "username", username, "error", err)
		return err
	}
	if !removed {
		log.Debug("delete of absent checkin", "date", date.String(), "username", username)
	}
	return nil
}

func (s *ServiceImpl) GetDay(ctx context.Context, date calendar.Date) ([]DayEntry, error) {
	if !calendar.IsValid(date.Year, date.Month, date.Day) {
		return nil, faults.Validation("invalid date %q", date.String())
	}
	rows, err := s.repo.GetDay(ctx, date)
	if err != nil {
		return nil, err
	}

	entries := make([]DayEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, DayEntry{Username: r.Username, Activity: r.Message()})
	}
	return entries, nil
}

func (s *ServiceImpl) GetMonth(ctx context.Context, year int, month time.Month) (MonthCheckins, error) {
	start, end, err := calendar.MonthRange(year, month)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.GetRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make(MonthCheckins)
	for _, r := range rows {
		// the range query already bounds the month; guard against drivers
		// that compare dates loosely
		if r.Date.Year != year || r.Date.Month != month {
			continue
		}
		if out[r.Date.Day] == nil {
			out[r.Date.Day] = make(map[string]string)
		}
		out[r.Date.Day][r.Username] = r.Message()
	}
	return out, nil
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Record, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, Record{
			Date:      r.Date,
			Username:  r.Username,
			Activity:  r.Message(),
			CreatedAt: r.CreatedAt,
		})
	}
	return records, nil
}

func (s *ServiceImpl) Save(ctx context.Context, date calendar.Date, username string, alive bool, message string) (State, error) {
	if !alive {
		if err := s.Delete(ctx, date, username); err != nil {
			return "", err
		}
		return StateAbsent, nil
	}

	if err := s.Upsert(ctx, date, username, message); err != nil {
		return "", err
	}
	return stateOf(strings.TrimSpace(message), true), nil
}

func (s *ServiceImpl) State(ctx context.Context, date calendar.Date, username string) (State, error) {
	if err := s.validateKey(ctx, date, username); err != nil {
		return "", err
	}
	row, err := s.repo.Get(ctx, date, username)
	if err != nil {
		return "", err
	}
	if row == nil {
		return StateAbsent, nil
	}
	return stateOf(row.Message(), true), nil
}

func (s *ServiceImpl) validateKey(ctx context.Context, date calendar.Date, username string) error {
	if !calendar.IsValid(date.Year, date.Month, date.Day) {
		return faults.Validation("invalid date %q", date.String())
	}
	if username == "" {
		return faults.Validation("username is required")
	}
	known, err := s.roster.Known(ctx, username)
	if err != nil {
		return err
	}
	if !known {
		return faults.Validation("unknown user %q", username)
	}
	return nil
}

// normalizeActivity trims the message. Empty means no message.
func normalizeActivity(activity string) (*string, error) {
	activity = strings.TrimSpace(activity)
	if activity == "" {
		return nil, nil
	}
	if n := utf8.RuneCountInString(activity); n > MaxActivityLength {
		return nil, faults.Validation("activity is %d characters, the limit is %d", n, MaxActivityLength)
	}
	return &activity, nil
}
