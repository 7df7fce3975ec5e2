// Package users manages the check-in roster and each member's display color.
package users

import (
	"context"
	"fmt"
	"sort"
	"strings"

	log "log/slog"

	"github.com/MyelinBots/stillalive-go/config"
	"github.com/MyelinBots/stillalive-go/internal/db/repositories/user_profile"
	"github.com/MyelinBots/stillalive-go/internal/faults"
	"github.com/MyelinBots/stillalive-go/internal/services/auth"
	"github.com/go-playground/validator/v10"
)

// DefaultColor is used for users without an assigned color.
const DefaultColor = "#888888"

// Palette maps usernames to display colors.
type Palette map[string]string

func (p Palette) ColorOf(username string) string {
	if c, ok := p[username]; ok && c != "" {
		return c
	}
	return DefaultColor
}

type Service interface {
	// Known reports whether username is on the roster. The match is exact.
	Known(ctx context.Context, username string) (bool, error)
	// Resolve returns the roster spelling of name, matched case-insensitively.
	Resolve(ctx context.Context, name string) (string, bool, error)
	List(ctx context.Context) ([]*user_profile.UserProfile, error)
	Palette(ctx context.Context) (Palette, error)
	SetColor(ctx context.Context, username, color string) error
	SetPassword(ctx context.Context, username, password string) error
	// Seed inserts missing roster members and returns how many were created.
	Seed(ctx context.Context, seed []config.UserConfig) (int, error)
}

type ServiceImpl struct {
	repo     user_profile.UserProfileRepository
	validate *validator.Validate
}

func NewService(repo user_profile.UserProfileRepository) Service {
	return &ServiceImpl{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *ServiceImpl) Known(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, nil
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func (s *ServiceImpl) Resolve(ctx context.Context, name string) (string, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, nil
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return "", false, err
	}
	for _, u := range list {
		if u.Username == name {
			return u.Username, true, nil
		}
	}
	for _, u := range list {
		if strings.EqualFold(u.Username, name) {
			return u.Username, true, nil
		}
	}
	return "", false, nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]*user_profile.UserProfile, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Username < list[j].Username
	})
	return list, nil
}

func (s *ServiceImpl) Palette(ctx context.Context) (Palette, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	p := make(Palette, len(list))
	for _, u := range list {
		if u.Color != "" {
			p[u.Username] = u.Color
		}
	}
	return p, nil
}

func (s *ServiceImpl) SetColor(ctx context.Context, username, color string) error {
	if err := s.validateColor(color); err != nil {
		return err
	}
	return s.repo.SetColor(ctx, username, strings.ToUpper(color))
}

func (s *ServiceImpl) SetPassword(ctx context.Context, username, password string) error {
	if err := auth.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.SetPasswordHash(ctx, username, hash)
}

func (s *ServiceImpl) Seed(ctx context.Context, seed []config.UserConfig) (int, error) {
	created := 0
	for _, uc := range seed {
		username := strings.TrimSpace(uc.Username)
		if username == "" {
			return created, faults.Validation("seed user without a username")
		}
		if uc.Color != "" {
			if err := s.validateColor(uc.Color); err != nil {
				return created, fmt.Errorf("seed %s: %w", username, err)
			}
		}

		profile := &user_profile.UserProfile{
			Username: username,
			Color:    strings.ToUpper(uc.Color),
		}
		if uc.Password != "" {
			hash, err := auth.HashPassword(uc.Password)
			if err != nil {
				return created, fmt.Errorf("seed %s: %w", username, err)
			}
			profile.PasswordHash = hash
		}

		ok, err := s.repo.Seed(ctx, profile)
		if err != nil {
			return created, err
		}
		if ok {
			created++
			log.Info("seeded user", "username", username)
		}
	}
	return created, nil
}

func (s *ServiceImpl) validateColor(color string) error {
	if err := s.validate.Var(color, "required,hexcolor,len=7"); err != nil {
		return faults.Validation("invalid color %q: expected #RRGGBB", color)
	}
	return nil
}
