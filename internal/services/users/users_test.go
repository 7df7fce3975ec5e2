package users

import (
	"context"
	"strings"
	"testing"

	"github.com/MyelinBots/stillalive-go/config"
	"github.com/MyelinBots/stillalive-go/internal/db/repositories/mocks"
	"github.com/MyelinBots/stillalive-go/internal/db/repositories/user_profile"
	"github.com/MyelinBots/stillalive-go/internal/faults"
	"github.com/MyelinBots/stillalive-go/internal/services/auth"
	"go.uber.org/mock/gomock"
)

func roster() []*user_profile.UserProfile {
	return []*user_profile.UserProfile{
		{Username: "Brother", Color: "#4ECDC4"},
		{Username: "You", Color: "#FF6B6B"},
		{Username: "erik"},
	}
}

func TestPalette_ColorOf(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserProfileRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(roster(), nil)

	p, err := NewService(repo).Palette(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		username string
		want     string
	}{
		{"You", "#FF6B6B"},
		{"Brother", "#4ECDC4"},
		{"erik", DefaultColor},
		{"nobody", DefaultColor},
	}
	for _, tt := range tests {
		if got := p.ColorOf(tt.username); got != tt.want {
			t.Errorf("ColorOf(%q) = %q, want %q", tt.username, got, tt.want)
		}
	}
}

func TestKnownAndResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserProfileRepository(ctrl)
	repo.EXPECT().GetByUsername(gomock.Any(), "erik").Return(&user_profile.UserProfile{Username: "erik"}, nil)
	repo.EXPECT().GetByUsername(gomock.Any(), "Erik").Return(nil, nil)
	repo.EXPECT().List(gomock.Any()).Return(roster(), nil).AnyTimes()
	s := NewService(repo)
	ctx := context.Background()

	if ok, _ := s.Known(ctx, "erik"); !ok {
		t.Error("erik should be known")
	}
	if ok, _ := s.Known(ctx, "Erik"); ok {
		t.Error("Known must match exactly")
	}
	if ok, _ := s.Known(ctx, ""); ok {
		t.Error("empty username is never known")
	}

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"you", "You", true},
		{" BROTHER ", "Brother", true},
		{"erik", "erik", true},
		{"stranger", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok, err := s.Resolve(ctx, tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want || ok != tt.ok {
				t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSetColor(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserProfileRepository(ctrl)
	repo.EXPECT().SetColor(gomock.Any(), "erik", "#A1B2C3").Return(nil)
	s := NewService(repo)

	if err := s.SetColor(context.Background(), "erik", "#a1b2c3"); err != nil {
		t.Fatalf("valid color rejected: %v", err)
	}
	for _, bad := range []string{"", "red", "#12345", "#GGGGGG", "#11223344", "#abc", "#abcd"} {
		if err := s.SetColor(context.Background(), "erik", bad); !faults.IsValidation(err) {
			t.Errorf("SetColor(%q) = %v, want validation fault", bad, err)
		}
	}
}

func TestSetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserProfileRepository(ctrl)

	var stored string
	repo.EXPECT().SetPasswordHash(gomock.Any(), "erik", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, hash string) error {
			stored = hash
			return nil
		})
	s := NewService(repo)

	if err := s.SetPassword(context.Background(), "erik", "weak"); !faults.IsValidation(err) {
		t.Errorf("weak password: %v", err)
	}
	if err := s.SetPassword(context.Background(), "erik", "hiking2024"); err != nil {
		t.Fatal(err)
	}
	if stored == "hiking2024" || !strings.HasPrefix(stored, "$2") {
		t.Errorf("stored value %q is not a bcrypt hash", stored)
	}
	if err := auth.CheckPasswordHash("hiking2024", stored); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestSeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserProfileRepository(ctrl)
	repo.EXPECT().Seed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *user_profile.UserProfile) (bool, error) {
			if p.Username == "erik" && !p.HasPassword() {
				t.Error("erik should be seeded with a password hash")
			}
			return p.Username != "You", nil
		}).Times(3)
	s := NewService(repo)

	created, err := s.Seed(context.Background(), []config.UserConfig{
		{Username: "You", Color: "#FF6B6B"},
		{Username: "Brother", Color: "#4ecdc4"},
		{Username: "erik", Password: "hiking2024"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if created != 2 {
		t.Errorf("created = %d, want 2", created)
	}

	if _, err := s.Seed(context.Background(), []config.UserConfig{{Username: "x", Color: "blue"}}); !faults.IsValidation(err) {
		t.Errorf("bad seed color: %v", err)
	}
	if _, err := s.Seed(context.Background(), []config.UserConfig{{Username: "  "}}); !faults.IsValidation(err) {
		t.Errorf("blank username: %v", err)
	}
}
