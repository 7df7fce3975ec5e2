package user_profile

import (
	"context"
	"testing"

	"github.com/MyelinBots/stillalive-go/internal/db/dbtest"
	"github.com/MyelinBots/stillalive-go/internal/faults"
)

func TestSeed_DoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	repo := NewUserProfileRepository(dbtest.NewSQLite(t))

	created, err := repo.Seed(ctx, &UserProfile{Username: "You", Color: "#FF6B6B"})
	if err != nil || !created {
		t.Fatalf("first seed: created=%v err=%v", created, err)
	}

	created, err = repo.Seed(ctx, &UserProfile{Username: "You", Color: "#000000"})
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if created {
		t.Error("second seed should not create a row")
	}

	u, err := repo.GetByUsername(ctx, "You")
	if err != nil || u == nil {
		t.Fatalf("get: %+v %v", u, err)
	}
	if u.Color != "#FF6B6B" {
		t.Errorf("color overwritten: %s", u.Color)
	}
}

func TestGetByUsername_Missing(t *testing.T) {
	repo := NewUserProfileRepository(dbtest.NewSQLite(t))
	u, err := repo.GetByUsername(context.Background(), "ghost")
	if err != nil || u != nil {
		t.Errorf("expected nil, nil; got %+v, %v", u, err)
	}
}

func TestList_Sorted(t *testing.T) {
	ctx := context.Background()
	repo := NewUserProfileRepository(dbtest.NewSQLite(t))
	for _, name := range []string{"You", "Brother", "Anna"} {
		if _, err := repo.Seed(ctx, &UserProfile{Username: name}); err != nil {
			t.Fatal(err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 3 || users[0].Username != "Anna" || users[1].Username != "Brother" || users[2].Username != "You" {
		t.Errorf("unexpected order: %v, %v, %v", users[0].Username, users[1].Username, users[2].Username)
	}
}

func TestSetColorAndPassword(t *testing.T) {
	ctx := context.Background()
	repo := NewUserProfileRepository(dbtest.NewSQLite(t))
	_, _ = repo.Seed(ctx, &UserProfile{Username: "You"})

	if err := repo.SetColor(ctx, "You", "#123456"); err != nil {
		t.Fatal(err)
	}
	if err := repo.SetPasswordHash(ctx, "You", "$2a$10$hash"); err != nil {
		t.Fatal(err)
	}

	u, _ := repo.GetByUsername(ctx, "You")
	if u.Color != "#123456" {
		t.Errorf("color = %s", u.Color)
	}
	if !u.HasPassword() || u.PasswordHash != "$2a$10$hash" {
		t.Errorf("password hash = %q", u.PasswordHash)
	}

	if err := repo.SetColor(ctx, "ghost", "#123456"); !faults.IsNotFound(err) {
		t.Errorf("expected not found for unknown user, got %v", err)
	}
}
