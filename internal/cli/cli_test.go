package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MyelinBots/stillalive-go/internal/services/calendar_view"
	"github.com/goccy/go-json"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := fmt.Sprintf(`{
  "AppConfig": {"LogLevel": "error"},
  "DBConfig": {"Driver": "sqlite", "Path": %q, "AutoMigrate": true},
  "Users": [
    {"username": "You", "color": "#FF6B6B"},
    {"username": "erik"}
  ]
}`, filepath.Join(dir, "cli.db"))
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestUsersSeedAndList(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "users", "seed")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "created 2 of 2 users") {
		t.Errorf("seed output %q", out)
	}

	out, err = run(t, cfg, "users", "seed")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "created 0 of 2 users") {
		t.Errorf("second seed output %q", out)
	}

	if _, err := run(t, cfg, "users", "set-color", "erik", "#123abc"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, cfg, "users", "set-password", "erik", "hiking2024"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, cfg, "users", "set-password", "erik", "weak"); err == nil {
		t.Error("weak password accepted")
	}

	out, err = run(t, cfg, "users", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "#123ABC") || !strings.Contains(out, "#FF6B6B") {
		t.Errorf("list output %q", out)
	}
}

func TestCheckinAndCalendar(t *testing.T) {
	cfg := writeConfig(t)
	if _, err := run(t, cfg, "users", "seed"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, cfg, "checkin", "erik", "--date", "2024-03-01", "--message", "hiking")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "2024-03-01 erik: present-with-message" {
		t.Errorf("checkin output %q", out)
	}
	if _, err := run(t, cfg, "checkin", "You", "--date", "2024-03-02"); err != nil {
		t.Fatal(err)
	}

	out, err = run(t, cfg, "calendar", "--year", "2024", "--month", "3")
	if err != nil {
		t.Fatal(err)
	}
	var events []calendar_view.CalendarEvent
	if err := json.Unmarshal([]byte(out), &events); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := []calendar_view.CalendarEvent{
		{Title: "erik: hiking", Start: "2024-03-01", End: "2024-03-01", Color: "#888888"},
		{Title: "You", Start: "2024-03-02", End: "2024-03-02", Color: "#FF6B6B"},
	}
	if len(events) != len(want) || events[0] != want[0] || events[1] != want[1] {
		t.Errorf("events = %v, want %v", events, want)
	}

	out, err = run(t, cfg, "checkin", "erik", "--date", "2024-03-01", "--unalive")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "absent") {
		t.Errorf("unalive output %q", out)
	}
}

func TestCheckinRejectsUnknownUser(t *testing.T) {
	cfg := writeConfig(t)
	if _, err := run(t, cfg, "users", "seed"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, cfg, "checkin", "stranger", "--date", "2024-03-01"); err == nil {
		t.Error("expected unknown user to be rejected")
	}
	if _, err := run(t, cfg, "checkin", "erik", "--date", "2024-02-30"); err == nil {
		t.Error("expected invalid date to be rejected")
	}
}

func TestMigrateDownAndUp(t *testing.T) {
	cfg := writeConfig(t)
	if _, err := run(t, cfg, "migrate", "up"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, cfg, "migrate", "down", "--steps", "0"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, cfg, "migrate", "up"); err != nil {
		t.Fatal(err)
	}
}
