package commands

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MyelinBots/stillalive-go/config"
	"github.com/MyelinBots/stillalive-go/internal/calendar"
	"github.com/MyelinBots/stillalive-go/internal/db"
	"github.com/MyelinBots/stillalive-go/internal/db/dbtest"
	"github.com/MyelinBots/stillalive-go/internal/db/repositories/checkin"
	"github.com/MyelinBots/stillalive-go/internal/db/repositories/user_profile"
	"github.com/MyelinBots/stillalive-go/internal/services/checkins"
	"github.com/MyelinBots/stillalive-go/internal/services/users"
	irc "github.com/fluffle/goirc/client"
)

// mockIRCClient records messages sent
type mockIRCClient struct {
	mu       sync.Mutex
	targets  []string
	messages []string
	joined   []string
}

func (m *mockIRCClient) Privmsg(target, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.targets = append(m.targets, target)
	m.messages = append(m.messages, message)
}

func (m *mockIRCClient) Join(channel string, _ ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.joined = append(m.joined, channel)
}

func (m *mockIRCClient) LastMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return ""
	}
	return m.messages[len(m.messages)-1]
}

func (m *mockIRCClient) LastTarget() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.targets) == 0 {
		return ""
	}
	return m.targets[len(m.targets)-1]
}

type fixture struct {
	db         *db.DB
	client     *mockIRCClient
	checkins   checkins.Service
	controller *CommandControllerImpl
}

var today = calendar.Date{Year: 2024, Month: time.March, Day: 1}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := dbtest.NewSQLite(t)
	userService := users.NewService(user_profile.NewUserProfileRepository(database))
	if _, err := userService.Seed(context.Background(), []config.UserConfig{
		{Username: "You"}, {Username: "Brother"}, {Username: "erik"},
	}); err != nil {
		t.Fatal(err)
	}
	checkinService := checkins.NewService(checkin.NewCheckinRepository(database), userService)

	client := &mockIRCClient{}
	controller := NewCommandController(client, checkinService, userService, time.UTC)
	controller.now = func() time.Time { return time.Date(2024, 3, 1, 21, 30, 0, 0, time.UTC) }
	controller.RegisterDefaults()
	controller.AddCommand("!invite", InviteHandler(client))

	return &fixture{db: database, client: client, checkins: checkinService, controller: controller}
}

func (f *fixture) say(t *testing.T, nick, message string) error {
	t.Helper()
	line := &irc.Line{Nick: nick, Cmd: irc.PRIVMSG, Args: []string{"#family", message}}
	return f.controller.HandleCommand(context.Background(), line)
}

func TestAlive_WithMessage(t *testing.T) {
	f := newFixture(t)

	if err := f.say(t, "Erik", "!alive   went hiking  "); err != nil {
		t.Fatal(err)
	}
	if got := f.client.LastMessage(); got != "erik is alive today (2024-03-01): went hiking" {
		t.Errorf("reply = %q", got)
	}
	if f.client.LastTarget() != "#family" {
		t.Errorf("reply went to %q", f.client.LastTarget())
	}

	state, err := f.checkins.State(context.Background(), today, "erik")
	if err != nil || state != checkins.StatePresentWithMessage {
		t.Errorf("state = %q, %v", state, err)
	}
}

func TestAlive_ThenUnalive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.say(t, "you", "!ALIVE"); err != nil {
		t.Fatal(err)
	}
	if got := f.client.LastMessage(); got != "You is alive today (2024-03-01)" {
		t.Errorf("reply = %q", got)
	}

	if err := f.say(t, "you", "!unalive"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(f.client.LastMessage(), "removed") {
		t.Errorf("reply = %q", f.client.LastMessage())
	}
	entries, err := f.checkins.GetDay(ctx, today)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no check-ins, got %v", entries)
	}
}

func TestWhosAlive(t *testing.T) {
	f := newFixture(t)

	if err := f.say(t, "brother", "!whosalive"); err != nil {
		t.Fatal(err)
	}
	if got := f.client.LastMessage(); got != "Nobody has checked in today (2024-03-01)." {
		t.Errorf("reply = %q", got)
	}

	_ = f.say(t, "erik", "!alive hiking")
	_ = f.say(t, "Brother", "!alive")
	if err := f.say(t, "brother", "!whosalive"); err != nil {
		t.Fatal(err)
	}
	if got := f.client.LastMessage(); got != "Alive today (2024-03-01): Brother, erik (hiking)" {
		t.Errorf("reply = %q", got)
	}
}

func TestUnknownNick(t *testing.T) {
	f := newFixture(t)

	if err := f.say(t, "stranger", "!alive"); err != nil {
		t.Fatal(err)
	}
	if got := f.client.LastMessage(); !strings.Contains(got, "not on the check-in roster") {
		t.Errorf("reply = %q", got)
	}
}

func TestValidationReply(t *testing.T) {
	f := newFixture(t)

	if err := f.say(t, "erik", "!alive "+strings.Repeat("a", checkins.MaxActivityLength+1)); err != nil {
		t.Fatalf("validation problems are answered, not returned: %v", err)
	}
	if got := f.client.LastMessage(); !strings.HasPrefix(got, "erik: activity is") {
		t.Errorf("reply = %q", got)
	}
}

func TestStorageFailure(t *testing.T) {
	f := newFixture(t)
	_ = f.db.Close()

	if err := f.say(t, "erik", "!alive"); err == nil {
		t.Error("expected an error from a closed database")
	}
	if got := f.client.LastMessage(); !strings.HasPrefix(got, "Sorry") {
		t.Errorf("reply = %q", got)
	}
}

func TestIgnoredLines(t *testing.T) {
	f := newFixture(t)

	for _, line := range []*irc.Line{
		nil,
		{Nick: "erik", Args: []string{"#family"}},
		{Nick: "erik", Args: []string{"#family", "   "}},
		{Nick: "erik", Args: []string{"#family", "hello there"}},
		{Nick: "erik", Args: []string{"#family", "!hug everyone"}},
	} {
		if err := f.controller.HandleCommand(context.Background(), line); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if got := f.client.LastMessage(); got != "" {
		t.Errorf("expected no replies, got %q", got)
	}
}

func TestInvite(t *testing.T) {
	f := newFixture(t)

	if err := f.say(t, "erik", "!invite #cousins"); err != nil {
		t.Fatal(err)
	}
	if len(f.client.joined) != 1 || f.client.joined[0] != "#cousins" {
		t.Errorf("joined = %v", f.client.joined)
	}
	if f.client.LastTarget() != "#cousins" || !strings.HasPrefix(f.client.LastMessage(), "erik invited me") {
		t.Errorf("reply %q to %q", f.client.LastMessage(), f.client.LastTarget())
	}

	if err := f.say(t, "erik", "!invite"); err != nil {
		t.Fatal(err)
	}
	if got := f.client.LastMessage(); got != "Usage: !invite #channel" {
		t.Errorf("reply = %q", got)
	}
}
