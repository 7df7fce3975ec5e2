package commands

import (
	"context"
	"strings"
	"time"

	log "log/slog"

	"github.com/MyelinBots/stillalive-go/internal/services/checkins"
	"github.com/MyelinBots/stillalive-go/internal/services/context_manager"
	"github.com/MyelinBots/stillalive-go/internal/services/users"
	irc "github.com/fluffle/goirc/client"
)

type IRCClient interface {
	Privmsg(target, message string)
}

// Handler receives the text that followed the command word.
type Handler func(ctx context.Context, text string) error

type CommandController interface {
	HandleCommand(ctx context.Context, line *irc.Line) error
	AddCommand(command string, handler Handler)
}

type CommandControllerImpl struct {
	client   IRCClient
	checkins checkins.Service
	users    users.Service
	location *time.Location
	now      func() time.Time
	commands map[string]Handler
}

func NewCommandController(client IRCClient, checkinService checkins.Service, userService users.Service, location *time.Location) *CommandControllerImpl {
	if location == nil {
		location = time.UTC
	}
	return &CommandControllerImpl{
		client:   client,
		checkins: checkinService,
		users:    userService,
		location: location,
		now:      time.Now,
		commands: make(map[string]Handler),
	}
}

// HandleCommand parses an IRC line and dispatches to the correct handler
func (c *CommandControllerImpl) HandleCommand(ctx context.Context, line *irc.Line) error {
	if line == nil || len(line.Args) < 2 {
		return nil
	}

	message := strings.TrimSpace(line.Args[1])
	fields := strings.Fields(message)
	if len(fields) == 0 {
		return nil
	}

	cmd := strings.ToLower(fields[0])
	handler, exists := c.commands[cmd]
	if !exists {
		return nil
	}

	ctx = context_manager.SetChannelContext(ctx, line.Target())
	username, known, err := c.users.Resolve(ctx, line.Nick)
	if err != nil {
		c.reply(ctx, "Sorry, something went wrong. Try again later.")
		return err
	}
	if !known {
		c.reply(ctx, line.Nick+": you are not on the check-in roster.")
		return nil
	}
	ctx = context_manager.SetUsernameContext(ctx, username)

	log.Debug("irc command", "command", cmd, "nick", line.Nick, "username", username)
	return handler(ctx, strings.TrimSpace(message[len(fields[0]):]))
}

func (c *CommandControllerImpl) AddCommand(command string, handler Handler) {
	c.commands[strings.ToLower(command)] = handler
}

// RegisterDefaults adds !alive, !unalive and !whosalive.
func (c *CommandControllerImpl) RegisterDefaults() {
	c.AddCommand("!alive", c.AliveHandler())
	c.AddCommand("!unalive", c.UnaliveHandler())
	c.AddCommand("!whosalive", c.WhosAliveHandler())
}

func (c *CommandControllerImpl) reply(ctx context.Context, message string) {
	target := context_manager.GetChannelContext(ctx)
	if target == "" {
		return
	}
	c.client.Privmsg(target, message)
}
