// Package bot connects the check-in commands to IRC.
package bot

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync"
	"time"

	log "log/slog"

	"github.com/MyelinBots/stillalive-go/config"
	"github.com/MyelinBots/stillalive-go/internal/services/commands"
	irc "github.com/fluffle/goirc/client"
)

type Identified struct {
	sync.Mutex
	identified bool
}

type Bot struct {
	cfg        config.IRCConfig
	conn       *irc.Conn
	controller commands.CommandController
	identified *Identified
}

// ControllerFactory builds the command controller once the IRC client exists.
type ControllerFactory func(client commands.IRCClient) *commands.CommandControllerImpl

func New(cfg config.IRCConfig, newController ControllerFactory) (*Bot, error) {
	if cfg.Host == "" || cfg.Nick == "" {
		return nil, fmt.Errorf("irc host and nick are required")
	}
	if len(cfg.Channels) == 0 {
		return nil, fmt.Errorf("irc needs at least one channel")
	}

	ircConfig := irc.NewConfig(cfg.Nick)
	ircConfig.SSL = cfg.SSL
	ircConfig.SSLConfig = &tls.Config{ServerName: cfg.Host}
	ircConfig.Server = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	conn := irc.Client(ircConfig)

	controller := newController(conn)
	controller.RegisterDefaults()
	controller.AddCommand("!invite", commands.InviteHandler(conn))

	b := &Bot{
		cfg:        cfg,
		conn:       conn,
		controller: controller,
		identified: &Identified{},
	}
	b.registerHandlers()
	return b, nil
}

func (b *Bot) registerHandlers() {
	joinAll := func(conn *irc.Conn, line *irc.Line) {
		for _, channel := range b.cfg.Channels {
			log.Info("Joining channel", "channel", channel)
			conn.Join(channel)
		}
	}

	b.conn.HandleFunc(irc.CONNECTED, func(conn *irc.Conn, line *irc.Line) {
		log.Info("Connected to IRC", "host", b.cfg.Host)
		joinAll(conn, line)
	})
	// no MOTD and end of MOTD
	b.conn.HandleFunc("422", joinAll)
	b.conn.HandleFunc("376", joinAll)

	b.conn.HandleFunc(irc.JOIN, func(conn *irc.Conn, line *irc.Line) {
		if line.Nick == conn.Me().Nick {
			log.Info("Joined", "channel", line.Args[0])
			handleNickserv(b.cfg, b.identified, conn)
		}
	})

	b.conn.HandleFunc(irc.INVITE, func(conn *irc.Conn, line *irc.Line) {
		if len(line.Args) < 2 {
			return
		}
		log.Info("Invited", "channel", line.Args[1], "by", line.Nick)
		conn.Join(line.Args[1])
	})

	b.conn.HandleFunc(irc.PRIVMSG, func(conn *irc.Conn, line *irc.Line) {
		if line == nil || len(line.Args) < 2 {
			return
		}
		if err := b.controller.HandleCommand(context.Background(), line); err != nil {
			log.Error("Error handling command", "nick", line.Nick, "error", err)
		}
	})
}

// Run connects and blocks until the server disconnects or ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	quit := make(chan struct{})
	var once sync.Once
	b.conn.HandleFunc(irc.DISCONNECTED, func(conn *irc.Conn, line *irc.Line) {
		once.Do(func() { close(quit) })
	})

	if err := b.conn.Connect(); err != nil {
		return fmt.Errorf("irc connection error: %w", err)
	}

	select {
	case <-quit:
		return fmt.Errorf("disconnected from %s", b.cfg.Host)
	case <-ctx.Done():
		b.conn.Quit("bye")
		select {
		case <-quit:
		case <-time.After(5 * time.Second):
			_ = b.conn.Close()
		}
		return nil
	}
}

func handleNickserv(cfg config.IRCConfig, identified *Identified, c *irc.Conn) {
	identified.Lock()
	defer identified.Unlock()
	if !identified.identified && cfg.NickservPassword != "" {
		command := fmt.Sprintf(cfg.NickservCommand, cfg.NickservPassword)
		c.Raw(command)
		identified.identified = true
	}
}
