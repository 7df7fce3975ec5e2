package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/MyelinBots/stillalive-go/internal/services/context_manager"
)

type Joiner interface {
	Join(channel string, key ...string)
	Privmsg(target, message string)
}

// InviteHandler lets roster members bring the bot into another channel:
// "!invite #channel".
func InviteHandler(client Joiner) Handler {
	return func(ctx context.Context, text string) error {
		username, _ := context_manager.GetUsernameContext(ctx)

		fields := strings.Fields(text)
		if len(fields) != 1 || !strings.HasPrefix(fields[0], "#") {
			if target := context_manager.GetChannelContext(ctx); target != "" {
				client.Privmsg(target, "Usage: !invite #channel")
			}
			return nil
		}

		channel := fields[0]
		client.Join(channel)
		client.Privmsg(channel, fmt.Sprintf("%s invited me. Check in with !alive [message], see today with !whosalive.", username))
		return nil
	}
}
