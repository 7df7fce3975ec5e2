package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/MyelinBots/stillalive-go/internal/calendar"
	"github.com/MyelinBots/stillalive-go/internal/faults"
	"github.com/MyelinBots/stillalive-go/internal/services/context_manager"
)

func (c *CommandControllerImpl) today() calendar.Date {
	return calendar.Today(c.now(), c.location)
}

// AliveHandler checks the sender in for today: "!alive [message]".
func (c *CommandControllerImpl) AliveHandler() Handler {
	return func(ctx context.Context, text string) error {
		username, _ := context_manager.GetUsernameContext(ctx)
		day := c.today()

		if _, err := c.checkins.Save(ctx, day, username, true, text); err != nil {
			return c.replyError(ctx, username, err)
		}

		msg := fmt.Sprintf("%s is alive today (%s)", username, day)
		if text != "" {
			msg += ": " + text
		}
		c.reply(ctx, msg)
		return nil
	}
}

// UnaliveHandler removes the sender's check-in for today.
func (c *CommandControllerImpl) UnaliveHandler() Handler {
	return func(ctx context.Context, _ string) error {
		username, _ := context_manager.GetUsernameContext(ctx)
		day := c.today()

		if _, err := c.checkins.Save(ctx, day, username, false, ""); err != nil {
			return c.replyError(ctx, username, err)
		}
		c.reply(ctx, fmt.Sprintf("%s's check-in for %s is removed.", username, day))
		return nil
	}
}

// WhosAliveHandler lists today's check-ins.
func (c *CommandControllerImpl) WhosAliveHandler() Handler {
	return func(ctx context.Context, _ string) error {
		username, _ := context_manager.GetUsernameContext(ctx)
		day := c.today()

		entries, err := c.checkins.GetDay(ctx, day)
		if err != nil {
			return c.replyError(ctx, username, err)
		}
		if len(entries) == 0 {
			c.reply(ctx, fmt.Sprintf("Nobody has checked in today (%s).", day))
			return nil
		}

		parts := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.Activity == "" {
				parts = append(parts, e.Username)
			} else {
				parts = append(parts, fmt.Sprintf("%s (%s)", e.Username, e.Activity))
			}
		}
		c.reply(ctx, fmt.Sprintf("Alive today (%s): %s", day, strings.Join(parts, ", ")))
		return nil
	}
}

// replyError tells the user about validation problems and hides the rest.
func (c *CommandControllerImpl) replyError(ctx context.Context, username string, err error) error {
	if faults.IsValidation(err) {
		c.reply(ctx, fmt.Sprintf("%s: %s", username, faults.Message(err)))
		return nil
	}
	c.reply(ctx, "Sorry, I could not record that right now. Try again later.")
	return err
}
