// Package context_manager carries request-scoped identity through
// context.Context so no handler depends on process-wide session state.
package context_manager

import "context"

type usernameKey struct{}
type channelKey struct{}
type traceIDKey struct{}

// SetUsernameContext stores the authenticated roster username.
func SetUsernameContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey{}, username)
}

// GetUsernameContext returns the username and whether one was set.
func GetUsernameContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey{}).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// SetChannelContext stores the IRC target a reply should go to.
func SetChannelContext(ctx context.Context, channel string) context.Context {
	return context.WithValue(ctx, channelKey{}, channel)
}

func GetChannelContext(ctx context.Context) string {
	channel, _ := ctx.Value(channelKey{}).(string)
	return channel
}

func SetTraceIDContext(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func GetTraceIDContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}
