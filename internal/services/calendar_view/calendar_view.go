// Package calendar_view turns a month of check-ins into colored calendar
// events.
package calendar_view

import (
	"context"
	"sort"
	"time"

	"github.com/MyelinBots/stillalive-go/internal/calendar"
	"github.com/MyelinBots/stillalive-go/internal/services/checkins"
	"github.com/MyelinBots/stillalive-go/internal/services/users"
)

// CalendarEvent is one all-day calendar entry.
type CalendarEvent struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
}

type LegendEntry struct {
	Username string `json:"username"`
	Color    string `json:"color"`
}

// ColorFunc returns the display color for a username, or "" when unset.
type ColorFunc func(username string) string

// BuildMonthEvents emits one event per (day, username) present in month,
// ordered by day then username. Days that do not exist in the month are
// skipped.
func BuildMonthEvents(year int, month time.Month, monthCheckins checkins.MonthCheckins, colorOf ColorFunc) []CalendarEvent {
	days := make([]int, 0, len(monthCheckins))
	for d := range monthCheckins {
		if calendar.IsValid(year, month, d) {
			days = append(days, d)
		}
	}
	sort.Ints(days)

	events := make([]CalendarEvent, 0)
	for _, d := range days {
		byUser := monthCheckins[d]
		names := make([]string, 0, len(byUser))
		for name := range byUser {
			names = append(names, name)
		}
		sort.Strings(names)

		date := calendar.Date{Year: year, Month: month, Day: d}.String()
		for _, name := range names {
			events = append(events, CalendarEvent{
				Title: title(name, byUser[name]),
				Start: date,
				End:   date,
				Color: color(colorOf, name),
			})
		}
	}
	return events
}

func title(username, activity string) string {
	if activity == "" {
		return username
	}
	return username + ": " + activity
}

func color(colorOf ColorFunc, username string) string {
	if colorOf == nil {
		return users.DefaultColor
	}
	if c := colorOf(username); c != "" {
		return c
	}
	return users.DefaultColor
}

type DayReader interface {
	GetDay(ctx context.Context, date calendar.Date) ([]checkins.DayEntry, error)
}

// ResolveExistingMessage returns username's activity on day, or "" when
// there is no check-in or it has no message.
func ResolveExistingMessage(ctx context.Context, reader DayReader, day calendar.Date, username string) (string, error) {
	entries, err := reader.GetDay(ctx, day)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.Username == username {
			return e.Activity, nil
		}
	}
	return "", nil
}

// View combines check-ins with the roster palette.
type View struct {
	checkins checkins.Service
	users    users.Service
}

func NewView(checkinService checkins.Service, userService users.Service) *View {
	return &View{checkins: checkinService, users: userService}
}

func (v *View) MonthEvents(ctx context.Context, year int, month time.Month) ([]CalendarEvent, error) {
	monthCheckins, err := v.checkins.GetMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	palette, err := v.users.Palette(ctx)
	if err != nil {
		return nil, err
	}
	return BuildMonthEvents(year, month, monthCheckins, palette.ColorOf), nil
}

func (v *View) ExistingMessage(ctx context.Context, day calendar.Date, username string) (string, error) {
	return ResolveExistingMessage(ctx, v.checkins, day, username)
}

// Legend lists every roster member with the color used on the calendar.
func (v *View) Legend(ctx context.Context) ([]LegendEntry, error) {
	list, err := v.users.List(ctx)
	if err != nil {
		return nil, err
	}
	palette, err := v.users.Palette(ctx)
	if err != nil {
		return nil, err
	}

	legend := make([]LegendEntry, 0, len(list))
	for _, u := range list {
		legend = append(legend, LegendEntry{Username: u.Username, Color: palette.ColorOf(u.Username)})
	}
	return legend, nil
}
