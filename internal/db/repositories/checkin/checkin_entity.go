package checkin

import (
	"time"

	"github.com/MyelinBots/stillalive-go/internal/calendar"
)

// Checkin is one user's "still alive" mark for one calendar day. At most one
// row exists per (date, username).
type Checkin struct {
	ID        uint          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Date      calendar.Date `gorm:"column:date;type:date;not null;uniqueIndex:idx_checkins_date_username,priority:1" json:"date"`
	Username  string        `gorm:"column:username;type:varchar(64);not null;uniqueIndex:idx_checkins_date_username,priority:2" json:"username"`
	Activity  *string       `gorm:"column:activity;type:text" json:"activity"`
	CreatedAt time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Checkin) TableName() string {
	return "checkins"
}

// Message returns the activity or "" when the user left no message.
func (c *Checkin) Message() string {
	if c == nil || c.Activity == nil {
		return ""
	}
	return *c.Activity
}
