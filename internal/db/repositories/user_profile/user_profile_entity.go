package user_profile

import "time"

type UserProfile struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null;default:''" json:"-"`
	Color        string    `gorm:"column:color;type:varchar(7);not null;default:''" json:"color"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "users"
}

// HasPassword reports whether the profile can log in.
func (u *UserProfile) HasPassword() bool {
	return u != nil && u.PasswordHash != ""
}
