package handler

import "time"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UserDTO struct {
	Username string `json:"username"`
	Color    string `json:"color"`
}

type SaveCheckinRequest struct {
	Alive   *bool  `json:"alive" binding:"required"`
	Message string `json:"message" binding:"max=1000"`
}

type CheckinStateResponse struct {
	Date     string `json:"date"`
	Username string `json:"username"`
	State    string `json:"state"`
	Message  string `json:"message"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type ChangeColorRequest struct {
	Color string `json:"color" binding:"required,hexcolor,len=7"`
}
