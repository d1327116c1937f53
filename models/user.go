package models

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"passwordHash"` // bcrypt; never returned by the API
	FullName     string     `json:"fullName"`
	Role         string     `json:"role"`
	LastLogin    *time.Time `json:"lastLogin"`
	IsActive     bool       `json:"isActive"`
}

// UserView is the API shape of a User.
type UserView struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"fullName"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `json:"isActive"`
}

func (u User) View() UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		LastLogin: u.LastLogin,
		IsActive:  u.IsActive,
	}
}
