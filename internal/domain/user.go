package domain

import "strings"

// Role is the permission level attached to a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole normalizes a role string. Unknown values return false.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

// User is an account allowed to sign in. Users are seeded at startup and
// never change at runtime.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
}

// UserInfo is the public view of a user returned by login.
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Info returns the public fields of the user.
func (u *User) Info() UserInfo {
	return UserInfo{ID: u.ID, Username: u.Username, Role: u.Role}
}

// SeedUser is a fixture account with a plaintext password, hashed on boot.
type SeedUser struct {
	ID       string
	Username string
	Password string
	Role     Role
}

// DefaultUsers returns the built-in accounts.
func DefaultUsers() []SeedUser {
	return []SeedUser{
		{ID: "1", Username: "jayanka@aisel.co", Password: "123", Role: RoleAdmin},
		{ID: "2", Username: "vitor@aisel.co", Password: "123", Role: RoleUser},
	}
}
