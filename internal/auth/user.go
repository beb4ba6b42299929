package auth

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a request-supplied role string onto the closed enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID              string
	Email           string
	PasswordHash    string
	Role            Role
	IsEmailVerified bool
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Profile is optional satellite data shown on the details endpoint.
// It is owned by the store; this package only reads it.
type Profile struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	AvatarURL *string `json:"avatarUrl"`
}

// Summary is the public shape of a user. The password hash never leaves
// the auth package.
type Summary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Email: u.Email, Role: u.Role}
}
