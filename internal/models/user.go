package models

import "time"

// User represents an account in the system. The password is stored in plain
// text: this is a local single-user demo and the date-of-birth reset flow
// overwrites it directly.
type User struct {
	Username            string     `json:"username"`
	Email               string     `json:"email"`
	Password            string     `json:"password"`
	DateOfBirth         string     `json:"dateOfBirth"`
	CreatedAt           time.Time  `json:"createdAt"`
	SignInCount         int        `json:"signInCount"`
	LastLoginAt         time.Time  `json:"lastLoginAt"`
	LastPasswordResetAt *time.Time `json:"lastPasswordResetAt,omitempty"`
}

// Redacted returns a copy of the user safe to hand to the presentation
// layer, with the password blanked.
func (u *User) Redacted() *User {
	redacted := *u
	redacted.Password = ""
	return &redacted
}
