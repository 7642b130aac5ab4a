package models

import (
	"strconv"
	"strings"
)

// User is an account as listed by GET /api/users. The password never comes
// back from the server.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	IsAdmin     bool   `json:"is_admin"`
}

func (u User) RecordID() int64 { return u.ID }

func (u User) Fields() []Field {
	return []Field{
		{"id", itoa(u.ID)},
		{"name", u.Name},
		{"email", u.Email},
		{"phone_number", u.PhoneNumber},
		{"is_admin", strconv.FormatBool(u.IsAdmin)},
	}
}

// Draft returns the profile form pre-filled with this user.
func (u User) Draft() UserDraft {
	return UserDraft{Name: u.Name, Email: u.Email, PhoneNumber: u.PhoneNumber, IsAdmin: u.IsAdmin}
}

// UserDraft is the body of PUT /api/update_user/{id}. IsAdmin is ignored by
// the server unless the caller is an admin; Password is write-only.
type UserDraft struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	IsAdmin     bool   `json:"is_admin"`
	Password    string `json:"password,omitempty"`
}

func (d *UserDraft) normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.PhoneNumber = strings.TrimSpace(d.PhoneNumber)
}

// Registration is the body of POST /api/register.
type Registration struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	PhoneNumber string `json:"phone_number,omitempty"`
	IsAdmin     bool   `json:"is_admin,omitempty"`
}

func (r *Registration) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
}

// Credentials is the body of POST /api/login.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// normalize trims the email only. Passwords are sent exactly as typed.
func (c *Credentials) normalize() {
	c.Email = strings.TrimSpace(c.Email)
}
