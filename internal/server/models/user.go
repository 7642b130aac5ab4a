// Package models holds the server's persisted records.
package models

type User struct {
	ID           int64
	Name         string
	Email        string
	PhoneNumber  string
	PasswordHash string
	IsAdmin      bool
}
