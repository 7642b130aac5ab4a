package models

import "strings"

// Car is a stored vehicle as returned by GET /api/cars. Owner fields are
// joined in by the server; DateAdded is server-assigned.
type Car struct {
	ID             int64  `json:"id"`
	Color          string `json:"color"`
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           string `json:"year"`
	Notes          string `json:"notes"`
	ProjPickupDate string `json:"proj_pickup_date"`
	DateAdded      string `json:"date_added"`
	OwnerID        int64  `json:"user_id"`
	OwnerName      string `json:"user_name"`
	OwnerEmail     string `json:"user_email"`
	OwnerPhone     string `json:"user_phone"`
}

// Sortable car columns, in display order.
var CarColumns = []string{"color", "make", "model", "year", "notes", "date_added", "proj_pickup_date"}

func (c Car) RecordID() int64 { return c.ID }

func (c Car) Fields() []Field {
	return []Field{
		{"id", itoa(c.ID)},
		{"color", c.Color},
		{"make", c.Make},
		{"model", c.Model},
		{"year", c.Year},
		{"notes", c.Notes},
		{"date_added", c.DateAdded},
		{"proj_pickup_date", c.ProjPickupDate},
		{"user_id", itoa(c.OwnerID)},
		{"user_name", c.OwnerName},
		{"user_email", c.OwnerEmail},
		{"user_phone", c.OwnerPhone},
	}
}

// Draft returns an editable copy of the car. The owner is not carried over:
// it cannot change after creation.
func (c Car) Draft() CarDraft {
	return CarDraft{
		Color:          c.Color,
		Make:           c.Make,
		Model:          c.Model,
		Year:           c.Year,
		Notes:          c.Notes,
		ProjPickupDate: c.ProjPickupDate,
	}
}

// CarDraft is the body of POST /api/cars and PUT /api/cars/{id}.
// OwnerID is only sent on create, and only honoured for admin sessions.
type CarDraft struct {
	Color          string `json:"color"`
	Make           string `json:"make" validate:"required"`
	Model          string `json:"model" validate:"required"`
	Year           string `json:"year"`
	Notes          string `json:"notes"`
	ProjPickupDate string `json:"proj_pickup_date"`
	OwnerID        int64  `json:"user_id,omitempty"`
}

func (d *CarDraft) normalize() {
	d.Color = strings.TrimSpace(d.Color)
	d.Make = strings.TrimSpace(d.Make)
	d.Model = strings.TrimSpace(d.Model)
	d.Year = strings.TrimSpace(d.Year)
	d.Notes = strings.TrimSpace(d.Notes)
	d.ProjPickupDate = strings.TrimSpace(d.ProjPickupDate)
}

// Set assigns a draft field by its wire name. It reports false for names
// that are not editable.
func (d *CarDraft) Set(name, value string) bool {
	switch name {
	case "color":
		d.Color = value
	case "make":
		d.Make = value
	case "model":
		d.Model = value
	case "year":
		d.Year = value
	case "notes":
		d.Notes = value
	case "proj_pickup_date":
		d.ProjPickupDate = value
	default:
		return false
	}
	return true
}

// CarDraftFields lists the editable car fields in form order.
var CarDraftFields = []string{"color", "make", "model", "year", "notes", "proj_pickup_date"}
