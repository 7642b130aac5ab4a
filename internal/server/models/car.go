package models

// Car is a stored vehicle. The Owner* fields are joined in from users when
// listing and are ignored on write.
type Car struct {
	ID             int64
	Color          string
	Make           string
	Model          string
	Year           string
	Notes          string
	DateAdded      string
	ProjPickupDate string
	UserID         int64

	OwnerName  string
	OwnerEmail string
	OwnerPhone string
}
