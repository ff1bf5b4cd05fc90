package models

// School represents a registered school and its location.
// The ID is assigned by the database on insert and never changes afterwards.
type School struct {
	ID        int     `json:"id"`        // ID is the unique identifier for the school.
	Name      string  `json:"name"`      // Name is the school name, trimmed and non-empty.
	Address   string  `json:"address"`   // Address is the postal address, trimmed and non-empty.
	Latitude  float64 `json:"latitude"`  // Latitude in degrees, within [-90, 90].
	Longitude float64 `json:"longitude"` // Longitude in degrees, within [-180, 180].
}

// SchoolDistance is a School annotated with its distance from a reference point.
// Distance is in kilometers, rounded to two decimal places for display.
type SchoolDistance struct {
	School

	Distance float64 `json:"distance"`
}
