// Package validation holds the pure input rules shared by the add and list endpoints.
package validation

import (
	"strconv"
	"strings"

	"github.com/UnknownOlympus/compass/internal/models"
)

// SchoolPayload is the raw JSON body of an add-school request. The fields are
// untyped because clients may send coordinates as numbers or numeric strings,
// omit fields entirely, or send the wrong type; validation reports all of that
// as error messages instead of failing to decode.
type SchoolPayload struct {
	Name      any `json:"name"`
	Address   any `json:"address"`
	Latitude  any `json:"latitude"`
	Longitude any `json:"longitude"`
}

// ParseCoordinate applies the presence-and-number rule shared by both endpoints.
// A value is accepted if it is a non-zero JSON number or a string that parses to
// a non-zero number. Absent, null, empty, unparseable and exactly-zero values
// all count as missing; rejecting zero is a deliberately kept quirk of the
// original API, documented in DESIGN.md.
func ParseCoordinate(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if v == 0 {
			return 0, false
		}
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || parsed == 0 {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// ValidLatitude reports whether a latitude lies within [-90, 90] degrees.
func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// ValidLongitude reports whether a longitude lies within [-180, 180] degrees.
func ValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

func textContent(value any) (string, bool) {
	text, isString := value.(string)
	if !isString {
		return "", false
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	return trimmed, true
}

// ValidateSchool checks a candidate school against the full rule set. Every rule
// is evaluated independently so a single response can report all problems at
// once. On success the returned School carries the trimmed name and address and
// the parsed coordinates; its ID is left unset.
func ValidateSchool(payload SchoolPayload) (models.School, []string) {
	var school models.School
	var errs []string

	name, ok := textContent(payload.Name)
	if ok {
		school.Name = name
	} else {
		errs = append(errs, "name is required and must be a non-empty string")
	}

	address, ok := textContent(payload.Address)
	if ok {
		school.Address = address
	} else {
		errs = append(errs, "address is required and must be a non-empty string")
	}

	latitude, ok := ParseCoordinate(payload.Latitude)
	switch {
	case !ok:
		errs = append(errs, "latitude is required and must be a valid number")
	case !ValidLatitude(latitude):
		errs = append(errs, "latitude must be a number between -90 and 90")
	default:
		school.Latitude = latitude
	}

	longitude, ok := ParseCoordinate(payload.Longitude)
	switch {
	case !ok:
		errs = append(errs, "longitude is required and must be a valid number")
	case !ValidLongitude(longitude):
		errs = append(errs, "longitude must be a number between -180 and 180")
	default:
		school.Longitude = longitude
	}

	return school, errs
}

// ValidateQuery checks the latitude/longitude query parameters of a list
// request. Unlike ValidateSchool it produces a single pass/fail verdict, since
// the list endpoint reports one combined message.
func ValidateQuery(latitude, longitude string) (models.Coordinates, bool) {
	lat, ok := ParseCoordinate(latitude)
	if !ok || !ValidLatitude(lat) {
		return models.Coordinates{}, false
	}

	lon, ok := ParseCoordinate(longitude)
	if !ok || !ValidLongitude(lon) {
		return models.Coordinates{}, false
	}

	return models.Coordinates{Latitude: lat, Longitude: lon}, true
}
