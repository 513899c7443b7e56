package utils

import (
	"strings"
	"time"

	"github.com/bitmark-inc/safetynet-alerts/consts"
)

// AgeFromBirthdate returns the number of completed years between a MM/dd/yyyy
// birthdate and the calendar date of now. It returns consts.UnknownAge when
// the birthdate is blank, malformed or after now. Days past the end of the
// month, like 02/30, are malformed.
func AgeFromBirthdate(birthdate string, now time.Time) int {
	birthdate = strings.TrimSpace(birthdate)
	if birthdate == "" {
		return consts.UnknownAge
	}

	dob, err := time.ParseInLocation(consts.BirthdateLayout, birthdate, now.Location())
	if err != nil {
		return consts.UnknownAge
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if dob.After(today) {
		return consts.UnknownAge
	}

	age := y - dob.Year()
	if m < dob.Month() || (m == dob.Month() && d < dob.Day()) {
		age--
	}
	return age
}

// IsChild reports whether a known age falls in the child band
func IsChild(age int) bool {
	return age >= 0 && age <= consts.ChildMaxAge
}

// IsAdult reports whether a known age is past the child band
func IsAdult(age int) bool {
	return age > consts.ChildMaxAge
}
