package utils

import "time"

const DateOfBirthLayout = "2006-01-02"

// AgeInYearsAt returns completed years between dob and the reference time.
func AgeInYearsAt(dob, at time.Time) int {
	years := at.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// IsPediatric reports whether the computed age at dob is under 2 years.
// The flag is derived on every create and update; client values never stick.
func IsPediatric(dob time.Time, at time.Time) bool {
	return AgeInYearsAt(dob, at) < 2
}

func ParseDateOfBirth(value string) (time.Time, error) {
	return time.Parse(DateOfBirthLayout, value)
}
