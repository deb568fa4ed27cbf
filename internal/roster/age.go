package roster

import "time"

// AdultAge is the minor/adult boundary: a participant is a minor when
// age < AdultAge. Used by the admission consent rule and the age filter.
const AdultAge = 18

// ComputeAge returns the whole years between birth and asOf, i.e. the
// floor of the fractional-year difference. It fails with ErrInvalidDate
// when birth is missing or lies after asOf.
func ComputeAge(birth, asOf time.Time) (int, error) {
	if birth.IsZero() || birth.After(asOf) {
		return 0, ErrInvalidDate
	}

	age := asOf.Year() - birth.Year()
	// Not yet reached this year's birthday.
	if asOf.Month() < birth.Month() ||
		(asOf.Month() == birth.Month() && asOf.Day() < birth.Day()) {
		age--
	}
	return age, nil
}

// IsMinor applies the canonical boundary.
func IsMinor(age int) bool {
	return age < AdultAge
}
