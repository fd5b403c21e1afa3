package validator

import "time"

func checkDate(value, _ any) bool {
	if isFalsy(value) {
		return true
	}
	_, ok := parseDate(value)
	return ok
}

func checkDateAfter(value, param any) bool {
	if isFalsy(value) {
		return true
	}
	t, ok := parseDate(value)
	limit, limitOK := parseDate(param)
	if !ok || !limitOK {
		return false
	}
	return t.After(limit)
}

func checkDateBefore(value, param any) bool {
	if isFalsy(value) {
		return true
	}
	t, ok := parseDate(value)
	limit, limitOK := parseDate(param)
	if !ok || !limitOK {
		return false
	}
	return t.Before(limit)
}

func checkAge(value, param any) bool {
	if isFalsy(value) {
		return true
	}
	birth, ok := parseDate(value)
	if !ok {
		return false
	}
	return ageAt(birth, time.Now()) >= toInt(param, 0)
}

// ageAt counts completed years between the birth date and the calendar date
// of now, so a birthday later in the current year does not count yet. Both
// dates are taken as written, without converting between zones.
func ageAt(birth, now time.Time) int {
	by, bm, bd := birth.Date()
	ny, nm, nd := now.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	return age
}
