package validator

import (
	"math"
	"reflect"
	"regexp"
	"strings"
)

// checkRequired rejects nil, blank strings, NaN and empty collections.
// Every other value, including false and 0, is present.
func checkRequired(value, _ any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case float64:
		return !math.IsNaN(v)
	case float32:
		return !math.IsNaN(float64(v))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

func checkMinLength(value, param any) bool {
	if isFalsy(value) {
		return true
	}
	return length(value) >= toInt(param, 0)
}

func checkMaxLength(value, param any) bool {
	if isFalsy(value) {
		return true
	}
	return length(value) <= toInt(param, math.MaxInt)
}

func checkPattern(value, param any) bool {
	if isFalsy(value) {
		return true
	}

	switch p := param.(type) {
	case *regexp.Regexp:
		if p == nil {
			return true
		}
		return p.MatchString(toString(value))
	case string:
		re, err := regexp.Compile(p)
		if err != nil {
			return false
		}
		return re.MatchString(toString(value))
	case nil:
		return true
	}
	return false
}
