package validator

import (
	"math"

	"github.com/spf13/cast"
)

func checkMin(value, param any) bool {
	if isFalsy(value) {
		return true
	}
	n := parseFloat(value)
	if math.IsNaN(n) {
		return false
	}
	return n >= paramFloat(param, 0)
}

func checkMax(value, param any) bool {
	if isFalsy(value) {
		return true
	}
	n := parseFloat(value)
	if math.IsNaN(n) {
		return false
	}
	return n <= paramFloat(param, math.MaxFloat64)
}

func checkNumber(value, _ any) bool {
	if isFalsy(value) {
		return true
	}
	_, ok := strictFloat(value)
	return ok
}

func checkInteger(value, _ any) bool {
	if isFalsy(value) {
		return true
	}
	f, ok := strictFloat(value)
	return ok && f == math.Trunc(f)
}

func paramFloat(param any, def float64) float64 {
	if param == nil {
		return def
	}
	if s, ok := param.(string); ok {
		f := parseFloat(s)
		if math.IsNaN(f) {
			return def
		}
		return f
	}
	f, err := cast.ToFloat64E(param)
	if err != nil {
		return def
	}
	return f
}
