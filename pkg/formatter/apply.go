package formatter

// Apply runs value through transforms in order.
func Apply(value string, transforms ...Func) string {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose builds a reusable Func from transforms applied in order.
func Compose(transforms ...Func) Func {
	return func(value string) string {
		return Apply(value, transforms...)
	}
}
