package utils

func EmptyOrElse(s string, defaultValue string) string {
	return ZeroOrElse(s, defaultValue)
}

// ZeroOrElse returns v unless it is the zero value of its type.
func ZeroOrElse[T comparable](v T, defaultValue T) T {
	var zero T
	if v == zero {
		return defaultValue
	}
	return v
}

func Ternary[T any](condition bool, trueValue, falseValue T) T {
	if condition {
		return trueValue
	} else {
		return falseValue
	}
}
