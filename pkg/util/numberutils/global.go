package numberutils

// IsDigits reports whether str is made only of the ASCII digits 0-9.
// Other Unicode decimal digits are rejected so the result agrees with strconv.
func IsDigits(str string) bool {
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return false
		}
	}
	return true
}
