package numberutils

import (
	"fmt"
	"strconv"
)

// ToUint converts a decimal string to a uint.
// Signs, blanks and values that overflow uint are rejected.
func ToUint(str string) (uint, error) {
	if str == "" || !IsDigits(str) {
		return 0, fmt.Errorf("%q is not an unsigned integer", str)
	}
	value, err := strconv.ParseUint(str, 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

// ToPositiveUint is ToUint that also rejects zero, the unassigned identifier.
func ToPositiveUint(str string) (uint, error) {
	value, err := ToUint(str)
	if err != nil {
		return 0, err
	}
	if value == 0 {
		return 0, fmt.Errorf("%q is not a positive integer", str)
	}
	return value, nil
}
