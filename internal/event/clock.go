package event

import "fmt"

// ParseClock splits a zero-padded 24-hour "HH:MM" string into its hour and
// minute components.
func ParseClock(value string) (hour, minute int, err error) {
	if !validClock(value) {
		return 0, 0, fmt.Errorf("malformed clock value %q", value)
	}
	hour = int(value[0]-'0')*10 + int(value[1]-'0')
	minute = int(value[3]-'0')*10 + int(value[4]-'0')
	return hour, minute, nil
}

// ClockDecimal converts "HH:MM" into fractional hours, e.g. "09:30" -> 9.5.
func ClockDecimal(value string) (float64, error) {
	hour, minute, err := ParseClock(value)
	if err != nil {
		return 0, err
	}
	return float64(hour) + float64(minute)/60, nil
}

func validClock(value string) bool {
	if len(value) != 5 || value[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	hour := int(value[0]-'0')*10 + int(value[1]-'0')
	minute := int(value[3]-'0')*10 + int(value[4]-'0')
	return hour <= 23 && minute <= 59
}
