package wizard

import (
	"regexp"
	"strconv"
	"strings"
)

// Reserved input tokens. They are matched case-insensitively.
const (
	SkipToken       = "N"
	InProgressToken = "CURSANDO"
	CurrentToken    = "ATUAL"
)

// Validator reports whether a trimmed user answer is acceptable for a step.
type Validator func(string) bool

var (
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	monthYearPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{4}$`)
)

// MinWords accepts text with at least n whitespace separated words.
func MinWords(n int) Validator {
	return func(s string) bool {
		return len(strings.Fields(s)) >= n
	}
}

func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Email accepts local@domain.tld where the TLD has at least two letters.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Phone accepts 8 to 15 ASCII digits.
func Phone(s string) bool {
	return len(s) >= 8 && len(s) <= 15 && digits(s)
}

// Year accepts a four digit year between 1900 and 2100.
func Year(s string) bool {
	if len(s) != 4 || !digits(s) {
		return false
	}
	y, _ := strconv.Atoi(s)
	return y >= 1900 && y <= 2100
}

func YearOrInProgress(s string) bool {
	return strings.EqualFold(s, InProgressToken) || Year(s)
}

// MonthYear accepts MM/YYYY with a valid month, or the current-job marker.
func MonthYear(s string) bool {
	return strings.EqualFold(s, CurrentToken) || monthYearPattern.MatchString(s)
}

// ExactMonthYear is MonthYear without the current-job marker, used for start dates.
func ExactMonthYear(s string) bool {
	return monthYearPattern.MatchString(s)
}

// OneOf accepts any of the given codes, ignoring case.
func OneOf(codes ...string) Validator {
	return func(s string) bool {
		for _, c := range codes {
			if strings.EqualFold(s, c) {
				return true
			}
		}
		return false
	}
}

// IntRange accepts plain decimal digits whose value lies in [lo, hi].
func IntRange(lo, hi int) Validator {
	return func(s string) bool {
		if !digits(s) {
			return false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return false
		}
		return n >= lo && n <= hi
	}
}

var yesNo = OneOf("S", "N")

func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
