package classify

import (
	"regexp"
	"strings"
)

var romanPattern = regexp.MustCompile(`^M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

var romanNumerals = []struct {
	numeral string
	value   int
}{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// IsRoman reports whether s, uppercased, is a canonical subtractive
// Roman numeral. The empty string is not a numeral.
func IsRoman(s string) bool {
	if s == "" {
		return false
	}
	return romanPattern.MatchString(strings.ToUpper(s))
}

// RomanValue converts a canonical numeral to its value.
func RomanValue(s string) (int, bool) {
	if !IsRoman(s) {
		return 0, false
	}
	upper := strings.ToUpper(s)
	total := 0
	for _, rn := range romanNumerals {
		for strings.HasPrefix(upper, rn.numeral) {
			total += rn.value
			upper = upper[len(rn.numeral):]
		}
	}
	return total, true
}
