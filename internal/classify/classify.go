// Package classify tags answer tokens by lexical and numeric form.
//
// Classification is a total function: every parse attempt either succeeds
// or falls through to the next rule, and a token nothing recognizes is
// reported as Plain.
package classify

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Category is the label assigned to a token.
type Category string

const (
	NumericZero    Category = "numeric_zero"
	NumericHex     Category = "numeric_hex"
	NumericBinary  Category = "numeric_binary"
	NumericOctal   Category = "numeric_octal"
	NumericInt     Category = "numeric_int"
	NumericFloat   Category = "numeric_float"
	NumericComplex Category = "numeric_complex"
	NumericRoman   Category = "numeric_roman"
	MathExpression Category = "math_expression"
	Garbage        Category = "garbage"
	Plain          Category = "plain"
)

// CommonGarbageTag is reserved alongside the categories.
const CommonGarbageTag = "common_garbage"

var reserved = map[string]struct{}{
	string(NumericZero):    {},
	string(NumericHex):     {},
	string(NumericBinary):  {},
	string(NumericOctal):   {},
	string(NumericInt):     {},
	string(NumericFloat):   {},
	string(NumericComplex): {},
	string(NumericRoman):   {},
	string(MathExpression): {},
	string(Garbage):        {},
	CommonGarbageTag:       {},
}

// ReservedTags lists the tag strings treated as already resolved, in a
// stable order.
func ReservedTags() []string {
	return []string{
		string(NumericZero),
		string(NumericHex),
		string(NumericBinary),
		string(NumericOctal),
		string(NumericInt),
		string(NumericFloat),
		string(NumericComplex),
		string(NumericRoman),
		string(MathExpression),
		string(Garbage),
		CommonGarbageTag,
	}
}

// IsReserved reports whether s is a reserved tag.
func IsReserved(s string) bool {
	_, ok := reserved[s]
	return ok
}

// Tag returns the category string for a recognized token and the token
// itself otherwise.
func Tag(token string) string {
	c := Categorize(token)
	if c == Plain {
		return token
	}
	return string(c)
}

// Categorize applies the rules in precedence order. The empty token is
// Plain.
func Categorize(token string) Category {
	if token == "" {
		return Plain
	}
	if token == "0" {
		return NumericZero
	}

	unsigned := token
	if token[0] == '-' && len(token) > 1 {
		unsigned = token[1:]
	}
	if unsigned[0] == '0' {
		if len(unsigned) == 1 {
			return NumericZero
		}
		switch unsigned[1] {
		case 'x', 'X':
			if parseHex(token) {
				return NumericHex
			}
		case 'b', 'B':
			if parseBinary(token) {
				return NumericBinary
			}
		default:
			if parseOctal(token) {
				return NumericOctal
			}
		}
	}

	switch {
	case parseInt(token):
		return NumericInt
	case parseFloat(token):
		return NumericFloat
	case parseComplex(token):
		return NumericComplex
	case IsMathExpression(token):
		return MathExpression
	case IsRoman(token):
		return NumericRoman
	}
	return Plain
}

// splitSign removes one leading sign.
func splitSign(s string) string {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		return s[1:]
	}
	return s
}

func parseDigits(s string, base int) bool {
	if s == "" || s[0] == '-' || s[0] == '+' {
		return false
	}
	_, ok := new(big.Int).SetString(s, base)
	return ok
}

func parsePrefixed(lit string, prefixes string, base int) bool {
	s := splitSign(lit)
	if len(s) < 2 || s[0] != '0' || !strings.ContainsRune(prefixes, rune(s[1])) {
		return false
	}
	return parseDigits(s[2:], base)
}

func parseHex(lit string) bool {
	return parsePrefixed(lit, "xX", 16)
}

func parseBinary(lit string) bool {
	return parsePrefixed(lit, "bB", 2)
}

func parseOctal(lit string) bool {
	if parsePrefixed(lit, "oO", 8) {
		return true
	}
	return parseDigits(splitSign(lit), 8)
}

func parseInt(lit string) bool {
	return parseDigits(splitSign(lit), 10)
}

func parseFloat(lit string) bool {
	if strings.ContainsAny(lit, "_xXpP") {
		return false
	}
	_, err := strconv.ParseFloat(lit, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

func parseComplex(lit string) bool {
	s := lit
	if strings.HasSuffix(s, "j") || strings.HasSuffix(s, "J") {
		s = s[:len(s)-1] + "i"
	} else if strings.HasSuffix(s, "j)") || strings.HasSuffix(s, "J)") {
		s = s[:len(s)-2] + "i)"
	}
	if strings.ContainsAny(s, "_xXpP") {
		return false
	}
	_, err := strconv.ParseComplex(s, 128)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
