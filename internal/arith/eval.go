package arith

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrDisallowedChar   = errors.New("disallowed character")
	ErrDanglingOperator = errors.New("expression ends with an operator")
	ErrSyntax           = errors.New("syntax error")
	ErrNonFinite        = errors.New("result is not finite")
)

const (
	operators = "+-*/%"
	alphabet  = "0123456789+-*/%.() "
)

// IsOperator reports whether c is one of + - * / %.
func IsOperator(c byte) bool { return strings.IndexByte(operators, c) >= 0 }

// EndsWithOperator reports whether the last byte of s is an operator.
func EndsWithOperator(s string) bool {
	return s != "" && IsOperator(s[len(s)-1])
}

// CheckAlphabet reports the first byte of s outside the allow-listed
// alphabet.
func CheckAlphabet(s string) error {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return fmt.Errorf("%w: %q at offset %d", ErrDisallowedChar, s[i], i)
		}
	}
	return nil
}

// Validate checks s against the allow-listed alphabet and rejects a
// trailing operator.
func Validate(s string) error {
	if err := CheckAlphabet(s); err != nil {
		return err
	}
	if EndsWithOperator(s) {
		return ErrDanglingOperator
	}
	return nil
}

// Evaluate validates s, parses it and computes its value. A result of
// ±Inf or NaN is reported as ErrNonFinite.
func Evaluate(s string) (float64, error) {
	if err := Validate(s); err != nil {
		return 0, err
	}
	ex, err := parse(s)
	if err != nil {
		return 0, err
	}
	v := ex.eval()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %s", ErrNonFinite, FormatNumber(v))
	}
	return v, nil
}
