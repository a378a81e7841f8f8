package input

import (
	"errors"
	"fmt"
	"strings"

	"calcpad/internal/domain"
)

// ErrUnknownKey is returned for tokens that do not name an action.
var ErrUnknownKey = errors.New("unknown key")

var (
	actDot      = domain.Action{Kind: domain.ActionDot}
	actSign     = domain.Action{Kind: domain.ActionSign}
	actDelete   = domain.Action{Kind: domain.ActionDelete}
	actClear    = domain.Action{Kind: domain.ActionClear}
	actEvaluate = domain.Action{Kind: domain.ActionEvaluate}
)

// names maps action words accepted by Parse and FromButton.
var names = map[string]domain.Action{
	"dot":      actDot,
	"sign":     actSign,
	"neg":      actSign,
	"del":      actDelete,
	"delete":   actDelete,
	"clear":    actClear,
	"ac":       actClear,
	"eq":       actEvaluate,
	"equals":   actEvaluate,
	"evaluate": actEvaluate,
}

// FromKey maps a keyboard key name to an action. Browser names ("Enter",
// "Backspace", "Escape") and terminal names ("enter", "backspace", "esc")
// are both accepted.
func FromKey(key string) (domain.Action, bool) {
	if len(key) == 1 {
		c := key[0]
		switch {
		case c >= '0' && c <= '9':
			return domain.Digit(c), true
		case c == '.':
			return actDot, true
		case c == '=':
			return actEvaluate, true
		case strings.IndexByte("+-*/%", c) >= 0:
			return domain.Operator(c), true
		}
		return domain.Action{}, false
	}
	switch key {
	case "Enter", "enter":
		return actEvaluate, true
	case "Backspace", "backspace":
		return actDelete, true
	case "Escape", "esc":
		return actClear, true
	}
	return domain.Action{}, false
}

// FromButton maps the attributes of a keypad button. A digit attribute
// wins over an operator attribute, which wins over a named action.
func FromButton(num, op, action string) (domain.Action, bool) {
	if num != "" {
		if a, ok := FromKey(num); ok && a.Kind == domain.ActionDigit {
			return a, true
		}
		return domain.Action{}, false
	}
	if op != "" {
		if a, ok := FromKey(op); ok && a.Kind == domain.ActionOperator {
			return a, true
		}
		return domain.Action{}, false
	}
	a, ok := names[strings.ToLower(action)]
	return a, ok
}

// Parse maps one token: a key accepted by FromKey or an action name such as
// "sign", "del", "clear" or "eq".
func Parse(tok string) (domain.Action, error) {
	if a, ok := FromKey(tok); ok {
		return a, nil
	}
	if a, ok := names[strings.ToLower(tok)]; ok {
		return a, nil
	}
	return domain.Action{}, fmt.Errorf("%w: %q", ErrUnknownKey, tok)
}

// ParseAll parses tokens in order. A token made only of digits, dots and
// operators (e.g. "12+3") expands to one action per character. Parsing
// stops at the first unknown token; the actions before it are returned
// together with the error.
func ParseAll(toks []string) ([]domain.Action, error) {
	out := make([]domain.Action, 0, len(toks))
	for _, tok := range toks {
		if a, err := Parse(tok); err == nil {
			out = append(out, a)
			continue
		}
		run, ok := expandRun(tok)
		if !ok {
			return out, fmt.Errorf("%w: %q", ErrUnknownKey, tok)
		}
		out = append(out, run...)
	}
	return out, nil
}

func expandRun(tok string) ([]domain.Action, bool) {
	if tok == "" {
		return nil, false
	}
	run := make([]domain.Action, 0, len(tok))
	for i := 0; i < len(tok); i++ {
		a, ok := FromKey(tok[i : i+1])
		if !ok || a.Kind == domain.ActionEvaluate {
			return nil, false
		}
		run = append(run, a)
	}
	return run, true
}
