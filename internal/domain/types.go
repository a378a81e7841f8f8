package domain

import (
	"errors"
	"fmt"
)

// ErrEvaluation is returned by Evaluate for every failed evaluation:
// disallowed characters, a dangling operator, malformed arithmetic, or a
// non-finite result.
var ErrEvaluation = errors.New("evaluation error")

// ActionKind identifies one discrete user action.
type ActionKind uint8

const (
	ActionDigit ActionKind = iota
	ActionOperator
	ActionDot
	ActionSign
	ActionDelete
	ActionClear
	ActionEvaluate
)

var actionKindNames = [...]string{
	ActionDigit:    "digit",
	ActionOperator: "operator",
	ActionDot:      "dot",
	ActionSign:     "sign",
	ActionDelete:   "delete",
	ActionClear:    "clear",
	ActionEvaluate: "evaluate",
}

// String returns the lower-case name of the kind.
func (k ActionKind) String() string {
	if int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// Action is an already-decoded user action. Char carries the digit for
// ActionDigit and the operator for ActionOperator; it is zero otherwise.
type Action struct {
	Kind ActionKind
	Char byte
}

// Digit returns the action appending d.
func Digit(d byte) Action { return Action{Kind: ActionDigit, Char: d} }

// Operator returns the action appending op.
func Operator(op byte) Action { return Action{Kind: ActionOperator, Char: op} }

// String renders the action for logs, e.g. "digit(7)" or "clear".
func (a Action) String() string {
	switch a.Kind {
	case ActionDigit, ActionOperator:
		return fmt.Sprintf("%s(%c)", a.Kind, a.Char)
	}
	return a.Kind.String()
}

// DisplayState is what the display sink shows. Result equals Expression
// unless the expression is empty ("0") or the last evaluation failed (the
// error marker).
type DisplayState struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Error      bool   `json:"error"`
}

// Snapshot is the persisted form of an editor.
type Snapshot struct {
	Expression string `json:"expression"`
	Failed     bool   `json:"failed,omitempty"`
}
