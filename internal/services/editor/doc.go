// Package editor implements the calculator's expression editor.
//
// The editor owns a single expression string and applies edit operations
// to it: digits, decimal points, operators, sign toggling, deletion,
// clearing and evaluation. After every operation that is not silently
// absorbed it hands the derived display state to a domain.Renderer.
//
// Invariants held after every public call:
//   - no two operator characters are adjacent (a new operator replaces a
//     trailing one);
//   - a number chunk contains at most one decimal point.
//
// Evaluate replaces the expression with the formatted result on success and
// leaves it untouched on failure, flagging the display with an error marker
// until the next successful mutation.
package editor
