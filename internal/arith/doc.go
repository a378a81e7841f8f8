// Package arith evaluates calculator expressions.
//
// Expressions use the alphabet 0-9 . + - * / % ( ) and spaces. Evaluation
// honors conventional precedence (* / % bind tighter than + -), parentheses
// and unary minus, using float64 arithmetic. % is the floating-point
// remainder with the sign of the dividend.
//
// The package never delegates to a general-purpose evaluator: a small lexer
// feeds a recursive-descent parser producing a tree that is then evaluated.
package arith
