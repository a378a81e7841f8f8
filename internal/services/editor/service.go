package editor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"calcpad/internal/arith"
	"calcpad/internal/domain"
)

// DefaultErrorMarker is the result text shown after a failed evaluation.
const DefaultErrorMarker = "Error"

// trailingNumber captures the shortest prefix followed by a decimal number,
// optionally negative, that runs to the end of the expression.
var trailingNumber = regexp.MustCompile(`^(.*?)(-?\d+(?:\.\d+)?)$`)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for debug traces of applied actions.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithErrorMarker sets the result text shown after a failed evaluation.
func WithErrorMarker(marker string) Option {
	return func(s *Service) {
		if marker != "" {
			s.marker = marker
		}
	}
}

// Service is the expression editor. It is not safe for concurrent use;
// callers that share one across goroutines serialize access themselves.
type Service struct {
	expr   string
	failed bool

	render domain.Renderer
	marker string
	log    *zap.Logger
}

// New returns an empty editor. render may be nil.
func New(render domain.Renderer, opts ...Option) *Service {
	s := &Service{
		render: render,
		marker: DefaultErrorMarker,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AppendDigit appends d. Bytes outside '0'-'9' are ignored.
func (s *Service) AppendDigit(d byte) {
	if d < '0' || d > '9' {
		return
	}
	s.set(s.expr + string(d))
}

// AppendDecimalPoint appends "." to the current number chunk, prefixing a
// "0" when the chunk is empty. A chunk that already has a point is left
// alone.
func (s *Service) AppendDecimalPoint() {
	chunk := s.expr[strings.LastIndexAny(s.expr, "+-*/%")+1:]
	if strings.Contains(chunk, ".") {
		return
	}
	next := s.expr
	if chunk == "" {
		next += "0"
	}
	s.set(next + ".")
}

// AppendOperator appends op, or replaces a trailing operator with it. On an
// empty expression only '-' is accepted.
func (s *Service) AppendOperator(op byte) {
	if !arith.IsOperator(op) {
		return
	}
	if s.expr == "" && op != '-' {
		return
	}
	if arith.EndsWithOperator(s.expr) {
		s.set(s.expr[:len(s.expr)-1] + string(op))
		return
	}
	s.set(s.expr + string(op))
}

// Clear empties the expression.
func (s *Service) Clear() { s.set("") }

// DeleteLast removes the last character, if any.
func (s *Service) DeleteLast() {
	next := s.expr
	if next != "" {
		next = next[:len(next)-1]
	}
	s.set(next)
}

// ToggleSign negates the trailing number. It does nothing when the
// expression does not end in a bare number, e.g. after an operator or ")".
func (s *Service) ToggleSign() {
	if s.expr == "" {
		return
	}
	m := trailingNumber.FindStringSubmatch(s.expr)
	if m == nil {
		return
	}
	n, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return
	}
	s.set(m[1] + arith.FormatNumber(-n))
}

// Evaluate computes the expression. On success the expression is replaced
// by the formatted result. On failure the expression is kept, the display
// shows the error marker, and the returned error wraps both
// domain.ErrEvaluation and the arith cause.
//
// An empty expression evaluates to 0 and stays empty.
func (s *Service) Evaluate() (float64, error) {
	if s.expr == "" {
		s.set("")
		return 0, nil
	}
	v, err := arith.Evaluate(s.expr)
	if err != nil {
		s.log.Debug("evaluation failed", zap.String("expression", s.expr), zap.Error(err))
		s.failed = true
		s.refresh()
		return 0, fmt.Errorf("%w: %w", domain.ErrEvaluation, err)
	}
	s.set(arith.FormatNumber(v))
	return v, nil
}

// Apply dispatches a decoded user action to the matching operation. Only an
// evaluate action can return an error.
func (s *Service) Apply(a domain.Action) error {
	s.log.Debug("apply", zap.Stringer("action", a))
	switch a.Kind {
	case domain.ActionDigit:
		s.AppendDigit(a.Char)
	case domain.ActionOperator:
		s.AppendOperator(a.Char)
	case domain.ActionDot:
		s.AppendDecimalPoint()
	case domain.ActionSign:
		s.ToggleSign()
	case domain.ActionDelete:
		s.DeleteLast()
	case domain.ActionClear:
		s.Clear()
	case domain.ActionEvaluate:
		_, err := s.Evaluate()
		return err
	default:
		return fmt.Errorf("unknown action kind %d", a.Kind)
	}
	return nil
}

// Expression returns the current expression text.
func (s *Service) Expression() string { return s.expr }

// Display returns the current display state.
func (s *Service) Display() domain.DisplayState {
	d := domain.DisplayState{Expression: s.expr, Result: s.expr}
	switch {
	case s.failed:
		d.Result = s.marker
		d.Error = true
	case s.expr == "":
		d.Result = "0"
	}
	return d
}

// Snapshot returns the persisted form of the editor.
func (s *Service) Snapshot() domain.Snapshot {
	return domain.Snapshot{Expression: s.expr, Failed: s.failed}
}

// Restore replaces the editor state with snap and renders it. Expressions
// with characters outside the calculator alphabet are rejected.
func (s *Service) Restore(snap domain.Snapshot) error {
	if err := arith.CheckAlphabet(snap.Expression); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	s.expr = snap.Expression
	s.failed = snap.Failed
	s.refresh()
	return nil
}

func (s *Service) set(expr string) {
	s.expr = expr
	s.failed = false
	s.refresh()
}

func (s *Service) refresh() {
	if s.render != nil {
		s.render(s.Display())
	}
}

// Compile-time assertion that Service implements domain.Editor.
var _ domain.Editor = (*Service)(nil)
