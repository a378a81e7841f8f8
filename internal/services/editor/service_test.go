package editor_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/arith"
	"calcpad/internal/domain"
	"calcpad/internal/services/editor"
)

// typeString feeds s through the editor one character at a time.
func typeString(t *testing.T, ed *editor.Service, s string) {
	t.Helper()
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			ed.AppendDigit(c)
		case c == '.':
			ed.AppendDecimalPoint()
		case arith.IsOperator(c):
			ed.AppendOperator(c)
		default:
			t.Fatalf("typeString: unsupported %q", c)
		}
	}
}

func TestEditor_NegativeStartThenEvaluate(t *testing.T) {
	ed := editor.New(nil)

	ed.AppendOperator('-')
	assert.Equal(t, "-", ed.Expression())
	ed.AppendDigit('5')
	assert.Equal(t, "-5", ed.Expression())

	v, err := ed.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, -5.0, v)
	assert.Equal(t, domain.DisplayState{Expression: "-5", Result: "-5"}, ed.Display())
}

func TestEditor_OperatorReplacesTrailingOperator(t *testing.T) {
	ed := editor.New(nil)
	ed.AppendDigit('1')
	ed.AppendOperator('+')
	ed.AppendOperator('*')
	assert.Equal(t, "1*", ed.Expression())
}

func TestEditor_OperatorOnEmptyOnlyMinus(t *testing.T) {
	for _, op := range []byte{'+', '*', '/', '%'} {
		ed := editor.New(nil)
		ed.AppendOperator(op)
		assert.Empty(t, ed.Expression(), "operator %q", op)
	}
}

func TestEditor_EvaluateProduct(t *testing.T) {
	ed := editor.New(nil)
	typeString(t, ed, "3.5*2")

	_, err := ed.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, "7", ed.Expression())
}

func TestEditor_DivisionByZeroKeepsExpression(t *testing.T) {
	ed := editor.New(nil)
	typeString(t, ed, "5/0")

	_, err := ed.Evaluate()
	require.ErrorIs(t, err, domain.ErrEvaluation)
	require.ErrorIs(t, err, arith.ErrNonFinite)

	want := domain.DisplayState{Expression: "5/0", Result: editor.DefaultErrorMarker, Error: true}
	if diff := cmp.Diff(want, ed.Display()); diff != "" {
		t.Fatalf("display mismatch (-want +got):\n%s", diff)
	}

	// Still usable without an explicit reset.
	ed.DeleteLast()
	assert.Equal(t, domain.DisplayState{Expression: "5/", Result: "5/"}, ed.Display())
}

func TestEditor_DeleteThenToggle(t *testing.T) {
	ed := editor.New(nil)
	typeString(t, ed, "2+3")

	ed.DeleteLast()
	assert.Equal(t, "2+", ed.Expression())
	ed.DeleteLast()
	assert.Equal(t, "2", ed.Expression())
	ed.ToggleSign()
	assert.Equal(t, "-2", ed.Expression())
}

func TestEditor_DecimalPoint(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  string
	}{
		{name: "empty gets leading zero", typed: ".", want: "0."},
		{name: "after operator gets leading zero", typed: "1+.", want: "1+0."},
		{name: "second point in chunk ignored", typed: "1.5.", want: "1.5"},
		{name: "repeated point ignored", typed: "1..", want: "1."},
		{name: "new chunk accepts point", typed: "1.5*2.", want: "1.5*2."},
		{name: "digits after leading zero", typed: ".25", want: "0.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := editor.New(nil)
			typeString(t, ed, tt.typed)
			assert.Equal(t, tt.want, ed.Expression())
		})
	}
}

func TestEditor_ToggleSign(t *testing.T) {
	tests := []struct {
		start string
		want  string
	}{
		{start: "12", want: "-12"},
		{start: "-12", want: "12"},
		{start: "3*4.5", want: "3*-4.5"},
		{start: "0", want: "0"},
		{start: "2.50", want: "-2.5"},
		{start: "1+", want: "1+"},
		{start: "5.", want: "5."},
	}
	for _, tt := range tests {
		ed := editor.New(nil)
		require.NoError(t, ed.Restore(domain.Snapshot{Expression: tt.start}))
		ed.ToggleSign()
		assert.Equal(t, tt.want, ed.Expression(), "toggle %q", tt.start)
	}
}

func TestEditor_ToggleSignIgnoresParenthesizedTail(t *testing.T) {
	ed := editor.New(nil)
	require.NoError(t, ed.Restore(domain.Snapshot{Expression: "2+(3)"}))
	ed.ToggleSign()
	assert.Equal(t, "2+(3)", ed.Expression())
}

func TestEditor_ToggleSignTwiceRestores(t *testing.T) {
	for _, start := range []string{"7", "1.25", "8*3", "9/0.5"} {
		ed := editor.New(nil)
		require.NoError(t, ed.Restore(domain.Snapshot{Expression: start}))
		ed.ToggleSign()
		ed.ToggleSign()
		assert.Equal(t, start, ed.Expression())
	}
}

func TestEditor_NoAdjacentOperators(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const keys = "0123456789+-*/%"

	for round := 0; round < 200; round++ {
		ed := editor.New(nil)
		for i := 0; i < 30; i++ {
			c := keys[rng.Intn(len(keys))]
			if arith.IsOperator(c) {
				ed.AppendOperator(c)
			} else {
				ed.AppendDigit(c)
			}
			e := ed.Expression()
			for j := 1; j < len(e); j++ {
				if arith.IsOperator(e[j-1]) && arith.IsOperator(e[j]) {
					t.Fatalf("adjacent operators in %q", e)
				}
			}
		}
	}
}

func TestEditor_FailedEvaluateLeavesState(t *testing.T) {
	for _, start := range []string{"1+", "(2", "2+(3", "5%0", "1/0-1/0"} {
		ed := editor.New(nil)
		require.NoError(t, ed.Restore(domain.Snapshot{Expression: start}))
		_, err := ed.Evaluate()
		require.Error(t, err, start)
		assert.Equal(t, start, ed.Expression())
		assert.True(t, ed.Display().Error)
	}
}

func TestEditor_EmptyEvaluate(t *testing.T) {
	ed := editor.New(nil)
	v, err := ed.Evaluate()
	require.NoError(t, err)
	assert.Zero(t, v)
	assert.Equal(t, domain.DisplayState{Expression: "", Result: "0"}, ed.Display())
}

func TestEditor_ClearAndDeleteOnEmpty(t *testing.T) {
	ed := editor.New(nil)
	ed.DeleteLast()
	assert.Empty(t, ed.Expression())

	typeString(t, ed, "42")
	ed.Clear()
	assert.Equal(t, domain.DisplayState{Expression: "", Result: "0"}, ed.Display())
}

func TestEditor_RendersAfterOperations(t *testing.T) {
	var got []domain.DisplayState
	ed := editor.New(func(d domain.DisplayState) { got = append(got, d) }, editor.WithErrorMarker("ERR"))

	ed.AppendOperator('*') // absorbed
	ed.AppendDigit('8')
	ed.AppendOperator('/')
	ed.AppendDigit('0')
	_, _ = ed.Evaluate()

	want := []domain.DisplayState{
		{Expression: "8", Result: "8"},
		{Expression: "8/", Result: "8/"},
		{Expression: "8/0", Result: "8/0"},
		{Expression: "8/0", Result: "ERR", Error: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("renders mismatch (-want +got):\n%s", diff)
	}
}

func TestEditor_Apply(t *testing.T) {
	ed := editor.New(nil)
	actions := []domain.Action{
		domain.Digit('9'),
		{Kind: domain.ActionDot},
		domain.Digit('5'),
		domain.Operator('-'),
		domain.Digit('1'),
		{Kind: domain.ActionSign},
		{Kind: domain.ActionEvaluate},
	}
	for _, a := range actions {
		require.NoError(t, ed.Apply(a), a.String())
	}
	// "9.5-1" toggles to "9.51" because the sign is read as part of the number.
	assert.Equal(t, "9.51", ed.Expression())

	require.NoError(t, ed.Apply(domain.Action{Kind: domain.ActionClear}))
	assert.Empty(t, ed.Expression())
	require.Error(t, ed.Apply(domain.Action{Kind: domain.ActionKind(99)}))
}

func TestEditor_RestoreRejectsForeignCharacters(t *testing.T) {
	ed := editor.New(nil)
	err := ed.Restore(domain.Snapshot{Expression: "1+x"})
	require.ErrorIs(t, err, arith.ErrDisallowedChar)
	assert.Empty(t, ed.Expression())
}
