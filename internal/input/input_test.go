package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/domain"
	"calcpad/internal/input"
)

func TestFromKey(t *testing.T) {
	tests := []struct {
		key  string
		want domain.Action
	}{
		{key: "7", want: domain.Digit('7')},
		{key: ".", want: domain.Action{Kind: domain.ActionDot}},
		{key: "%", want: domain.Operator('%')},
		{key: "=", want: domain.Action{Kind: domain.ActionEvaluate}},
		{key: "Enter", want: domain.Action{Kind: domain.ActionEvaluate}},
		{key: "enter", want: domain.Action{Kind: domain.ActionEvaluate}},
		{key: "Backspace", want: domain.Action{Kind: domain.ActionDelete}},
		{key: "Escape", want: domain.Action{Kind: domain.ActionClear}},
		{key: "esc", want: domain.Action{Kind: domain.ActionClear}},
	}
	for _, tt := range tests {
		got, ok := input.FromKey(tt.key)
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}

	for _, key := range []string{"a", "^", "Tab", ""} {
		_, ok := input.FromKey(key)
		assert.False(t, ok, key)
	}
}

func TestFromButton(t *testing.T) {
	a, ok := input.FromButton("4", "", "")
	require.True(t, ok)
	assert.Equal(t, domain.Digit('4'), a)

	a, ok = input.FromButton("", "*", "")
	require.True(t, ok)
	assert.Equal(t, domain.Operator('*'), a)

	a, ok = input.FromButton("", "", "sign")
	require.True(t, ok)
	assert.Equal(t, domain.ActionSign, a.Kind)

	a, ok = input.FromButton("", "", "equals")
	require.True(t, ok)
	assert.Equal(t, domain.ActionEvaluate, a.Kind)

	_, ok = input.FromButton("+", "", "")
	assert.False(t, ok)
	_, ok = input.FromButton("", "", "launch")
	assert.False(t, ok)
}

func TestParseAll(t *testing.T) {
	got, err := input.ParseAll([]string{"12+3", "sign", "=", "DEL"})
	require.NoError(t, err)
	want := []domain.Action{
		domain.Digit('1'),
		domain.Digit('2'),
		domain.Operator('+'),
		domain.Digit('3'),
		{Kind: domain.ActionSign},
		{Kind: domain.ActionEvaluate},
		{Kind: domain.ActionDelete},
	}
	assert.Equal(t, want, got)
}

func TestParseAll_StopsAtUnknown(t *testing.T) {
	got, err := input.ParseAll([]string{"1", "sqrt", "2"})
	require.ErrorIs(t, err, input.ErrUnknownKey)
	assert.Equal(t, []domain.Action{domain.Digit('1')}, got)

	_, err = input.ParseAll([]string{"1=2"})
	require.ErrorIs(t, err, input.ErrUnknownKey)
}
