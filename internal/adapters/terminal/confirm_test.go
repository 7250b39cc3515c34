package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm_Answers(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"sure\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var stderr bytes.Buffer
			a := NewScriptedAdapter(strings.NewReader(tt.input), &stderr)

			ok, err := a.Confirm(context.Background(), "Delete /tmp/x?")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, "Delete /tmp/x? [y/N]: ", stderr.String())
		})
	}
}

func TestConfirm_NonInteractive(t *testing.T) {
	a := NewAdapter(strings.NewReader("y\n"), &bytes.Buffer{})

	assert.False(t, a.IsInteractive())

	ok, err := a.Confirm(context.Background(), "Delete?")

	require.ErrorIs(t, err, ErrNonInteractive)
	assert.False(t, ok)
}

func TestConfirm_CanceledContext(t *testing.T) {
	a := NewScriptedAdapter(strings.NewReader("y\n"), &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := a.Confirm(ctx, "Delete?")

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}
