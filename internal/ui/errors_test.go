package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/peekhq/peek/internal/domain"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{"nil error", nil, 80, ""},
		{"short message", errors.New("boom"), 80, "Error: boom"},
		{"empty message", errors.New(""), 80, "Error: unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.width))
		})
	}
}

func TestFormatErrorForDisplay_TruncatesToTwoLines(t *testing.T) {
	long := errors.New(strings.Repeat("word ", 60))

	got := formatErrorForDisplay(long, 30)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Error: "))
	assert.True(t, strings.HasSuffix(lines[1], "..."))
}

func TestErrorManager_ClearOnlyLatest(t *testing.T) {
	em := NewErrorManager(time.Second)

	cmd := em.SetError(errors.New("first"))
	assert.NotNil(t, cmd)
	em.SetError(errors.New("second"))

	em.HandleClear(clearErrorMsg{seq: 1})
	assert.EqualError(t, em.GetError(), "second", "stale clear is ignored")

	em.HandleClear(clearErrorMsg{seq: 2})
	assert.False(t, em.HasError())
}

func TestErrorManager_ZeroDelayKeepsError(t *testing.T) {
	em := NewErrorManager(0)

	assert.Nil(t, em.SetError(errors.New("sticky")))
	assert.True(t, em.HasError())

	em.ClearError()
	assert.False(t, em.HasError())
}

func TestDescribeError(t *testing.T) {
	fetchErr := fmt.Errorf("%w: %w", domain.ErrFetchFailed, errors.New("timeout"))

	got := describeError(fetchErr, "r")

	assert.ErrorIs(t, got, domain.ErrFetchFailed)
	assert.Contains(t, got.Error(), "press r to retry")
	assert.Nil(t, describeError(nil, "r"))

	other := errors.New("other")
	assert.Equal(t, other, describeError(other, "r"))
}
