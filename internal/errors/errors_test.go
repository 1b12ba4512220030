package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsContextDone(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "canceled", err: context.Canceled, want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "wrapped deadline", err: Wrap(context.DeadlineExceeded, "call provider"), want: true},
		{name: "other", err: New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsContextDone(tt.err))
		})
	}
}

func TestWrapfMatchesBase(t *testing.T) {
	base := New("root cause")
	wrapped := Wrapf(base, "step %d", 2)

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, "step 2: root cause", wrapped.Error())
	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestJoinDropsNil(t *testing.T) {
	base := New("root cause")
	joined := Join(base, nil)

	assert.True(t, Is(joined, base))
	assert.Nil(t, Join(nil, nil))
}

func TestErrorfRecordsStack(t *testing.T) {
	err := Errorf("endpoint answered %d", 502)

	assert.Equal(t, "endpoint answered 502", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestErrorfRecordsStack")
}
