package lkerr_test

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stackmill/lambdakit/lkerr"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind lkerr.Kind
		want int
	}{
		{lkerr.KindValidation, 400},
		{lkerr.KindUnauthorised, 401},
		{lkerr.KindForbidden, 403},
		{lkerr.KindNotFound, 404},
		{lkerr.KindConflict, 409},
		{lkerr.KindTooManyRequests, 429},
		{lkerr.KindUnknown, 500},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Status(); got != tt.want {
				t.Errorf("Status() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	t.Run("typed error", func(t *testing.T) {
		err := lkerr.NotFound("item not found")
		if got := lkerr.KindOf(err); got != lkerr.KindNotFound {
			t.Errorf("KindOf() = %v, want KindNotFound", got)
		}
	})

	t.Run("wrapped typed error", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", lkerr.Conflict("already exists"))
		if got := lkerr.KindOf(err); got != lkerr.KindConflict {
			t.Errorf("KindOf() = %v, want KindConflict", got)
		}
	})

	t.Run("untyped error", func(t *testing.T) {
		err := errors.New("DB down")
		if got := lkerr.KindOf(err); got != lkerr.KindUnknown {
			t.Errorf("KindOf() = %v, want KindUnknown", got)
		}
	})
}

func TestMessage_UnknownNeverLeaks(t *testing.T) {
	err := lkerr.New(lkerr.KindUnknown, "pq: connection refused")
	if got := err.Message(); got != lkerr.GenericMessage {
		t.Errorf("Message() = %q, want generic message", got)
	}
	// The raw text stays available for logging.
	if err.Error() != "pq: connection refused" {
		t.Errorf("Error() = %q, want raw message", err.Error())
	}
}

func TestClientMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation surfaces message", lkerr.Validation("Email is required"), "Email is required"},
		{"untyped is generic", errors.New("DB down"), lkerr.GenericMessage},
		{"unknown kind is generic", lkerr.New(lkerr.KindUnknown, "stack trace"), lkerr.GenericMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lkerr.ClientMessage(tt.err); got != tt.want {
				t.Errorf("ClientMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("conditional check failed")
	err := lkerr.Wrap(cause, lkerr.KindConflict, "item already exists")

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if err.Status() != 409 {
		t.Errorf("Status() = %d, want 409", err.Status())
	}
	if err.Message() != "item already exists" {
		t.Errorf("Message() = %q", err.Message())
	}
}
