package errors

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestErrorsIs(t *testing.T) {
	cases := map[string]struct {
		kind      *Error
		err       error
		wantMatch bool
	}{
		"instance of the same root error": {
			kind:      ErrNotFound,
			err:       ErrNotFound,
			wantMatch: true,
		},
		"wrapped root error": {
			kind:      ErrNotFound,
			err:       Wrap(ErrNotFound, "gone"),
			wantMatch: true,
		},
		"double wrapped root error": {
			kind:      ErrNotFound,
			err:       Wrap(Wrap(ErrNotFound, "gone"), "whoops"),
			wantMatch: true,
		},
		"different root error": {
			kind:      ErrNotFound,
			err:       ErrUnauthorized,
			wantMatch: false,
		},
		"wrapped different root error": {
			kind:      ErrNotFound,
			err:       Wrap(ErrUnauthorized, "nope"),
			wantMatch: false,
		},
		"stdlib error": {
			kind:      ErrNotFound,
			err:       fmt.Errorf("stdlib"),
			wantMatch: false,
		},
		"nil error against a kind": {
			kind:      ErrNotFound,
			err:       nil,
			wantMatch: false,
		},
		"nil kind against nil error": {
			kind:      nil,
			err:       nil,
			wantMatch: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantMatch {
				t.Fatalf("unexpected match result: %v", got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "always ignored"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
	if err := Wrapf(nil, "always %s", "ignored"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrappedErrorMessage(t *testing.T) {
	err := Wrap(ErrNotFound, "my item")
	const want = "my item: not found"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestNewPreservesKind(t *testing.T) {
	err := ErrInput.Newf("age must be above %d", 42)
	if !ErrInput.Is(err) {
		t.Fatal("created error must match its root kind")
	}
	if ErrState.Is(err) {
		t.Fatal("created error must not match an unrelated kind")
	}
}

func TestStackTraceAttachedOnce(t *testing.T) {
	err := Wrap(ErrHuman, "first")
	st := stackTrace(err)
	if st == nil {
		t.Fatal("wrapping must attach a stack trace")
	}

	// Wrapping again must not overwrite the original trace.
	again := Wrap(err, "second")
	if got := stackTrace(again); fmt.Sprintf("%v", got[0]) != fmt.Sprintf("%v", st[0]) {
		t.Fatal("second wrap must keep the original stack trace")
	}
}

func TestStackTraceForeignError(t *testing.T) {
	// An error instrumented by pkg/errors already carries a trace.
	err := errors.New("external")
	if stackTrace(err) == nil {
		t.Fatal("expected a stack trace")
	}
	wrapped := Wrap(err, "ours")
	if stackTrace(wrapped) == nil {
		t.Fatal("expected the stack trace to be preserved")
	}
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("totally unexpected")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("reusing an error code must panic")
		}
	}()
	Register(2, "conflicting with unauthorized")
}
